// Package config provides configuration management for the waitlist service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Seating  SeatingConfig
	Notifier NotifierConfig
	Auth     AuthConfig
	Database DatabaseConfig
	Broker   BrokerConfig
	Redis    RedisConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port        string
	RateLimit   int
	RateWindow  time.Duration
	CORSOrigins []string
	SwaggerUser string
	SwaggerPass string
}

// TableSpec describes how many tables of a given capacity the default inventory holds.
type TableSpec struct {
	Capacity int
	Count    int
}

// SeatingConfig holds seating planner and wait estimate configuration.
type SeatingConfig struct {
	// Tables overrides the default table inventory when non-empty.
	Tables              []TableSpec
	WaitMinutesPerParty int
}

// NotifierConfig holds real-time fan-out configuration.
type NotifierConfig struct {
	BufferSize      int
	MaxSubscribers  int
	MaxMissed       int
	StreamKeepalive time.Duration
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	Enabled        bool
	APIKeys        map[string]bool
	JWTSecretKey   string
	AccessTokenTTL time.Duration
	StaffEmail     string
	StaffPassword  string
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	Enabled      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// BrokerConfig holds the NATS relay configuration.
type BrokerConfig struct {
	Enabled  bool
	Required bool
	URL      string
	Subject  string
}

// RedisConfig holds the distributed rate limiter store configuration.
type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
}

// Load creates a Config from environment variables.
// A .env file in the working directory is read first when present; real
// environment variables always win over values from the file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			RateLimit:   getEnvInt("RATE_LIMIT", 100),
			RateWindow:  getEnvDuration("RATE_WINDOW", time.Minute),
			CORSOrigins: parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser: getEnv("SWAGGER_USER", ""),
			SwaggerPass: getEnv("SWAGGER_PASS", ""),
		},
		Seating: SeatingConfig{
			Tables:              parseTableSpecs(os.Getenv("SEATING_TABLES")),
			WaitMinutesPerParty: getEnvInt("WAIT_MINUTES_PER_PARTY", 10),
		},
		Notifier: NotifierConfig{
			BufferSize:      getEnvInt("NOTIFIER_BUFFER_SIZE", 64),
			MaxSubscribers:  getEnvInt("NOTIFIER_MAX_SUBSCRIBERS", 1024),
			MaxMissed:       getEnvInt("NOTIFIER_MAX_MISSED", 16),
			StreamKeepalive: getEnvDuration("STREAM_KEEPALIVE", 30*time.Second),
		},
		Auth: AuthConfig{
			Enabled:        getEnvBool("AUTH_ENABLED", false),
			APIKeys:        parseAPIKeys(os.Getenv("API_KEYS")),
			JWTSecretKey:   getEnv("JWT_SECRET_KEY", "your-secret-key-change-in-production"),
			AccessTokenTTL: getEnvDuration("JWT_ACCESS_TOKEN_TTL", 12*time.Hour),
			StaffEmail:     getEnv("STAFF_EMAIL", ""),
			StaffPassword:  getEnv("STAFF_PASSWORD", ""),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "waitlist"),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Broker: BrokerConfig{
			Enabled:  getEnvBool("BROKER_ENABLED", false),
			Required: getEnvBool("BROKER_REQUIRED", false),
			URL:      getEnv("NATS_URL", "nats://localhost:4222"),
			Subject:  getEnv("NATS_SUBJECT", "waitlist.queue.updates"),
		},
		Redis: RedisConfig{
			Enabled:  getEnvBool("REDIS_ENABLED", false),
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

// parseTableSpecs parses "capacity:count" pairs, e.g. "2:4,4:6,6:2".
// Malformed or non-positive pairs are skipped.
func parseTableSpecs(s string) []TableSpec {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]TableSpec, 0, len(parts))
	for _, p := range parts {
		capStr, countStr, ok := strings.Cut(strings.TrimSpace(p), ":")
		if !ok {
			continue
		}
		capacity, err := strconv.Atoi(strings.TrimSpace(capStr))
		if err != nil || capacity <= 0 {
			continue
		}
		count, err := strconv.Atoi(strings.TrimSpace(countStr))
		if err != nil || count <= 0 {
			continue
		}
		result = append(result, TableSpec{Capacity: capacity, Count: count})
	}
	return result
}

func parseAPIKeys(s string) map[string]bool {
	if s == "" {
		return nil
	}
	keys := strings.Split(s, ",")
	result := make(map[string]bool, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			result[k] = true
		}
	}
	return result
}

func parseCORSOrigins(s string) []string {
	// Vite dev server defaults
	defaults := []string{
		"http://localhost:5173",
		"http://127.0.0.1:5173",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
