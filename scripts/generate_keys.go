//go:build ignore

// Prints fresh secrets for the waitlist .env file.
// Run with: go run scripts/generate_keys.go [-api-keys N]
package main

import (
	"crypto/rand"
	"encoding/base64"
	"flag"
	"fmt"
	"os"
	"strings"
)

func secureKey(length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func must(s string, err error) string {
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to generate key: %v\n", err)
		os.Exit(1)
	}
	return s
}

func main() {
	apiKeyCount := flag.Int("api-keys", 1, "number of front-desk API keys to generate")
	flag.Parse()

	jwtSecret := must(secureKey(32))

	apiKeys := make([]string, 0, *apiKeyCount)
	for i := 0; i < *apiKeyCount; i++ {
		// Keys are comma separated in API_KEYS, and the URL alphabet has no commas.
		apiKeys = append(apiKeys, must(secureKey(24)))
	}

	fmt.Println("# Staff login tokens")
	fmt.Printf("JWT_SECRET_KEY=%s\n", jwtSecret)
	fmt.Println()
	fmt.Println("# Front-desk devices without a staff login")
	fmt.Println("AUTH_ENABLED=true")
	fmt.Printf("API_KEYS=%s\n", strings.Join(apiKeys, ","))
	fmt.Println()
	fmt.Println("# Seeded staff account, created at startup when missing")
	fmt.Println("STAFF_EMAIL=host@example.com")
	fmt.Printf("STAFF_PASSWORD=%s\n", must(secureKey(12)))
}
