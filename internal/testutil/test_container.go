//go:build integration

package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"
)

// Backing services a test package can ask SetupTestMain for.
const (
	MongoDB = "mongodb"
	NATS    = "nats"
	Redis   = "redis"
)

var setups = map[string]func(context.Context) (*Container, error){
	MongoDB: SetupMongoDB,
	NATS:    SetupNATS,
	Redis:   SetupRedis,
}

var (
	sharedMu         sync.RWMutex
	sharedContainers = map[string]*Container{}
)

// SetupTestMain starts one shared container per service, runs the tests and
// terminates the containers. Usage:
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.SetupTestMain(context.Background(), m, testutil.MongoDB, testutil.NATS))
//	}
func SetupTestMain(ctx context.Context, m *testing.M, services ...string) int {
	for _, name := range services {
		if err := startShared(ctx, name); err != nil {
			cleanupShared(ctx)
			panic(err)
		}
	}

	code := m.Run()

	cleanupShared(ctx)
	return code
}

// SetupTestMainWithMongoDB is SetupTestMain with only MongoDB.
func SetupTestMainWithMongoDB(ctx context.Context, m *testing.M) int {
	return SetupTestMain(ctx, m, MongoDB)
}

func startShared(ctx context.Context, name string) error {
	setup, ok := setups[name]
	if !ok {
		return fmt.Errorf("unknown test service %q", name)
	}

	sharedMu.Lock()
	defer sharedMu.Unlock()
	if _, running := sharedContainers[name]; running {
		return nil
	}
	c, err := setup(ctx)
	if err != nil {
		return err
	}
	sharedContainers[name] = c
	return nil
}

func cleanupShared(ctx context.Context) {
	sharedMu.Lock()
	defer sharedMu.Unlock()

	for name, c := range sharedContainers {
		if err := c.Cleanup(ctx); err != nil {
			// Docker reaps the container anyway.
			_, _ = fmt.Fprintf(os.Stderr, "Warning: failed to cleanup shared %s container: %v\n", name, err)
		}
		delete(sharedContainers, name)
	}
}

// SharedEndpoint returns the endpoint of a container started by SetupTestMain.
// Panics if that service was not requested.
func SharedEndpoint(name string) string {
	sharedMu.RLock()
	defer sharedMu.RUnlock()

	c, ok := sharedContainers[name]
	if !ok {
		panic("shared " + name + " container not initialized - pass it to SetupTestMain")
	}
	return c.Endpoint
}

// GetSharedContainerURI returns the URI of the shared MongoDB container.
func GetSharedContainerURI() string {
	return SharedEndpoint(MongoDB)
}

// SanitizeDBName turns a test name into a unique, valid MongoDB database name.
func SanitizeDBName(testName string) string {
	sanitized := strings.NewReplacer("/", "_", "\\", "_", " ", "_", ".", "_").Replace(testName)
	if len(sanitized) > 50 {
		sanitized = sanitized[:50]
	}
	return fmt.Sprintf("%s_%d", sanitized, time.Now().UnixNano()%1000000)
}
