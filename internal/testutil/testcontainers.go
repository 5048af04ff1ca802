//go:build integration

// Package testutil starts the backing services integration tests run against.
package testutil

import (
	"context"
	"fmt"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	mongoImage = "mongo:7.0"
	natsImage  = "nats:2.10-alpine"
	redisImage = "redis:7-alpine"
)

// Container is a running testcontainer and the address clients dial.
type Container struct {
	Container testcontainers.Container
	// Endpoint is a Mongo URI, a nats:// URL or a host:port for Redis.
	Endpoint string
}

// SetupMongoDB starts a MongoDB container. Prefer the shared container from
// SetupTestMain when a package has several integration tests.
func SetupMongoDB(ctx context.Context) (*Container, error) {
	mongoContainer, err := mongodb.Run(ctx, mongoImage)
	if err != nil {
		return nil, fmt.Errorf("failed to start MongoDB container: %w", err)
	}

	uri, err := mongoContainer.ConnectionString(ctx)
	if err != nil {
		_ = mongoContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}
	return &Container{Container: mongoContainer, Endpoint: uri}, nil
}

// SetupNATS starts a NATS server container.
func SetupNATS(ctx context.Context) (*Container, error) {
	c, err := startGeneric(ctx, testcontainers.ContainerRequest{
		Image:        natsImage,
		ExposedPorts: []string{"4222/tcp"},
		WaitingFor:   wait.ForLog("Server is ready"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start NATS container: %w", err)
	}

	endpoint, err := c.PortEndpoint(ctx, "4222/tcp", "nats")
	if err != nil {
		_ = c.Terminate(ctx)
		return nil, fmt.Errorf("failed to get NATS endpoint: %w", err)
	}
	return &Container{Container: c, Endpoint: endpoint}, nil
}

// SetupRedis starts a Redis container.
func SetupRedis(ctx context.Context) (*Container, error) {
	c, err := startGeneric(ctx, testcontainers.ContainerRequest{
		Image:        redisImage,
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start Redis container: %w", err)
	}

	endpoint, err := c.Endpoint(ctx, "")
	if err != nil {
		_ = c.Terminate(ctx)
		return nil, fmt.Errorf("failed to get Redis endpoint: %w", err)
	}
	return &Container{Container: c, Endpoint: endpoint}, nil
}

func startGeneric(ctx context.Context, req testcontainers.ContainerRequest) (testcontainers.Container, error) {
	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

// Cleanup terminates the container.
func (c *Container) Cleanup(ctx context.Context) error {
	if c.Container != nil {
		if err := c.Container.Terminate(ctx); err != nil {
			return fmt.Errorf("failed to terminate container: %w", err)
		}
	}
	return nil
}
