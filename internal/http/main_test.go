//go:build integration

package http

import (
	"context"
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/waitlist-service/internal/testutil"
)

// TestMain sets up a shared MongoDB container for all HTTP integration tests in this package.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
}
