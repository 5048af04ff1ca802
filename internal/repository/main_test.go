//go:build integration

package repository

import (
	"context"
	"os"
	"testing"

	"github.com/guttosm/waitlist-service/internal/testutil"
	"github.com/stretchr/testify/require"
)

// TestMain starts one MongoDB container for every integration test in this package.
func TestMain(m *testing.M) {
	os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
}

// setupTestDB connects to the shared container using a database of its own.
func setupTestDB(t *testing.T) *MongoDB {
	db, err := NewMongoDB(testutil.GetSharedContainerURI(), testutil.SanitizeDBName(t.Name()))
	require.NoError(t, err)
	return db
}
