// Package dbtest opens throwaway in-memory databases for repository tests.
package dbtest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	"github.com/redmonkez12/courses-api/internal/config"
	"github.com/redmonkez12/courses-api/internal/database"
)

// New returns a migrated in-memory SQLite database closed at test cleanup.
func New(t testing.TB) *bun.DB {
	t.Helper()

	db, err := database.Open(t.Context(), config.DatabaseConfig{
		Driver:      config.DriverSQLite,
		SQLitePath:  ":memory:",
		AutoMigrate: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}
