package repository

import (
	"database/sql"
	"path/filepath"
	"testing"

	"keyworker-data/internal/config"
	"keyworker-data/internal/database"

	"github.com/stretchr/testify/require"
)

// newTestDB opens a fresh database file in a per-test temp dir with the
// full schema applied.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	cfg := &config.Config{}
	cfg.Database.Path = filepath.Join(t.TempDir(), "keyworker_test.db")
	cfg.Database.BusyTimeoutMS = 1000

	db, err := database.NewSQLiteDB(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, CreateSchema(db))
	return db
}

func strp(s string) *string { return &s }
