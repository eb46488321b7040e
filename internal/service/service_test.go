package service

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"keyworker-data/internal/config"
	"keyworker-data/internal/database"
	"keyworker-data/internal/domain"
	"keyworker-data/internal/repository"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestApp wires the full service stack over a fresh database file.
func newTestApp(t *testing.T) (*App, *sql.DB) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Database.Path = filepath.Join(t.TempDir(), "keyworker_test.db")
	cfg.Database.BusyTimeoutMS = 1000

	db, err := database.NewSQLiteDB(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, repository.CreateSchema(db))
	return NewApp(db, zap.NewNop()), db
}

// supervisorSession logs in as the bootstrapped supervisor account.
func supervisorSession(t *testing.T, app *App) *domain.UserSession {
	t.Helper()
	ctx := context.Background()

	created, err := app.Bootstrap(ctx, "letmein")
	require.NoError(t, err)
	require.True(t, created)

	session, err := app.Auth.Login(ctx, "supervisor", "letmein")
	require.NoError(t, err)
	return session
}

// lastActivity returns the newest audit entry.
func lastActivity(t *testing.T, app *App) domain.ActivityEntry {
	t.Helper()
	entries, err := app.Activity.List(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	return entries[0]
}

func strp(s string) *string { return &s }
