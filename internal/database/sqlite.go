package database

import (
	"database/sql"
	"fmt"

	"keyworker-data/internal/config"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// NewSQLiteDB opens (creating if needed) the application database file.
// Foreign keys are enforced per connection — the schema relies on them for
// the appointments->forms and forms->service_users relations — and a busy
// timeout absorbs rapid sequential writes from the UI.
func NewSQLiteDB(cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("sqlite", cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// One writer at a time. sqlite serializes writes anyway; a single
	// connection keeps the per-connection pragmas in force everywhere.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	if _, err := db.Exec(fmt.Sprintf(`PRAGMA busy_timeout = %d`, cfg.Database.BusyTimeoutMS)); err != nil {
		db.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}
