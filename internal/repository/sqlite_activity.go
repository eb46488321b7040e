package repository

import (
	"context"
	"database/sql"
	"fmt"

	"keyworker-data/internal/domain"
)

// SQLiteActivityRepository implements ActivityRepository on the application
// database file.
type SQLiteActivityRepository struct {
	db *sql.DB
}

func NewSQLiteActivityRepository(db *sql.DB) *SQLiteActivityRepository {
	return &SQLiteActivityRepository{db: db}
}

var _ ActivityRepository = (*SQLiteActivityRepository)(nil)

func (r *SQLiteActivityRepository) Record(ctx context.Context, user, action, details string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO activity_log (user, action, details) VALUES (?, ?, ?)`,
		user, action, details)
	if err != nil {
		return fmt.Errorf("record activity: %w", err)
	}
	return nil
}

func (r *SQLiteActivityRepository) ListAll(ctx context.Context) ([]domain.ActivityEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, timestamp, user, action, details FROM activity_log ORDER BY timestamp DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	defer rows.Close()

	var entries []domain.ActivityEntry
	for rows.Next() {
		var (
			e       domain.ActivityEntry
			ts      sql.NullTime
			details sql.NullString
		)
		if err := rows.Scan(&e.ID, &ts, &e.User, &e.Action, &details); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		// The driver decodes CURRENT_TIMESTAMP values as time.Time in UTC.
		if ts.Valid {
			e.Timestamp = ts.Time.UTC()
		}
		e.Details = details.String
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
