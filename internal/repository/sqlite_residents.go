package repository

import (
	"context"
	"database/sql"
	"fmt"

	"keyworker-data/internal/domain"
)

// SQLiteResidentsRepository implements ResidentsRepository on the
// application database file.
type SQLiteResidentsRepository struct {
	db *sql.DB
}

func NewSQLiteResidentsRepository(db *sql.DB) *SQLiteResidentsRepository {
	return &SQLiteResidentsRepository{db: db}
}

var _ ResidentsRepository = (*SQLiteResidentsRepository)(nil)

func (r *SQLiteResidentsRepository) Add(ctx context.Context, name, dateOfBirth string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO service_users (name, date_of_birth) VALUES (?, ?)`,
		name, dateOfBirth,
	)
	if err != nil {
		return 0, mapError("add resident", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("add resident id: %w", err)
	}
	return id, nil
}

func (r *SQLiteResidentsRepository) Update(ctx context.Context, id int64, name, dateOfBirth string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE service_users SET name = ?, date_of_birth = ? WHERE id = ?`,
		name, dateOfBirth, id,
	)
	if err != nil {
		return mapError("update resident", err)
	}
	return nil
}

// Delete cascades appointments -> forms -> resident inside one transaction.
// The order matters: appointments reference forms, forms reference the
// resident.
func (r *SQLiteResidentsRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("delete resident begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM appointments WHERE form_id IN (SELECT id FROM forms WHERE service_user_id = ?)`, id); err != nil {
		return fmt.Errorf("delete resident appointments: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM forms WHERE service_user_id = ?`, id); err != nil {
		return fmt.Errorf("delete resident forms: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM service_users WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete resident: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("delete resident commit: %w", err)
	}
	return nil
}

func (r *SQLiteResidentsRepository) Get(ctx context.Context, id int64) (*domain.Resident, error) {
	var (
		res domain.Resident
		dob sql.NullString
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, date_of_birth FROM service_users WHERE id = ?`, id).
		Scan(&res.ID, &res.Name, &dob)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get resident: %w", err)
	}
	res.DateOfBirth = dob.String
	return &res, nil
}

func (r *SQLiteResidentsRepository) List(ctx context.Context) ([]domain.Resident, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, date_of_birth FROM service_users ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list residents: %w", err)
	}
	defer rows.Close()

	var residents []domain.Resident
	for rows.Next() {
		var (
			res domain.Resident
			dob sql.NullString
		)
		if err := rows.Scan(&res.ID, &res.Name, &dob); err != nil {
			return nil, fmt.Errorf("scan resident: %w", err)
		}
		res.DateOfBirth = dob.String
		residents = append(residents, res)
	}
	return residents, rows.Err()
}
