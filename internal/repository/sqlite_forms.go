package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"keyworker-data/internal/domain"
)

// SQLiteFormsRepository implements FormsRepository on the application
// database file.
type SQLiteFormsRepository struct {
	db *sql.DB
}

func NewSQLiteFormsRepository(db *sql.DB) *SQLiteFormsRepository {
	return &SQLiteFormsRepository{db: db}
}

var _ FormsRepository = (*SQLiteFormsRepository)(nil)

// querier is satisfied by *sql.DB and *sql.Tx so the upsert and replace
// logic can run standalone or inside SaveWithAppointments' transaction.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r *SQLiteFormsRepository) Get(ctx context.Context, residentID int64, monthYear string) (*domain.Form, error) {
	return getForm(ctx, r.db, residentID, monthYear)
}

func getForm(ctx context.Context, q querier, residentID int64, monthYear string) (*domain.Form, error) {
	form := &domain.Form{}
	fields := formFields(form)

	cols := make([]string, 0, len(fields)+3)
	cols = append(cols, "id", "service_user_id", "form_month_year")
	for _, f := range fields {
		cols = append(cols, f.column)
	}

	query := fmt.Sprintf(`SELECT %s FROM forms WHERE service_user_id = ? AND form_month_year = ?`,
		strings.Join(cols, ", "))

	dest := make([]any, 0, len(cols))
	dest = append(dest, &form.ID, &form.ResidentID, &form.MonthYear)
	raw := make([]sql.NullString, len(fields))
	for i := range fields {
		dest = append(dest, &raw[i])
	}

	err := q.QueryRowContext(ctx, query, residentID, monthYear).Scan(dest...)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get form: %w", err)
	}

	for i, f := range fields {
		if raw[i].Valid {
			v := raw[i].String
			*f.ptr = &v
		}
	}
	return form, nil
}

func (r *SQLiteFormsRepository) Upsert(ctx context.Context, form *domain.Form) (int64, error) {
	return upsertForm(ctx, r.db, form)
}

// upsertForm is the column-presence-driven save: only fields the caller
// actually set (non-nil pointers) make it into the statement. Partial
// drafts therefore never null out previously stored answers.
func upsertForm(ctx context.Context, q querier, form *domain.Form) (int64, error) {
	var present []formField
	for _, f := range formFields(form) {
		if *f.ptr != nil {
			present = append(present, f)
		}
	}

	var existingID int64
	err := q.QueryRowContext(ctx,
		`SELECT id FROM forms WHERE service_user_id = ? AND form_month_year = ?`,
		form.ResidentID, form.MonthYear).Scan(&existingID)
	switch {
	case err == sql.ErrNoRows:
		cols := []string{"service_user_id", "form_month_year"}
		placeholders := []string{"?", "?"}
		args := []any{form.ResidentID, form.MonthYear}
		for _, f := range present {
			cols = append(cols, f.column)
			placeholders = append(placeholders, "?")
			args = append(args, **f.ptr)
		}
		res, err := q.ExecContext(ctx,
			fmt.Sprintf(`INSERT INTO forms (%s) VALUES (%s)`,
				strings.Join(cols, ", "), strings.Join(placeholders, ", ")),
			args...)
		if err != nil {
			return 0, mapError("insert form", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return 0, fmt.Errorf("insert form id: %w", err)
		}
		form.ID = id
		return id, nil

	case err != nil:
		return 0, fmt.Errorf("find form: %w", err)

	default:
		if len(present) > 0 {
			sets := make([]string, 0, len(present))
			args := make([]any, 0, len(present)+1)
			for _, f := range present {
				sets = append(sets, f.column+" = ?")
				args = append(args, **f.ptr)
			}
			args = append(args, existingID)
			if _, err := q.ExecContext(ctx,
				fmt.Sprintf(`UPDATE forms SET %s WHERE id = ?`, strings.Join(sets, ", ")),
				args...); err != nil {
				return 0, mapError("update form", err)
			}
		}
		form.ID = existingID
		return existingID, nil
	}
}

func (r *SQLiteFormsRepository) Appointments(ctx context.Context, formID int64) ([]domain.Appointment, error) {
	return getAppointments(ctx, r.db, formID)
}

func getAppointments(ctx context.Context, q querier, formID int64) ([]domain.Appointment, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT form_id, name, last_seen, next_due, booked FROM appointments WHERE form_id = ? ORDER BY id`,
		formID)
	if err != nil {
		return nil, fmt.Errorf("get appointments: %w", err)
	}
	defer rows.Close()

	var appointments []domain.Appointment
	for rows.Next() {
		var (
			a                        domain.Appointment
			name, last, next, booked sql.NullString
		)
		if err := rows.Scan(&a.FormID, &name, &last, &next, &booked); err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		a.Name = name.String
		a.LastSeen = last.String
		a.NextDue = next.String
		a.Booked = booked.String
		appointments = append(appointments, a)
	}
	return appointments, rows.Err()
}

func (r *SQLiteFormsRepository) ReplaceAppointments(ctx context.Context, formID int64, appointments []domain.Appointment) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("replace appointments begin: %w", err)
	}
	defer tx.Rollback()

	if err := replaceAppointments(ctx, tx, formID, appointments); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("replace appointments commit: %w", err)
	}
	return nil
}

func replaceAppointments(ctx context.Context, q querier, formID int64, appointments []domain.Appointment) error {
	if _, err := q.ExecContext(ctx, `DELETE FROM appointments WHERE form_id = ?`, formID); err != nil {
		return fmt.Errorf("clear appointments: %w", err)
	}
	for _, a := range appointments {
		if _, err := q.ExecContext(ctx,
			`INSERT INTO appointments (form_id, name, last_seen, next_due, booked) VALUES (?, ?, ?, ?, ?)`,
			formID, a.Name, a.LastSeen, a.NextDue, a.Booked); err != nil {
			return mapError("insert appointment", err)
		}
	}
	return nil
}

// SaveWithAppointments is the one-transaction save the editor calls: the
// form row and its appointment set commit together or not at all.
func (r *SQLiteFormsRepository) SaveWithAppointments(ctx context.Context, form *domain.Form, appointments []domain.Appointment) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("save form begin: %w", err)
	}
	defer tx.Rollback()

	formID, err := upsertForm(ctx, tx, form)
	if err != nil {
		return 0, err
	}
	if appointments != nil {
		if err := replaceAppointments(ctx, tx, formID, appointments); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("save form commit: %w", err)
	}
	return formID, nil
}

func (r *SQLiteFormsRepository) Snapshot(ctx context.Context, residentID int64, monthYear string) (*domain.FormSnapshot, error) {
	form, err := getForm(ctx, r.db, residentID, monthYear)
	if err != nil || form == nil {
		return nil, err
	}

	var (
		resident domain.Resident
		dob      sql.NullString
	)
	err = r.db.QueryRowContext(ctx,
		`SELECT id, name, date_of_birth FROM service_users WHERE id = ?`, residentID).
		Scan(&resident.ID, &resident.Name, &dob)
	if err != nil {
		return nil, fmt.Errorf("snapshot resident: %w", err)
	}
	resident.DateOfBirth = dob.String

	appointments, err := getAppointments(ctx, r.db, form.ID)
	if err != nil {
		return nil, err
	}

	return &domain.FormSnapshot{
		Resident:     resident,
		MonthYear:    monthYear,
		Form:         *form,
		Appointments: appointments,
	}, nil
}
