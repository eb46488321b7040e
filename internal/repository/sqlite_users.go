package repository

import (
	"context"
	"database/sql"
	"fmt"

	"keyworker-data/internal/domain"
)

// SQLiteUsersRepository implements UsersRepository on the application
// database file.
type SQLiteUsersRepository struct {
	db *sql.DB
}

func NewSQLiteUsersRepository(db *sql.DB) *SQLiteUsersRepository {
	return &SQLiteUsersRepository{db: db}
}

var _ UsersRepository = (*SQLiteUsersRepository)(nil)

func (r *SQLiteUsersRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getUser(ctx, `SELECT id, username, password_hash, role, first_login FROM users WHERE username = ?`, username)
}

func (r *SQLiteUsersRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getUser(ctx, `SELECT id, username, password_hash, role, first_login FROM users WHERE id = ?`, id)
}

func (r *SQLiteUsersRepository) getUser(ctx context.Context, query string, arg any) (*domain.User, error) {
	var (
		u          domain.User
		firstLogin int
	)
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &firstLogin)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	u.FirstLogin = firstLogin == 1
	return &u, nil
}

func (r *SQLiteUsersRepository) Create(ctx context.Context, username, passwordHash, role string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (username, password_hash, role, first_login) VALUES (?, ?, ?, 1)`,
		username, passwordHash, role,
	)
	if err != nil {
		return 0, mapError("create user", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create user id: %w", err)
	}
	return id, nil
}

func (r *SQLiteUsersRepository) SetPasswordHash(ctx context.Context, id int64, passwordHash string, firstLogin bool) error {
	fl := 0
	if firstLogin {
		fl = 1
	}
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET password_hash = ?, first_login = ? WHERE id = ?`,
		passwordHash, fl, id,
	)
	if err != nil {
		return fmt.Errorf("set password hash: %w", err)
	}
	return nil
}

func (r *SQLiteUsersRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (r *SQLiteUsersRepository) List(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, username, password_hash, role, first_login FROM users ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var (
			u          domain.User
			firstLogin int
		)
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &firstLogin); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		u.FirstLogin = firstLogin == 1
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *SQLiteUsersRepository) EnsureDefaultSupervisor(ctx context.Context, passwordHash string) (bool, error) {
	existing, err := r.GetByUsername(ctx, "supervisor")
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}
	_, err = r.Create(ctx, "supervisor", passwordHash, domain.RoleSupervisor)
	if err != nil {
		return false, err
	}
	return true, nil
}
