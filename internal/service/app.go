package service

import (
	"context"
	"database/sql"
	"fmt"

	"keyworker-data/internal/repository"

	"go.uber.org/zap"
)

// App wires the repositories and services over one database handle. It is
// the boundary the UI layer holds: plain records in, plain records out.
type App struct {
	Auth      *AuthService
	Residents *ResidentService
	Forms     *FormService
	Activity  *ActivityService

	users repository.UsersRepository
}

func NewApp(db *sql.DB, logger *zap.Logger) *App {
	usersRepo := repository.NewSQLiteUsersRepository(db)
	residentsRepo := repository.NewSQLiteResidentsRepository(db)
	formsRepo := repository.NewSQLiteFormsRepository(db)
	activityRepo := repository.NewSQLiteActivityRepository(db)

	return &App{
		Auth:      NewAuthService(usersRepo, activityRepo, logger),
		Residents: NewResidentService(residentsRepo, activityRepo, logger),
		Forms:     NewFormService(formsRepo, residentsRepo, activityRepo, logger),
		Activity:  NewActivityService(activityRepo, logger),
		users:     usersRepo,
	}
}

// Bootstrap seeds the default supervisor account when no such account
// exists yet. The seeded account carries first_login, so the placeholder
// password has to be rotated before the account is usable.
func (a *App) Bootstrap(ctx context.Context, supervisorPassword string) (bool, error) {
	hash, err := HashPassword(supervisorPassword)
	if err != nil {
		return false, fmt.Errorf("bootstrap: %w", err)
	}
	return a.users.EnsureDefaultSupervisor(ctx, hash)
}
