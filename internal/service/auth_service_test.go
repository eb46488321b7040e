package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"keyworker-data/internal/domain"
	"keyworker-data/internal/repository"

	"github.com/stretchr/testify/require"
)

func TestAuthService_LoginSuccessAndFailure(t *testing.T) {
	app, _ := newTestApp(t)
	ctx := context.Background()
	session := supervisorSession(t, app)

	require.Equal(t, "supervisor", session.Username)
	require.True(t, session.IsSupervisor())
	require.True(t, session.FirstLogin, "seeded supervisor must be forced through a password change")
	require.NotEmpty(t, session.SessionID)

	entry := lastActivity(t, app)
	require.Equal(t, "LOGIN", entry.Action)
	require.Equal(t, "supervisor", entry.User)

	_, err := app.Auth.Login(ctx, "supervisor", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	entry = lastActivity(t, app)
	require.Equal(t, "LOGIN FAILED", entry.Action)

	// Unknown usernames report identically.
	_, err = app.Auth.Login(ctx, "nobody", "whatever")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_LegacyHashUpgradedOnLogin(t *testing.T) {
	app, db := newTestApp(t)
	ctx := context.Background()

	// An account as an old database file would hold it: unsalted sha256.
	sum := sha256.Sum256([]byte("oldpass"))
	users := repository.NewSQLiteUsersRepository(db)
	id, err := users.Create(ctx, "jane.doe", hex.EncodeToString(sum[:]), domain.RoleStaff)
	require.NoError(t, err)

	session, err := app.Auth.Login(ctx, "jane.doe", "oldpass")
	require.NoError(t, err)
	require.True(t, session.FirstLogin, "the upgrade must not disturb the first_login flag")

	stored, err := users.GetByID(ctx, id)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(stored.PasswordHash, "$2"), "hash rewritten as bcrypt")

	// And the rewritten hash still verifies.
	_, err = app.Auth.Login(ctx, "jane.doe", "oldpass")
	require.NoError(t, err)
}

func TestAuthService_FirstLoginFlow(t *testing.T) {
	app, _ := newTestApp(t)
	ctx := context.Background()
	supervisor := supervisorSession(t, app)

	username, err := app.Auth.CreateUser(ctx, supervisor, "Jane", "Doe", "temp123", domain.RoleStaff)
	require.NoError(t, err)
	require.Equal(t, "jane.doe", username)

	session, err := app.Auth.Login(ctx, "jane.doe", "temp123")
	require.NoError(t, err)
	require.True(t, session.FirstLogin)

	require.NoError(t, app.Auth.ChangePassword(ctx, session, "chosen-by-jane"))
	require.False(t, session.FirstLogin)

	session, err = app.Auth.Login(ctx, "jane.doe", "chosen-by-jane")
	require.NoError(t, err)
	require.False(t, session.FirstLogin, "self-initiated change clears the flag")

	// A supervisor reset forces the change flow again.
	require.NoError(t, app.Auth.ResetPassword(ctx, supervisor, session.UserID, "temp-again"))
	session, err = app.Auth.Login(ctx, "jane.doe", "temp-again")
	require.NoError(t, err)
	require.True(t, session.FirstLogin)
}

func TestAuthService_SupervisorOnlyOperations(t *testing.T) {
	app, _ := newTestApp(t)
	ctx := context.Background()
	supervisor := supervisorSession(t, app)

	_, err := app.Auth.CreateUser(ctx, supervisor, "Jane", "Doe", "temp123", domain.RoleStaff)
	require.NoError(t, err)
	staff, err := app.Auth.Login(ctx, "jane.doe", "temp123")
	require.NoError(t, err)

	_, err = app.Auth.CreateUser(ctx, staff, "Bob", "Carter", "x", domain.RoleStaff)
	require.ErrorIs(t, err, ErrNotAuthorized)
	err = app.Auth.DeleteUser(ctx, staff, supervisor.UserID)
	require.ErrorIs(t, err, ErrNotAuthorized)
	err = app.Auth.ResetPassword(ctx, staff, supervisor.UserID, "x")
	require.ErrorIs(t, err, ErrNotAuthorized)
	_, err = app.Auth.ListUsers(ctx, staff)
	require.ErrorIs(t, err, ErrNotAuthorized)

	// Username collisions surface as the typed outcome, not a crash.
	_, err = app.Auth.CreateUser(ctx, supervisor, "Jane", "Doe", "other", domain.RoleStaff)
	require.ErrorIs(t, err, repository.ErrAlreadyExists)

	// The signed-in account cannot delete itself.
	err = app.Auth.DeleteUser(ctx, supervisor, supervisor.UserID)
	require.ErrorIs(t, err, ErrSelfDelete)

	users, err := app.Auth.ListUsers(ctx, supervisor)
	require.NoError(t, err)
	require.Len(t, users, 2)
	for _, u := range users {
		require.Empty(t, u.PasswordHash, "listing never exposes digests")
	}

	err = app.Auth.DeleteUser(ctx, supervisor, staff.UserID)
	require.NoError(t, err)
	entry := lastActivity(t, app)
	require.Equal(t, "DELETE APP USER", entry.Action)
	require.Contains(t, entry.Details, "jane.doe")
}
