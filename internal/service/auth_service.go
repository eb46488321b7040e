package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"keyworker-data/internal/domain"
	"keyworker-data/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords; login reports them identically.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotAuthorized is returned when a non-supervisor session attempts
	// an account-management operation.
	ErrNotAuthorized = errors.New("supervisor role required")

	// ErrSelfDelete guards the signed-in account against deleting itself.
	ErrSelfDelete = errors.New("cannot delete the signed-in account")
)

// AuthService owns login, sessions and staff-account management.
type AuthService struct {
	users    repository.UsersRepository
	activity repository.ActivityRepository
	logger   *zap.Logger
}

func NewAuthService(users repository.UsersRepository, activity repository.ActivityRepository, logger *zap.Logger) *AuthService {
	return &AuthService{users: users, activity: activity, logger: logger}
}

// Login verifies credentials and issues an in-memory session. Success and
// failure both leave an audit entry. When the account still holds a legacy
// SHA-256 digest, the stored hash is upgraded to bcrypt in place.
//
// A session with FirstLogin set must not be allowed past the password
// change flow; callers check the flag.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.UserSession, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	var ok, legacy bool
	if user != nil {
		ok, legacy = verifyPassword(user.PasswordHash, password)
	}
	if user == nil || !ok {
		s.audit(ctx, username, "LOGIN FAILED", "Incorrect credentials provided.")
		return nil, ErrInvalidCredentials
	}

	if legacy {
		if newHash, hashErr := HashPassword(password); hashErr == nil {
			if upErr := s.users.SetPasswordHash(ctx, user.ID, newHash, user.FirstLogin); upErr != nil {
				s.logger.Warn("legacy hash upgrade failed", zap.String("username", username), zap.Error(upErr))
			}
		}
	}

	s.audit(ctx, user.Username, "LOGIN", "Successful login.")

	return &domain.UserSession{
		SessionID:  uuid.NewString(),
		UserID:     user.ID,
		Username:   user.Username,
		Role:       user.Role,
		FirstLogin: user.FirstLogin,
		IssuedAt:   time.Now(),
	}, nil
}

// ChangePassword is the self-initiated change. It clears first_login: once
// a user has chosen their own password there is nothing left to force.
func (s *AuthService) ChangePassword(ctx context.Context, session *domain.UserSession, newPassword string) error {
	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.users.SetPasswordHash(ctx, session.UserID, hash, false); err != nil {
		return err
	}

	details := "User changed their password."
	if session.FirstLogin {
		details = "User changed their initial password."
	}
	session.FirstLogin = false
	s.audit(ctx, session.Username, "PASSWORD CHANGE", details)
	return nil
}

// CreateUser adds a staff account. The username is derived from the given
// names; the account starts with first_login set. Supervisor only.
func (s *AuthService) CreateUser(ctx context.Context, session *domain.UserSession, firstName, lastName, password, role string) (string, error) {
	if !session.IsSupervisor() {
		return "", ErrNotAuthorized
	}
	username, err := DeriveUsername(firstName, lastName)
	if err != nil {
		return "", err
	}
	hash, err := HashPassword(password)
	if err != nil {
		return "", err
	}
	if _, err := s.users.Create(ctx, username, hash, role); err != nil {
		return "", err
	}
	s.audit(ctx, session.Username, "ADD APP USER", fmt.Sprintf("Added user: %s with role: %s", username, role))
	return username, nil
}

// DeleteUser removes a staff account. Supervisor only; the signed-in
// account cannot delete itself.
func (s *AuthService) DeleteUser(ctx context.Context, session *domain.UserSession, userID int64) error {
	if !session.IsSupervisor() {
		return ErrNotAuthorized
	}
	if userID == session.UserID {
		return ErrSelfDelete
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}
	if err := s.users.Delete(ctx, userID); err != nil {
		return err
	}
	s.audit(ctx, session.Username, "DELETE APP USER", fmt.Sprintf("Deleted user: %s (ID: %d)", user.Username, userID))
	return nil
}

// ResetPassword gives an account a temporary password and sets first_login,
// so the reset must be followed by a self-chosen change. Supervisor only.
func (s *AuthService) ResetPassword(ctx context.Context, session *domain.UserSession, userID int64, newPassword string) error {
	if !session.IsSupervisor() {
		return ErrNotAuthorized
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}
	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.users.SetPasswordHash(ctx, userID, hash, true); err != nil {
		return err
	}
	s.audit(ctx, session.Username, "RESET PASSWORD", fmt.Sprintf("Reset password for user: %s", user.Username))
	return nil
}

// ListUsers returns all accounts, ordered by username, with password
// digests blanked. Supervisor only.
func (s *AuthService) ListUsers(ctx context.Context, session *domain.UserSession) ([]domain.User, error) {
	if !session.IsSupervisor() {
		return nil, ErrNotAuthorized
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

// audit writes a best-effort activity entry. A failed audit write never
// fails the operation it describes.
func (s *AuthService) audit(ctx context.Context, user, action, details string) {
	if err := s.activity.Record(ctx, user, action, details); err != nil {
		s.logger.Warn("audit write failed",
			zap.String("action", action), zap.String("user", user), zap.Error(err))
	}
}
