package ports

import (
	"context"

	"github.com/bettolandro/BettoGames/internal/core/domain"
)

// AuthService manages identity: the users collection and the single
// current-session record.
type AuthService interface {
	// Current returns the active session, or nil when nobody is logged in.
	Current(ctx context.Context) (*domain.Session, error)
	// Login verifies credentials, writes the session record and returns a
	// bearer token for it. Unknown email and wrong password both yield
	// domain.ErrInvalidCredentials, indistinguishably.
	Login(ctx context.Context, email, password string) (string, *domain.Session, error)
	// Logout clears the session record, invalidating outstanding tokens.
	Logout(ctx context.Context) error
	// Register creates a client-role user. It does not log the user in.
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	// ResetPassword sets the fixed demo temporary password and returns it.
	ResetPassword(ctx context.Context, email string) (string, error)
	// UpdateProfile renames the session's user and optionally changes the
	// password, refreshing the session record.
	UpdateProfile(ctx context.Context, name, newPassword string) (*domain.Session, error)
}
