package service

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bettolandro/BettoGames/internal/core/domain"
	"github.com/bettolandro/BettoGames/internal/core/ports"
)

// TempPassword is the fixed temporary password set by the demo
// password-reset flow. Publicly known on purpose; do not reuse the
// pattern outside a demo.
const TempPassword = "Temporal123!"

// AuthService implements login, logout, registration, password reset
// and profile updates over the users and session repositories.
type AuthService struct {
	users     ports.UserRepository
	sessions  ports.SessionRepository
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionRepository, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{users: users, sessions: sessions, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

func (s *AuthService) Current(ctx context.Context) (*domain.Session, error) {
	return s.sessions.Current(ctx)
}

// Login matches the email case-insensitively and the password against
// the stored hash. Unknown email and wrong password collapse into the
// same ErrInvalidCredentials so callers cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	session := &domain.Session{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role}
	if err := s.sessions.Save(ctx, session); err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(session)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("login")
	return token, session, nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return err
	}
	s.log.Info().Msg("logout")
	return nil
}

// Register creates a client-role account. The new user is not logged in.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleClient,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("user registered")
	return user, nil
}

// ResetPassword sets the fixed demo temporary password for the account
// and returns it so the caller can show it to the user.
func (s *AuthService) ResetPassword(ctx context.Context, email string) (string, error) {
	user, err := s.users.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(TempPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now().UTC()
	if err := s.users.Update(ctx, user); err != nil {
		return "", err
	}

	s.log.Info().Str("user_id", user.ID).Msg("password reset to temporary value")
	return TempPassword, nil
}

// UpdateProfile renames the session's user and, when newPassword is
// non-empty, replaces the password. The session record is refreshed so
// the new name is visible immediately.
func (s *AuthService) UpdateProfile(ctx context.Context, name, newPassword string) (*domain.Session, error) {
	session, err := s.sessions.Current(ctx)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrNoSession
	}

	user, err := s.users.FindByID(ctx, session.ID)
	if err != nil {
		return nil, err
	}

	user.Name = strings.TrimSpace(name)
	if newPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now().UTC()
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	refreshed := &domain.Session{ID: user.ID, Name: user.Name, Email: user.Email, Role: user.Role}
	if err := s.sessions.Save(ctx, refreshed); err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("profile updated")
	return refreshed, nil
}

func (s *AuthService) generateToken(session *domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"sub":   session.ID,
		"name":  session.Name,
		"email": session.Email,
		"role":  session.Role,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
