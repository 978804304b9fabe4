package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bettolandro/BettoGames/internal/core/domain"
)

type stubUserRepo struct {
	users []domain.User
}

func (r *stubUserRepo) All(_ context.Context) ([]domain.User, error) {
	return append([]domain.User(nil), r.users...), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for i := range r.users {
		if strings.EqualFold(r.users[i].Email, email) {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	for i := range r.users {
		if strings.EqualFold(r.users[i].Email, user.Email) {
			return domain.ErrEmailTaken
		}
	}
	r.users = append(r.users, *user)
	return nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	for i := range r.users {
		if r.users[i].ID == user.ID {
			r.users[i] = *user
			return nil
		}
	}
	return domain.ErrUserNotFound
}

type stubSessionRepo struct {
	session *domain.Session
}

func (r *stubSessionRepo) Current(_ context.Context) (*domain.Session, error) {
	return r.session, nil
}

func (r *stubSessionRepo) Save(_ context.Context, session *domain.Session) error {
	r.session = session
	return nil
}

func (r *stubSessionRepo) Clear(_ context.Context) error {
	r.session = nil
	return nil
}

func newAuthService(users *stubUserRepo, sessions *stubSessionRepo) *AuthService {
	return NewAuthService(users, sessions, "secret", time.Hour, zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	users := &stubUserRepo{}
	svc := newAuthService(users, &stubSessionRepo{})

	user, err := svc.Register(context.Background(), "Alice", "alice@example.com", "Abcdefg1!")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Role != domain.RoleClient {
		t.Fatalf("expected client role, got %s", user.Role)
	}
	if user.PasswordHash == "Abcdefg1!" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Abcdefg1!")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_DoesNotLogin(t *testing.T) {
	sessions := &stubSessionRepo{}
	svc := newAuthService(&stubUserRepo{}, sessions)

	if _, err := svc.Register(context.Background(), "Alice", "alice@example.com", "Abcdefg1!"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if sessions.session != nil {
		t.Fatalf("register must not create a session")
	}
}

func TestAuthService_Register_DuplicateEmailCaseInsensitive(t *testing.T) {
	users := &stubUserRepo{}
	svc := newAuthService(users, &stubSessionRepo{})

	if _, err := svc.Register(context.Background(), "Alice", "alice@example.com", "Abcdefg1!"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "Other", "ALICE@Example.COM", "Abcdefg1!"); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if len(users.users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(users.users))
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	users := &stubUserRepo{}
	sessions := &stubSessionRepo{}
	svc := newAuthService(users, sessions)

	if _, err := svc.Register(context.Background(), "Gamer", "new@x.com", "Abcdefg1!"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, session, err := svc.Login(context.Background(), "NEW@X.COM", "Abcdefg1!")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if session.Role != domain.RoleClient || session.Email != "new@x.com" {
		t.Fatalf("unexpected session: %+v", session)
	}
	if sessions.session == nil || sessions.session.ID != session.ID {
		t.Fatalf("session record not written")
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["sub"] != session.ID || claims["role"] != domain.RoleClient {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Login_GenericFailure(t *testing.T) {
	users := &stubUserRepo{}
	svc := newAuthService(users, &stubSessionRepo{})

	if _, err := svc.Register(context.Background(), "Alice", "alice@example.com", "Abcdefg1!"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// Unknown email and wrong password must be indistinguishable.
	_, _, errUnknown := svc.Login(context.Background(), "nobody@example.com", "Abcdefg1!")
	_, _, errWrongPwd := svc.Login(context.Background(), "alice@example.com", "wrong")
	if errUnknown != domain.ErrInvalidCredentials || errWrongPwd != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for both, got %v / %v", errUnknown, errWrongPwd)
	}
}

func TestAuthService_Logout(t *testing.T) {
	sessions := &stubSessionRepo{session: &domain.Session{ID: "u1"}}
	svc := newAuthService(&stubUserRepo{}, sessions)

	if err := svc.Logout(context.Background()); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if sessions.session != nil {
		t.Fatalf("session record not cleared")
	}
}

func TestAuthService_ResetPassword(t *testing.T) {
	users := &stubUserRepo{}
	svc := newAuthService(users, &stubSessionRepo{})

	if _, err := svc.ResetPassword(context.Background(), "nobody@example.com"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	if _, err := svc.Register(context.Background(), "Alice", "alice@example.com", "Abcdefg1!"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	temp, err := svc.ResetPassword(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("reset failed: %v", err)
	}
	if temp != TempPassword {
		t.Fatalf("unexpected temporary password: %q", temp)
	}

	if _, _, err := svc.Login(context.Background(), "alice@example.com", "Abcdefg1!"); err != domain.ErrInvalidCredentials {
		t.Fatalf("old password should no longer work, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "alice@example.com", TempPassword); err != nil {
		t.Fatalf("temporary password login failed: %v", err)
	}
}

func TestAuthService_UpdateProfile_NoSession(t *testing.T) {
	svc := newAuthService(&stubUserRepo{}, &stubSessionRepo{})

	if _, err := svc.UpdateProfile(context.Background(), "New Name", ""); err != domain.ErrNoSession {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestAuthService_UpdateProfile_RefreshesSession(t *testing.T) {
	users := &stubUserRepo{}
	sessions := &stubSessionRepo{}
	svc := newAuthService(users, sessions)

	if _, err := svc.Register(context.Background(), "Alice", "alice@example.com", "Abcdefg1!"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "alice@example.com", "Abcdefg1!"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	session, err := svc.UpdateProfile(context.Background(), "Alicia", "Xyzabcd9?")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if session.Name != "Alicia" || sessions.session.Name != "Alicia" {
		t.Fatalf("session record not refreshed: %+v", sessions.session)
	}

	if _, _, err := svc.Login(context.Background(), "alice@example.com", "Xyzabcd9?"); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
}
