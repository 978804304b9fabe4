package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/bettolandro/BettoGames/internal/core/domain"
)

func TestSeed_EmptyStore(t *testing.T) {
	users := &stubUserRepo{}
	products := &stubProductRepo{}
	sessions := &stubSessionRepo{}

	if err := Seed(context.Background(), users, products, sessions, zerolog.Nop()); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	if len(users.users) != 2 {
		t.Fatalf("expected 2 seeded users, got %d", len(users.users))
	}
	admin, err := users.FindByEmail(context.Background(), SeedAdminEmail)
	if err != nil || admin.Role != domain.RoleAdmin {
		t.Fatalf("expected seeded admin, got %+v (%v)", admin, err)
	}
	client, err := users.FindByEmail(context.Background(), SeedClientEmail)
	if err != nil || client.Role != domain.RoleClient {
		t.Fatalf("expected seeded client, got %+v (%v)", client, err)
	}

	if len(products.products) != 4 {
		t.Fatalf("expected 4 seeded products, got %d", len(products.products))
	}
	for _, p := range products.products {
		if p.Price < 0 || p.Stock < 0 {
			t.Fatalf("seeded product with invalid numbers: %+v", p)
		}
	}
}

func TestSeed_SecondRunIsNoop(t *testing.T) {
	users := &stubUserRepo{}
	products := &stubProductRepo{}
	sessions := &stubSessionRepo{}

	if err := Seed(context.Background(), users, products, sessions, zerolog.Nop()); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	firstAdminID := users.users[0].ID

	if err := Seed(context.Background(), users, products, sessions, zerolog.Nop()); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}

	if len(users.users) != 2 || len(products.products) != 4 {
		t.Fatalf("second run must be a no-op, got %d users / %d products", len(users.users), len(products.products))
	}
	if users.users[0].ID != firstAdminID {
		t.Fatalf("existing users must not be recreated")
	}
}

func TestSeed_CredentialsUsable(t *testing.T) {
	users := &stubUserRepo{}
	sessions := &stubSessionRepo{}

	if err := Seed(context.Background(), users, &stubProductRepo{}, sessions, zerolog.Nop()); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	svc := NewAuthService(users, sessions, "secret", time.Hour, zerolog.Nop())
	_, adminSession, err := svc.Login(context.Background(), SeedAdminEmail, SeedAdminPassword)
	if err != nil {
		t.Fatalf("admin login failed: %v", err)
	}
	if !adminSession.IsAdmin() {
		t.Fatalf("expected admin session, got %+v", adminSession)
	}

	_, clientSession, err := svc.Login(context.Background(), SeedClientEmail, SeedClientPassword)
	if err != nil {
		t.Fatalf("client login failed: %v", err)
	}
	if clientSession.Role != domain.RoleClient {
		t.Fatalf("expected client session, got %+v", clientSession)
	}
}
