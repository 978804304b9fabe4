package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bettolandro/BettoGames/internal/core/domain"
	"github.com/bettolandro/BettoGames/internal/core/ports"
)

// Demo credentials seeded on first run. Documented on purpose: this is
// a demo storefront, not a production identity system.
const (
	SeedAdminEmail     = "admin@vg.cl"
	SeedAdminPassword  = "Admin123!"
	SeedClientEmail    = "gamer@vg.cl"
	SeedClientPassword = "Gamer123!"
)

type seedProduct struct {
	title    string
	price    float64
	stock    int
	category string
	cover    string
	desc     string
}

var seedCatalog = []seedProduct{
	{"Elden Ring", 44990, 10, "RPG", "img/elden-ring.jpg",
		"Acción RPG desafiante del mundo abierto de FromSoftware."},
	{"Hades II", 34990, 12, "Roguelike", "img/hades2.jpg",
		"Secuela del premiado roguelike con combate rápido y rejugable."},
	{"Spider-Man 2", 55990, 8, "Acción", "img/spiderman2.jpg",
		"Superhéroes, balanceos por la ciudad y narrativa cinemática."},
	{"Stardew Valley", 12990, 30, "Simulación", "img/stardew.jpg",
		"Granjas, amistad y muchas horas de paz pixel art."},
}

// Seed populates an empty store with the demo accounts and catalog and
// initialises the session record. Running it against a non-empty store
// is a no-op for the populated collections.
func Seed(ctx context.Context, users ports.UserRepository, products ports.ProductRepository, sessions ports.SessionRepository, log zerolog.Logger) error {
	existing, err := users.All(ctx)
	if err != nil {
		return err
	}
	if len(existing) == 0 {
		if err := seedUser(ctx, users, "Admin", SeedAdminEmail, SeedAdminPassword, domain.RoleAdmin); err != nil {
			return err
		}
		if err := seedUser(ctx, users, "Gamer", SeedClientEmail, SeedClientPassword, domain.RoleClient); err != nil {
			return err
		}
		log.Info().Msg("seeded demo users")
	}

	catalog, err := products.All(ctx)
	if err != nil {
		return err
	}
	if len(catalog) == 0 {
		now := time.Now().UTC()
		for _, sp := range seedCatalog {
			p := &domain.Product{
				ID:        uuid.NewString(),
				Title:     sp.title,
				Price:     sp.price,
				Stock:     sp.stock,
				Category:  sp.category,
				Cover:     sp.cover,
				Desc:      sp.desc,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := products.Create(ctx, p); err != nil {
				return err
			}
		}
		log.Info().Int("products", len(seedCatalog)).Msg("seeded demo catalog")
	}

	current, err := sessions.Current(ctx)
	if err != nil {
		return err
	}
	if current == nil {
		if err := sessions.Clear(ctx); err != nil {
			return err
		}
	}
	return nil
}

func seedUser(ctx context.Context, users ports.UserRepository, name, email, password, role string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	return users.Create(ctx, &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}
