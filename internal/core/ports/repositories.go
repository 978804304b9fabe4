package ports

import (
	"context"

	"github.com/bettolandro/BettoGames/internal/core/domain"
)

// UserRepository persists the users collection.
type UserRepository interface {
	All(ctx context.Context) ([]domain.User, error)
	// FindByEmail matches case-insensitively.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
}

// ProductRepository persists the products collection in insertion order.
type ProductRepository interface {
	All(ctx context.Context) ([]domain.Product, error)
	Find(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) error
	// Update replaces the product with a matching id; unknown ids are a no-op.
	Update(ctx context.Context, product *domain.Product) error
	// Delete removes the product with a matching id; unknown ids are a no-op.
	// References from existing carts are never cascaded.
	Delete(ctx context.Context, id string) error
}

// CartRepository persists one cart collection per identity key.
type CartRepository interface {
	Items(ctx context.Context, identityKey string) ([]domain.CartItem, error)
	Save(ctx context.Context, identityKey string, items []domain.CartItem) error
}

// SessionRepository persists the single current-session record.
type SessionRepository interface {
	// Current returns the active session, or nil when nobody is logged in.
	Current(ctx context.Context) (*domain.Session, error)
	Save(ctx context.Context, session *domain.Session) error
	Clear(ctx context.Context) error
}
