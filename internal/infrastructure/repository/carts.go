package repository

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bettolandro/BettoGames/internal/core/domain"
	"github.com/bettolandro/BettoGames/internal/core/ports"
)

// Carts persists one cart collection per identity key, under
// "cart_<identity-key>". A key comes into existence the first time an
// identity saves a cart and is never garbage-collected.
type Carts struct {
	store ports.KeyValueStore
	log   zerolog.Logger
}

func NewCarts(store ports.KeyValueStore, log zerolog.Logger) *Carts {
	return &Carts{store: store, log: log}
}

func (r *Carts) Items(ctx context.Context, identityKey string) ([]domain.CartItem, error) {
	return load(ctx, r.store, r.log, cartKeyPrefix+identityKey, []domain.CartItem{}), nil
}

func (r *Carts) Save(ctx context.Context, identityKey string, items []domain.CartItem) error {
	if items == nil {
		items = []domain.CartItem{}
	}
	return save(ctx, r.store, cartKeyPrefix+identityKey, items)
}
