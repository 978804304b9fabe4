package repository

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bettolandro/BettoGames/internal/core/domain"
	"github.com/bettolandro/BettoGames/internal/core/ports"
)

// Products persists the products collection under the "products" key,
// preserving insertion order.
type Products struct {
	store ports.KeyValueStore
	log   zerolog.Logger
}

func NewProducts(store ports.KeyValueStore, log zerolog.Logger) *Products {
	return &Products{store: store, log: log}
}

func (r *Products) All(ctx context.Context) ([]domain.Product, error) {
	return load(ctx, r.store, r.log, keyProducts, []domain.Product{}), nil
}

func (r *Products) Find(ctx context.Context, id string) (*domain.Product, error) {
	products, _ := r.All(ctx)
	for i := range products {
		if products[i].ID == id {
			p := products[i]
			return &p, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *Products) Create(ctx context.Context, product *domain.Product) error {
	products, _ := r.All(ctx)
	products = append(products, *product)
	return save(ctx, r.store, keyProducts, products)
}

// Update replaces the product with a matching id. Unknown ids rewrite
// the collection unchanged.
func (r *Products) Update(ctx context.Context, product *domain.Product) error {
	products, _ := r.All(ctx)
	for i := range products {
		if products[i].ID == product.ID {
			products[i] = *product
			break
		}
	}
	return save(ctx, r.store, keyProducts, products)
}

// Delete removes the product with a matching id; absent ids are a no-op.
// Cart references to the deleted product are left in place.
func (r *Products) Delete(ctx context.Context, id string) error {
	products, _ := r.All(ctx)
	kept := products[:0]
	for i := range products {
		if products[i].ID != id {
			kept = append(kept, products[i])
		}
	}
	return save(ctx, r.store, keyProducts, kept)
}
