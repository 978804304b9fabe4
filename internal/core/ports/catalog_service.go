package ports

import (
	"context"

	"github.com/bettolandro/BettoGames/internal/core/domain"
)

// ListFilter narrows a catalog listing. Empty fields match everything.
type ListFilter struct {
	// Category filters by exact category name.
	Category string
	// Query matches case-insensitively against title and description.
	Query string
}

// ProductInput carries the writable fields of a product.
type ProductInput struct {
	Title    string
	Price    float64
	Stock    int
	Category string
	Cover    string
	Desc     string
}

// CatalogService is CRUD over the products collection.
type CatalogService interface {
	List(ctx context.Context, filter ListFilter) ([]domain.Product, error)
	// Categories returns distinct categories in first-seen order.
	Categories(ctx context.Context) ([]string, error)
	Find(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, input ProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, input ProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
