package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bettolandro/BettoGames/internal/core/domain"
	"github.com/bettolandro/BettoGames/internal/core/ports"
	"github.com/bettolandro/BettoGames/internal/core/validate"
)

// CatalogService is CRUD over the products collection.
type CatalogService struct {
	products ports.ProductRepository
	log      zerolog.Logger
}

func NewCatalogService(products ports.ProductRepository, log zerolog.Logger) *CatalogService {
	return &CatalogService{products: products, log: log}
}

// List returns products in insertion order, optionally narrowed by
// category and a case-insensitive title/description search.
func (s *CatalogService) List(ctx context.Context, filter ports.ListFilter) ([]domain.Product, error) {
	products, err := s.products.All(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(filter.Query))
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Title), q) &&
			!strings.Contains(strings.ToLower(p.Desc), q) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// Categories returns the distinct categories in first-seen order.
func (s *CatalogService) Categories(ctx context.Context) ([]string, error) {
	products, err := s.products.All(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(products))
	var out []string
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out, nil
}

func (s *CatalogService) Find(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.Find(ctx, id)
}

func (s *CatalogService) Create(ctx context.Context, input ports.ProductInput) (*domain.Product, error) {
	if errs := validateProduct(input); len(errs) > 0 {
		return nil, errs
	}

	now := time.Now().UTC()
	product := &domain.Product{
		ID:        uuid.NewString(),
		Title:     strings.TrimSpace(input.Title),
		Price:     input.Price,
		Stock:     input.Stock,
		Category:  strings.TrimSpace(input.Category),
		Cover:     strings.TrimSpace(input.Cover),
		Desc:      strings.TrimSpace(input.Desc),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}

	s.log.Info().Str("product_id", product.ID).Str("title", product.Title).Msg("product created")
	return product, nil
}

// Update replaces the product with a matching id. An unknown id leaves
// the collection untouched.
func (s *CatalogService) Update(ctx context.Context, id string, input ports.ProductInput) (*domain.Product, error) {
	if errs := validateProduct(input); len(errs) > 0 {
		return nil, errs
	}

	product := &domain.Product{
		ID:        id,
		Title:     strings.TrimSpace(input.Title),
		Price:     input.Price,
		Stock:     input.Stock,
		Category:  strings.TrimSpace(input.Category),
		Cover:     strings.TrimSpace(input.Cover),
		Desc:      strings.TrimSpace(input.Desc),
		UpdatedAt: time.Now().UTC(),
	}
	if existing, err := s.products.Find(ctx, id); err == nil {
		product.CreatedAt = existing.CreatedAt
	}

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}

	s.log.Info().Str("product_id", id).Msg("product updated")
	return product, nil
}

func (s *CatalogService) Delete(ctx context.Context, id string) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

func validateProduct(input ports.ProductInput) validate.Errors {
	errs := validate.Errors{}
	if len(strings.TrimSpace(input.Title)) < 2 {
		errs["title"] = "title is too short"
	}
	if !validate.NonNegativePrice(input.Price) {
		errs["price"] = "price must be a non-negative number"
	}
	if !validate.NonNegativeInt(float64(input.Stock)) {
		errs["stock"] = "stock must be a non-negative integer"
	}
	if len(strings.TrimSpace(input.Category)) < 2 {
		errs["category"] = "category is too short"
	}
	if !strings.HasPrefix(strings.TrimSpace(input.Cover), "http") {
		errs["cover"] = "cover must be an http(s) URL"
	}
	return errs
}
