package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bettolandro/BettoGames/internal/core/domain"
	"github.com/bettolandro/BettoGames/internal/core/ports"
	"github.com/bettolandro/BettoGames/internal/core/validate"
)

// GuestIdentity is the fixed cart identity key used when nobody is
// logged in.
const GuestIdentity = "guest"

// CartService is per-identity CRUD over cart collections, joined
// against the catalog for subtotals.
type CartService struct {
	carts   ports.CartRepository
	catalog ports.ProductRepository
	log     zerolog.Logger
}

func NewCartService(carts ports.CartRepository, catalog ports.ProductRepository, log zerolog.Logger) *CartService {
	return &CartService{carts: carts, catalog: catalog, log: log}
}

// IdentityKey derives the cart partition key for a session: the
// lowercased email when authenticated, the guest constant otherwise.
// Switching sessions switches carts; carts are never merged.
func IdentityKey(session *domain.Session) string {
	if session == nil || session.Email == "" {
		return GuestIdentity
	}
	return strings.ToLower(session.Email)
}

func (s *CartService) Items(ctx context.Context, session *domain.Session) ([]domain.CartItem, error) {
	return s.carts.Items(ctx, IdentityKey(session))
}

// Add increments the quantity of an existing line, or inserts a new one
// at quantity 1. Adding the same product twice yields one line with
// quantity 2, never two lines.
func (s *CartService) Add(ctx context.Context, session *domain.Session, productID string) error {
	key := IdentityKey(session)
	items, err := s.carts.Items(ctx, key)
	if err != nil {
		return err
	}

	found := false
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		items = append(items, domain.CartItem{ProductID: productID, Quantity: 1})
	}

	if err := s.carts.Save(ctx, key, items); err != nil {
		return err
	}
	s.log.Debug().Str("identity", key).Str("product_id", productID).Msg("cart add")
	return nil
}

// SetQuantity replaces the quantity of the matching line. Lines for
// unknown products are left untouched.
func (s *CartService) SetQuantity(ctx context.Context, session *domain.Session, productID string, quantity int) error {
	if quantity < 1 {
		return validate.Errors{"quantity": "quantity must be at least 1"}
	}

	key := IdentityKey(session)
	items, err := s.carts.Items(ctx, key)
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = quantity
		}
	}
	return s.carts.Save(ctx, key, items)
}

func (s *CartService) Remove(ctx context.Context, session *domain.Session, productID string) error {
	key := IdentityKey(session)
	items, err := s.carts.Items(ctx, key)
	if err != nil {
		return err
	}
	kept := items[:0]
	for _, it := range items {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	return s.carts.Save(ctx, key, kept)
}

func (s *CartService) Clear(ctx context.Context, session *domain.Session) error {
	return s.carts.Save(ctx, IdentityKey(session), nil)
}

// Total sums quantity × current catalog price. A line whose product has
// been deleted contributes 0; it is degradation, not an error.
func (s *CartService) Total(ctx context.Context, session *domain.Session) (float64, error) {
	detail, err := s.Detail(ctx, session)
	if err != nil {
		return 0, err
	}
	return detail.Total, nil
}

// Detail joins the cart against the catalog for rendering. Stale lines
// are flagged Missing rather than dropped, so callers can decide how to
// present them.
func (s *CartService) Detail(ctx context.Context, session *domain.Session) (*ports.CartDetail, error) {
	items, err := s.carts.Items(ctx, IdentityKey(session))
	if err != nil {
		return nil, err
	}

	detail := &ports.CartDetail{Lines: make([]ports.CartLine, 0, len(items))}
	for _, it := range items {
		line := ports.CartLine{Item: it}
		product, err := s.catalog.Find(ctx, it.ProductID)
		if err != nil {
			line.Missing = true
		} else {
			line.Product = product
			line.Subtotal = product.Price * float64(it.Quantity)
		}
		detail.Total += line.Subtotal
		detail.Lines = append(detail.Lines, line)
	}
	return detail, nil
}
