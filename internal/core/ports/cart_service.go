package ports

import (
	"context"

	"github.com/bettolandro/BettoGames/internal/core/domain"
)

// CartLine is a cart item joined against the catalog for rendering.
// A line whose product has been deleted keeps Missing=true and
// contributes zero to every total.
type CartLine struct {
	Item     domain.CartItem
	Product  *domain.Product
	Subtotal float64
	Missing  bool
}

// CartDetail is the fully joined view of a cart.
type CartDetail struct {
	Lines []CartLine
	Total float64
}

// CartService is per-identity CRUD over cart collections. The session
// (nil for guests) selects which cart is visible; carts are never
// merged when the session changes.
type CartService interface {
	Items(ctx context.Context, session *domain.Session) ([]domain.CartItem, error)
	// Add increments the quantity for productID, inserting at quantity 1.
	Add(ctx context.Context, session *domain.Session, productID string) error
	// SetQuantity replaces the quantity for productID. Quantities below 1
	// are clamped by callers; the service rejects them.
	SetQuantity(ctx context.Context, session *domain.Session, productID string, quantity int) error
	Remove(ctx context.Context, session *domain.Session, productID string) error
	Clear(ctx context.Context, session *domain.Session) error
	// Total sums quantity × current price, counting stale items as 0.
	Total(ctx context.Context, session *domain.Session) (float64, error)
	Detail(ctx context.Context, session *domain.Session) (*CartDetail, error)
}
