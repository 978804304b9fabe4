package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/bettolandro/BettoGames/internal/api/middleware"
	"github.com/bettolandro/BettoGames/internal/core/domain"
	"github.com/bettolandro/BettoGames/internal/core/ports"
	"github.com/bettolandro/BettoGames/internal/core/validate"
)

type stubCartService struct {
	detail *ports.CartDetail

	addedID      string
	setID        string
	setQty       int
	removedID    string
	cleared      bool
	lastIdentity *domain.Session
}

func (s *stubCartService) Items(_ context.Context, session *domain.Session) ([]domain.CartItem, error) {
	return nil, nil
}

func (s *stubCartService) Add(_ context.Context, session *domain.Session, productID string) error {
	s.lastIdentity = session
	s.addedID = productID
	return nil
}

func (s *stubCartService) SetQuantity(_ context.Context, session *domain.Session, productID string, quantity int) error {
	s.setID = productID
	s.setQty = quantity
	return nil
}

func (s *stubCartService) Remove(_ context.Context, session *domain.Session, productID string) error {
	s.removedID = productID
	return nil
}

func (s *stubCartService) Clear(_ context.Context, session *domain.Session) error {
	s.cleared = true
	return nil
}

func (s *stubCartService) Total(_ context.Context, session *domain.Session) (float64, error) {
	return s.detail.Total, nil
}

func (s *stubCartService) Detail(_ context.Context, session *domain.Session) (*ports.CartDetail, error) {
	return s.detail, nil
}

func emptyDetail() *ports.CartDetail {
	return &ports.CartDetail{Lines: []ports.CartLine{}}
}

func TestCartHandler_GetRendersJoinedView(t *testing.T) {
	svc := &stubCartService{detail: &ports.CartDetail{
		Lines: []ports.CartLine{
			{
				Item:     domain.CartItem{ProductID: "p1", Quantity: 2},
				Product:  &domain.Product{ID: "p1", Title: "Elden Ring", Price: 44990},
				Subtotal: 89980,
			},
			{
				Item:    domain.CartItem{ProductID: "ghost", Quantity: 1},
				Missing: true,
			},
		},
		Total: 89980,
	}}
	h := NewCartHandler(svc)
	c, rec := newContext(http.MethodGet, "/v1/cart", "")

	if err := h.Get(c); err != nil {
		t.Fatalf("get failed: %v", err)
	}

	var resp struct {
		Items []struct {
			ProductID       string `json:"product_id"`
			SubtotalDisplay string `json:"subtotal_display"`
			Missing         bool   `json:"missing"`
		} `json:"items"`
		TotalDisplay string `json:"total_display"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if len(resp.Items) != 2 {
		t.Fatalf("expected 2 lines, got %+v", resp.Items)
	}
	if resp.Items[0].SubtotalDisplay != "$89.980" || resp.TotalDisplay != "$89.980" {
		t.Fatalf("unexpected display values: %+v", resp)
	}
	if !resp.Items[1].Missing {
		t.Fatalf("stale line must be flagged missing: %+v", resp.Items[1])
	}
}

func TestCartHandler_AddItem(t *testing.T) {
	svc := &stubCartService{detail: emptyDetail()}
	h := NewCartHandler(svc)
	c, rec := newContext(http.MethodPost, "/v1/cart/items", `{"product_id":"p1"}`)
	c.Set(middleware.SessionContextKey, &domain.Session{ID: "u1", Email: "gamer@vg.cl"})

	if err := h.AddItem(c); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.addedID != "p1" {
		t.Fatalf("product id not forwarded, got %q", svc.addedID)
	}
	if svc.lastIdentity == nil || svc.lastIdentity.Email != "gamer@vg.cl" {
		t.Fatalf("session not forwarded: %+v", svc.lastIdentity)
	}
}

func TestCartHandler_AddItemMissingProductID(t *testing.T) {
	h := NewCartHandler(&stubCartService{detail: emptyDetail()})
	c, _ := newContext(http.MethodPost, "/v1/cart/items", `{}`)

	err := h.AddItem(c)
	var fields validate.Errors
	if !errors.As(err, &fields) {
		t.Fatalf("expected field errors, got %v", err)
	}
	if _, ok := fields["productid"]; !ok {
		t.Fatalf("expected a productid field error, got %v", fields)
	}
}

func TestCartHandler_SetQuantityClampsToOne(t *testing.T) {
	svc := &stubCartService{detail: emptyDetail()}
	h := NewCartHandler(svc)
	c, _ := newContext(http.MethodPut, "/v1/cart/items/p1", `{"quantity":0}`)
	c.SetParamNames("productID")
	c.SetParamValues("p1")

	if err := h.SetQuantity(c); err != nil {
		t.Fatalf("set quantity failed: %v", err)
	}
	if svc.setID != "p1" || svc.setQty != 1 {
		t.Fatalf("expected clamped quantity 1 for p1, got %q/%d", svc.setID, svc.setQty)
	}
}

func TestCartHandler_RemoveItem(t *testing.T) {
	svc := &stubCartService{detail: emptyDetail()}
	h := NewCartHandler(svc)
	c, _ := newContext(http.MethodDelete, "/v1/cart/items/p1", "")
	c.SetParamNames("productID")
	c.SetParamValues("p1")

	if err := h.RemoveItem(c); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if svc.removedID != "p1" {
		t.Fatalf("product id not forwarded, got %q", svc.removedID)
	}
}

func TestCartHandler_Clear(t *testing.T) {
	svc := &stubCartService{detail: emptyDetail()}
	h := NewCartHandler(svc)
	c, rec := newContext(http.MethodDelete, "/v1/cart", "")

	if err := h.Clear(c); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if !svc.cleared {
		t.Fatalf("clear must reach the service")
	}

	var resp struct {
		Items []any `json:"items"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if len(resp.Items) != 0 {
		t.Fatalf("expected empty cart view, got %+v", resp.Items)
	}
}
