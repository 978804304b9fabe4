package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/bettolandro/BettoGames/internal/api/middleware"
	"github.com/bettolandro/BettoGames/internal/core/domain"
	"github.com/bettolandro/BettoGames/internal/core/validate"
)

func TestProfileHandler_Get(t *testing.T) {
	h := NewProfileHandler(&stubAuthService{})
	c, rec := newContext(http.MethodGet, "/v1/profile", "")
	c.Set(middleware.SessionContextKey, &domain.Session{ID: "u1", Name: "Gamer", Email: "gamer@vg.cl"})

	if err := h.Get(c); err != nil {
		t.Fatalf("get failed: %v", err)
	}

	var resp struct {
		Authenticated bool            `json:"authenticated"`
		Session       *domain.Session `json:"session"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if !resp.Authenticated || resp.Session == nil || resp.Session.Name != "Gamer" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestProfileHandler_UpdateRename(t *testing.T) {
	svc := &stubAuthService{session: &domain.Session{ID: "u1", Name: "Gamer", Email: "gamer@vg.cl"}}
	h := NewProfileHandler(svc)
	c, rec := newContext(http.MethodPut, "/v1/profile", `{"name":"Jugadora"}`)

	if err := h.Update(c); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.session.Name != "Jugadora" {
		t.Fatalf("rename not applied: %+v", svc.session)
	}
}

func TestProfileHandler_UpdateWeakPassword(t *testing.T) {
	h := NewProfileHandler(&stubAuthService{})
	c, _ := newContext(http.MethodPut, "/v1/profile", `{"name":"Gamer","password":"weak","confirm":"weak"}`)

	err := h.Update(c)
	var fields validate.Errors
	if !errors.As(err, &fields) {
		t.Fatalf("expected field errors, got %v", err)
	}
	if _, ok := fields["password"]; !ok {
		t.Fatalf("expected a password field error, got %v", fields)
	}
}

func TestProfileHandler_UpdateKeepsPasswordWhenBlank(t *testing.T) {
	svc := &stubAuthService{session: &domain.Session{ID: "u1", Name: "Gamer"}}
	h := NewProfileHandler(svc)
	c, _ := newContext(http.MethodPut, "/v1/profile", `{"name":"Gamer","password":"","confirm":""}`)

	if err := h.Update(c); err != nil {
		t.Fatalf("blank password fields must mean no password change: %v", err)
	}
}
