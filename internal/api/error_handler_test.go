package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bettolandro/BettoGames/internal/core/domain"
	"github.com/bettolandro/BettoGames/internal/core/validate"
)

func render(t *testing.T, err error) (int, errorResponse) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	return rec.Code, body
}

func TestErrorHandler_ValidationErrors(t *testing.T) {
	code, body := render(t, validate.Errors{"price": "must be zero or greater"})

	if code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}
	if body.Error != "validation failed" || body.Fields["price"] != "must be zero or greater" {
		t.Fatalf("unexpected envelope: %+v", body)
	}
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err  error
		code int
		msg  string
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{domain.ErrNoSession, http.StatusUnauthorized, "no active session"},
		{domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
		{domain.ErrEmailTaken, http.StatusConflict, "email already registered"},
		{domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{domain.ErrProductNotFound, http.StatusNotFound, "product not found"},
	}
	for _, tc := range cases {
		code, body := render(t, tc.err)
		if code != tc.code || body.Error != tc.msg {
			t.Errorf("%v: got %d %q, want %d %q", tc.err, code, body.Error, tc.code, tc.msg)
		}
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	code, body := render(t, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))

	if code != http.StatusBadRequest || body.Error != "invalid payload" {
		t.Fatalf("unexpected: %d %+v", code, body)
	}
}

func TestErrorHandler_UnexpectedError(t *testing.T) {
	code, body := render(t, errors.New("boom"))

	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if body.Error != "internal server error" {
		t.Fatalf("internal details must not leak: %+v", body)
	}
}
