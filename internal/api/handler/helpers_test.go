package handler

import (
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"
)

// newContext builds an Echo context the way the router would hand one
// to a handler, validator included.
func newContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}
