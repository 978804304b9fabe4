package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/bettolandro/BettoGames/internal/api/middleware"
	"github.com/bettolandro/BettoGames/internal/core/domain"
)

// ctxSession extracts the session record injected by the Session or
// OptionalSession middleware. Nil means a guest request.
func ctxSession(c echo.Context) *domain.Session {
	session, _ := c.Get(middleware.SessionContextKey).(*domain.Session)
	return session
}
