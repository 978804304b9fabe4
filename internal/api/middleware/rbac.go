package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bettolandro/BettoGames/internal/core/domain"
)

// RBAC is the requireAdmin-style gate: it enforces that the session
// injected by Session carries one of the allowed roles.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, _ := c.Get(SessionContextKey).(*domain.Session)
			role := ""
			if session != nil {
				role = session.Role
			}
			if _, ok := allowed[role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
