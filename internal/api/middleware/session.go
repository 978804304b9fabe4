package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/bettolandro/BettoGames/internal/core/domain"
	"github.com/bettolandro/BettoGames/internal/core/ports"
)

// SessionContextKey is the echo context key the session record is
// stored under by Session and OptionalSession.
const SessionContextKey = "session"

// Session is the requireAuthenticated gate: it validates the bearer
// token and cross-checks it against the stored session record, then
// injects the record into context. Clearing the record (logout)
// invalidates outstanding tokens. This is a presentation-layer gate,
// not a security boundary — the store itself is not access-controlled.
func Session(jwtSecret string, sessions ports.SessionRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, err := resolveSession(c, jwtSecret, sessions)
			if err != nil {
				return err
			}
			if session == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "no active session")
			}
			c.Set(SessionContextKey, session)
			return next(c)
		}
	}
}

// OptionalSession injects the session record when a valid token is
// presented and lets the request through as a guest otherwise. Cart
// routes use it so unauthenticated visitors get the guest cart.
func OptionalSession(jwtSecret string, sessions ports.SessionRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, _ := resolveSession(c, jwtSecret, sessions)
			if session != nil {
				c.Set(SessionContextKey, session)
			}
			return next(c)
		}
	}
}

func resolveSession(c echo.Context, jwtSecret string, sessions ports.SessionRepository) (*domain.Session, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, nil
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	current, err := sessions.Current(c.Request().Context())
	if err != nil {
		return nil, err
	}
	sub, _ := claims["sub"].(string)
	if current == nil || current.ID != sub {
		// Token outlived the session record (logout, or another login).
		return nil, nil
	}
	return current, nil
}
