package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/vehicles-api/internal/core/ports"
)

// Context keys set by Auth.
const (
	ContextEmail = "email"
	ContextRole  = "role"
)

// TokenParser verifies a raw bearer token.
type TokenParser interface {
	Parse(token string) (*ports.Claims, error)
}

// Auth rejects requests without a valid, unexpired bearer token (401) and
// injects the email and role claims into the context.
func Auth(parser TokenParser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := parser.Parse(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(ContextEmail, claims.Email)
			c.Set(ContextRole, claims.Role)

			return next(c)
		}
	}
}
