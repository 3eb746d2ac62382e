package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bizdata/business-api/internal/auth"
)

// Context keys under which the request identity is stored.
const (
	ContextKeyEmail = "email"
	ContextKeyRole  = "role"
)

const bearerPrefix = "Bearer "

// Authenticate extracts and validates the bearer token, attaching the
// resulting identity to the request context. A missing, malformed or
// expired token does NOT abort the request here: the request continues
// anonymously and the policy layer decides whether that is acceptable.
// This keeps public routes reachable even with a stale Authorization
// header.
func Authenticate(codec *auth.TokenCodec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, bearerPrefix) {
				return next(c)
			}

			identity, err := codec.Validate(header[len(bearerPrefix):])
			if err != nil {
				// Invalid tokens degrade silently to anonymous.
				return next(c)
			}

			c.Set(ContextKeyEmail, identity.Email)
			c.Set(ContextKeyRole, identity.Role)
			return next(c)
		}
	}
}
