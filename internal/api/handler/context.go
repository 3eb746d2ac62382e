package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bizdata/business-api/internal/api/middleware"
	"github.com/bizdata/business-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Authenticate
// filter. Handlers behind the policy layer can assume it is present;
// the check here is a fast-fail guard in case a route is ever wired
// without the middleware chain.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	email, _ := c.Get(middleware.ContextKeyEmail).(string)
	role, ok := c.Get(middleware.ContextKeyRole).(domain.Role)
	if !ok || email == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return domain.Identity{Email: email, Role: role}, nil
}
