package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bizdata/business-api/internal/api/metrics"
	"github.com/bizdata/business-api/internal/core/domain"
)

// Rule maps a (methods, path prefix) pair to the roles allowed through.
// An empty Methods slice matches every method; an empty Roles slice
// means any authenticated identity is enough.
type Rule struct {
	Methods    []string
	PathPrefix string
	Roles      []domain.Role
}

func (r Rule) matches(method, path string) bool {
	if !strings.HasPrefix(path, r.PathPrefix) {
		return false
	}
	if len(r.Methods) == 0 {
		return true
	}
	for _, m := range r.Methods {
		if m == method {
			return true
		}
	}
	return false
}

func (r Rule) allows(role domain.Role) bool {
	if len(r.Roles) == 0 {
		return true
	}
	for _, allowed := range r.Roles {
		if allowed == role {
			return true
		}
	}
	return false
}

// DefaultPublicPrefixes are reachable with no identity at all:
// authentication endpoints, API docs, health probes and metrics.
var DefaultPublicPrefixes = []string{
	"/api/auth/",
	"/swagger/",
	"/health",
	"/metrics",
}

// DefaultRules is the route-to-role table, evaluated top to bottom
// with first match winning. Requests matching no rule require some
// authenticated identity, role irrelevant.
var DefaultRules = []Rule{
	{Methods: []string{http.MethodGet}, PathPrefix: "/api/companies", Roles: []domain.Role{domain.RoleAdmin, domain.RoleExternal}},
	{Methods: []string{http.MethodPost, http.MethodPut, http.MethodDelete}, PathPrefix: "/api/companies", Roles: []domain.Role{domain.RoleAdmin}},
	{PathPrefix: "/api/products", Roles: []domain.Role{domain.RoleAdmin}},
	{PathPrefix: "/api/inventory", Roles: []domain.Role{domain.RoleAdmin}},
}

// Authorize enforces the policy table after the Authenticate filter
// has run. Anonymous callers on protected routes get 401; identified
// callers whose role is not in the matched set get 403. The decision
// is made before the request reaches any business handler.
func Authorize(publicPrefixes []string, rules []Rule) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			method := c.Request().Method
			path := c.Request().URL.Path

			for _, prefix := range publicPrefixes {
				if strings.HasPrefix(path, prefix) {
					return next(c)
				}
			}

			role, authenticated := c.Get(ContextKeyRole).(domain.Role)
			if !authenticated {
				metrics.PolicyDenialsTotal.WithLabelValues("unauthenticated").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			for _, rule := range rules {
				if !rule.matches(method, path) {
					continue
				}
				if !rule.allows(role) {
					metrics.PolicyDenialsTotal.WithLabelValues("forbidden").Inc()
					return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
				}
				return next(c)
			}

			// No rule matched: any authenticated identity is enough.
			return next(c)
		}
	}
}
