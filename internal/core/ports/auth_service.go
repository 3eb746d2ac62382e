package ports

import (
	"context"

	"github.com/bizdata/business-api/internal/core/domain"
)

type AuthService interface {
	// Authenticate verifies credentials and returns the stored identity
	// without issuing a token.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	// Login authenticates and returns a signed bearer token alongside
	// the identity it was issued for.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Register creates a new identity with the given role. The password
	// is NOT taken from the caller; a fixed placeholder is assigned.
	Register(ctx context.Context, email string, role domain.Role) (*domain.User, error)
}
