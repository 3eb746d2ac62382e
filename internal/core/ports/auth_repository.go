package ports

import (
	"context"

	"github.com/bizdata/business-api/internal/core/domain"
)

// AuthRepository is the credential store contract. Uniqueness of email
// is the store's responsibility (unique index); Create surfaces a
// violation as domain.ErrUserExists.
type AuthRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
