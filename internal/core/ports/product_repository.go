package ports

import (
	"context"

	"github.com/bizdata/business-api/internal/core/domain"
)

// ProductRepository persists products. Code uniqueness is enforced by
// the store; a violation surfaces as domain.ErrProductExists.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	FindByCompanyNIT(ctx context.Context, nit string) ([]domain.Product, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
