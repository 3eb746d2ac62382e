package ports

import (
	"context"

	"github.com/bizdata/business-api/internal/core/domain"
)

type ProductService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	ListByCompany(ctx context.Context, nit string) ([]domain.Product, error)
	Create(ctx context.Context, product domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id string, product domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
