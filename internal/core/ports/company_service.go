package ports

import (
	"context"

	"github.com/bizdata/business-api/internal/core/domain"
)

type CompanyService interface {
	List(ctx context.Context) ([]domain.Company, error)
	Get(ctx context.Context, nit string) (*domain.Company, error)
	Create(ctx context.Context, company domain.Company) (*domain.Company, error)
	Update(ctx context.Context, nit string, company domain.Company) (*domain.Company, error)
	Delete(ctx context.Context, nit string) error
}
