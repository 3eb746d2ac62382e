package ports

import (
	"context"

	"github.com/bizdata/business-api/internal/core/domain"
)

// CompanyRepository persists companies keyed by NIT.
type CompanyRepository interface {
	FindAll(ctx context.Context) ([]domain.Company, error)
	FindByNIT(ctx context.Context, nit string) (*domain.Company, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, company *domain.Company) (*domain.Company, error)
	Update(ctx context.Context, company *domain.Company) (*domain.Company, error)
	Delete(ctx context.Context, nit string) error
}
