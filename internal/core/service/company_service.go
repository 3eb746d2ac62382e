package service

import (
	"context"

	"github.com/bizdata/business-api/internal/core/domain"
	"github.com/bizdata/business-api/internal/core/ports"
)

// CompanyService implements company CRUD over the repository.
type CompanyService struct {
	repo ports.CompanyRepository
}

func NewCompanyService(repo ports.CompanyRepository) *CompanyService {
	return &CompanyService{repo: repo}
}

func (s *CompanyService) List(ctx context.Context) ([]domain.Company, error) {
	return s.repo.FindAll(ctx)
}

func (s *CompanyService) Get(ctx context.Context, nit string) (*domain.Company, error) {
	return s.repo.FindByNIT(ctx, nit)
}

func (s *CompanyService) Create(ctx context.Context, company domain.Company) (*domain.Company, error) {
	exists, err := s.repo.ExistsByName(ctx, company.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrCompanyExists
	}
	return s.repo.Create(ctx, &company)
}

// Update keeps the NIT immutable and re-checks the name uniqueness
// only when the name actually changes.
func (s *CompanyService) Update(ctx context.Context, nit string, company domain.Company) (*domain.Company, error) {
	current, err := s.repo.FindByNIT(ctx, nit)
	if err != nil {
		return nil, err
	}

	if current.Name != company.Name {
		exists, err := s.repo.ExistsByName(ctx, company.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrCompanyExists
		}
	}

	current.Name = company.Name
	current.Address = company.Address
	current.Phone = company.Phone
	return s.repo.Update(ctx, current)
}

func (s *CompanyService) Delete(ctx context.Context, nit string) error {
	return s.repo.Delete(ctx, nit)
}
