package service

import (
	"context"

	"github.com/bizdata/business-api/internal/core/domain"
	"github.com/bizdata/business-api/internal/core/ports"
)

// ProductService implements product CRUD over the repository.
type ProductService struct {
	repo      ports.ProductRepository
	companies ports.CompanyRepository
}

func NewProductService(repo ports.ProductRepository, companies ports.CompanyRepository) *ProductService {
	return &ProductService{repo: repo, companies: companies}
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.FindAll(ctx)
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) ListByCompany(ctx context.Context, nit string) ([]domain.Product, error) {
	return s.repo.FindByCompanyNIT(ctx, nit)
}

func (s *ProductService) Create(ctx context.Context, product domain.Product) (*domain.Product, error) {
	if _, err := s.companies.FindByNIT(ctx, product.CompanyNIT); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByCode(ctx, product.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrProductExists
	}

	if product.Currency == "" {
		product.Currency = domain.DefaultCurrency
	}
	return s.repo.Create(ctx, &product)
}

func (s *ProductService) Update(ctx context.Context, id string, product domain.Product) (*domain.Product, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if current.Code != product.Code {
		exists, err := s.repo.ExistsByCode(ctx, product.Code)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrProductExists
		}
	}

	current.Code = product.Code
	current.Name = product.Name
	current.Characteristics = product.Characteristics
	current.Price = product.Price
	if product.Currency != "" {
		current.Currency = product.Currency
	}
	current.CompanyNIT = product.CompanyNIT
	current.CategoryIDs = product.CategoryIDs
	return s.repo.Update(ctx, current)
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
