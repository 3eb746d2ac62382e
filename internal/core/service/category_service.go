package service

import (
	"context"

	"github.com/bizdata/business-api/internal/core/domain"
	"github.com/bizdata/business-api/internal/core/ports"
)

// CategoryService implements category CRUD over the repository.
type CategoryService struct {
	repo ports.CategoryRepository
}

func NewCategoryService(repo ports.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.repo.FindAll(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id string) (*domain.Category, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CategoryService) Create(ctx context.Context, category domain.Category) (*domain.Category, error) {
	exists, err := s.repo.ExistsByName(ctx, category.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrCategoryExists
	}
	return s.repo.Create(ctx, &category)
}

func (s *CategoryService) Update(ctx context.Context, id string, category domain.Category) (*domain.Category, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if current.Name != category.Name {
		exists, err := s.repo.ExistsByName(ctx, category.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrCategoryExists
		}
	}

	current.Name = category.Name
	current.Description = category.Description
	return s.repo.Update(ctx, current)
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
