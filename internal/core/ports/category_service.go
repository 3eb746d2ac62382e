package ports

import (
	"context"

	"github.com/bizdata/business-api/internal/core/domain"
)

type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Get(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, category domain.Category) (*domain.Category, error)
	Update(ctx context.Context, id string, category domain.Category) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}
