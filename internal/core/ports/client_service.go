package ports

import (
	"context"

	"github.com/bizdata/business-api/internal/core/domain"
)

type ClientService interface {
	List(ctx context.Context) ([]domain.Client, error)
	Get(ctx context.Context, id string) (*domain.Client, error)
	Create(ctx context.Context, client domain.Client) (*domain.Client, error)
	Update(ctx context.Context, id string, client domain.Client) (*domain.Client, error)
	Delete(ctx context.Context, id string) error
}
