package ports

import (
	"context"

	"github.com/bizdata/business-api/internal/core/domain"
)

// CreateOrderInput carries the order lines submitted by the caller.
// The total is computed server-side from the lines.
type CreateOrderInput struct {
	ClientID string
	Items    []domain.OrderItem
}

type OrderService interface {
	List(ctx context.Context) ([]domain.Order, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	Create(ctx context.Context, input CreateOrderInput) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
}
