package service

import (
	"context"
	"time"

	"github.com/bizdata/business-api/internal/core/domain"
	"github.com/bizdata/business-api/internal/core/ports"
)

// OrderService implements order CRUD. Totals are derived from the
// submitted item lines, never trusted from the caller.
type OrderService struct {
	repo     ports.OrderRepository
	clients  ports.ClientRepository
	products ports.ProductRepository
}

func NewOrderService(repo ports.OrderRepository, clients ports.ClientRepository, products ports.ProductRepository) *OrderService {
	return &OrderService{repo: repo, clients: clients, products: products}
}

func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.repo.FindAll(ctx)
}

func (s *OrderService) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *OrderService) Create(ctx context.Context, input ports.CreateOrderInput) (*domain.Order, error) {
	if _, err := s.clients.FindByID(ctx, input.ClientID); err != nil {
		return nil, err
	}

	var total float64
	for _, item := range input.Items {
		if _, err := s.products.FindByID(ctx, item.ProductID); err != nil {
			return nil, err
		}
		total += float64(item.Quantity) * item.UnitPrice
	}

	order := domain.Order{
		ClientID:  input.ClientID,
		Status:    domain.OrderPending,
		Total:     total,
		Items:     input.Items,
		CreatedAt: time.Now().UTC(),
	}
	return s.repo.Create(ctx, &order)
}

func (s *OrderService) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	if !domain.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidOrderStatus
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *OrderService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
