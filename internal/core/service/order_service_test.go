package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/bizdata/business-api/internal/core/domain"
	"github.com/bizdata/business-api/internal/core/ports"
)

type stubClientRepo struct {
	clients map[string]*domain.Client
}

func newStubClientRepo(clients ...domain.Client) *stubClientRepo {
	r := &stubClientRepo{clients: make(map[string]*domain.Client)}
	for i := range clients {
		c := clients[i]
		r.clients[c.ID] = &c
	}
	return r
}

func (r *stubClientRepo) FindAll(_ context.Context) ([]domain.Client, error) {
	out := make([]domain.Client, 0, len(r.clients))
	for _, c := range r.clients {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubClientRepo) FindByID(_ context.Context, id string) (*domain.Client, error) {
	if c, ok := r.clients[id]; ok {
		clone := *c
		return &clone, nil
	}
	return nil, domain.ErrClientNotFound
}

func (r *stubClientRepo) Create(_ context.Context, client *domain.Client) (*domain.Client, error) {
	clone := *client
	clone.ID = strconv.Itoa(len(r.clients) + 1)
	r.clients[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubClientRepo) Update(_ context.Context, client *domain.Client) (*domain.Client, error) {
	if _, ok := r.clients[client.ID]; !ok {
		return nil, domain.ErrClientNotFound
	}
	clone := *client
	r.clients[client.ID] = &clone
	return client, nil
}

func (r *stubClientRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.clients[id]; !ok {
		return domain.ErrClientNotFound
	}
	delete(r.clients, id)
	return nil
}

type stubOrderRepo struct {
	orders map[string]*domain.Order
	nextID int
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: make(map[string]*domain.Order)}
}

func (r *stubOrderRepo) FindAll(_ context.Context) ([]domain.Order, error) {
	out := make([]domain.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id string) (*domain.Order, error) {
	if o, ok := r.orders[id]; ok {
		clone := *o
		return &clone, nil
	}
	return nil, domain.ErrOrderNotFound
}

func (r *stubOrderRepo) Create(_ context.Context, order *domain.Order) (*domain.Order, error) {
	r.nextID++
	clone := *order
	clone.ID = strconv.Itoa(r.nextID)
	r.orders[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubOrderRepo) UpdateStatus(_ context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	o.Status = status
	clone := *o
	return &clone, nil
}

func (r *stubOrderRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.orders[id]; !ok {
		return domain.ErrOrderNotFound
	}
	delete(r.orders, id)
	return nil
}

func TestOrderService_Create_ComputesTotal(t *testing.T) {
	clients := newStubClientRepo(domain.Client{ID: "c1", Name: "Alice"})
	products := newStubProductRepo(
		domain.Product{ID: "p1", Code: "SKU-1", Price: 10},
		domain.Product{ID: "p2", Code: "SKU-2", Price: 5},
	)
	svc := NewOrderService(newStubOrderRepo(), clients, products)

	order, err := svc.Create(context.Background(), ports.CreateOrderInput{
		ClientID: "c1",
		Items: []domain.OrderItem{
			{ProductID: "p1", Quantity: 2, UnitPrice: 10},
			{ProductID: "p2", Quantity: 3, UnitPrice: 5},
		},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if order.Total != 35 {
		t.Fatalf("expected total 35, got %v", order.Total)
	}
	if order.Status != domain.OrderPending {
		t.Fatalf("new orders must start PENDING, got %s", order.Status)
	}
	if order.CreatedAt.IsZero() {
		t.Fatalf("expected CreatedAt to be set")
	}
}

func TestOrderService_Create_UnknownClient(t *testing.T) {
	svc := NewOrderService(newStubOrderRepo(), newStubClientRepo(), newStubProductRepo())

	_, err := svc.Create(context.Background(), ports.CreateOrderInput{ClientID: "missing"})
	if !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestOrderService_Create_UnknownProduct(t *testing.T) {
	clients := newStubClientRepo(domain.Client{ID: "c1", Name: "Alice"})
	svc := NewOrderService(newStubOrderRepo(), clients, newStubProductRepo())

	_, err := svc.Create(context.Background(), ports.CreateOrderInput{
		ClientID: "c1",
		Items:    []domain.OrderItem{{ProductID: "missing", Quantity: 1, UnitPrice: 1}},
	})
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	clients := newStubClientRepo(domain.Client{ID: "c1", Name: "Alice"})
	products := newStubProductRepo(domain.Product{ID: "p1", Code: "SKU-1", Price: 10})
	svc := NewOrderService(newStubOrderRepo(), clients, products)

	order, err := svc.Create(context.Background(), ports.CreateOrderInput{
		ClientID: "c1",
		Items:    []domain.OrderItem{{ProductID: "p1", Quantity: 1, UnitPrice: 10}},
	})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	updated, err := svc.UpdateStatus(context.Background(), order.ID, domain.OrderConfirmed)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if updated.Status != domain.OrderConfirmed {
		t.Fatalf("expected CONFIRMED, got %s", updated.Status)
	}
}

func TestOrderService_UpdateStatus_Invalid(t *testing.T) {
	svc := NewOrderService(newStubOrderRepo(), newStubClientRepo(), newStubProductRepo())

	if _, err := svc.UpdateStatus(context.Background(), "1", "SHIPPED"); !errors.Is(err, domain.ErrInvalidOrderStatus) {
		t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
	}
}

func TestOrderService_UpdateStatus_NotFound(t *testing.T) {
	svc := NewOrderService(newStubOrderRepo(), newStubClientRepo(), newStubProductRepo())

	if _, err := svc.UpdateStatus(context.Background(), "missing", domain.OrderConfirmed); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}
