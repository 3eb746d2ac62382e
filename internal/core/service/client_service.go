package service

import (
	"context"

	"github.com/bizdata/business-api/internal/core/domain"
	"github.com/bizdata/business-api/internal/core/ports"
)

// ClientService implements client CRUD over the repository.
type ClientService struct {
	repo ports.ClientRepository
}

func NewClientService(repo ports.ClientRepository) *ClientService {
	return &ClientService{repo: repo}
}

func (s *ClientService) List(ctx context.Context) ([]domain.Client, error) {
	return s.repo.FindAll(ctx)
}

func (s *ClientService) Get(ctx context.Context, id string) (*domain.Client, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ClientService) Create(ctx context.Context, client domain.Client) (*domain.Client, error) {
	return s.repo.Create(ctx, &client)
}

func (s *ClientService) Update(ctx context.Context, id string, client domain.Client) (*domain.Client, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	current.Name = client.Name
	current.Email = client.Email
	current.Phone = client.Phone
	current.Address = client.Address
	return s.repo.Update(ctx, current)
}

func (s *ClientService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
