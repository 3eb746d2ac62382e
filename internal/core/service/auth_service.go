package service

import (
	"context"

	"github.com/bizdata/business-api/internal/auth"
	"github.com/bizdata/business-api/internal/core/domain"
	"github.com/bizdata/business-api/internal/core/ports"
)

// placeholderPassword is assigned to every account at registration.
// Registration never accepts a caller-supplied password; the hash is
// still computed per-user so stored hashes differ.
const placeholderPassword = "defaultPassword"

// AuthService implements authentication, login and registration on top
// of the credential store and the token codec.
type AuthService struct {
	repo  ports.AuthRepository
	codec *auth.TokenCodec
}

func NewAuthService(repo ports.AuthRepository, codec *auth.TokenCodec) *AuthService {
	return &AuthService{repo: repo, codec: codec}
}

// Authenticate verifies the credentials against the store. When the
// email is unknown no hash comparison is attempted.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// Login authenticates and issues a bearer token for the identity.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return "", nil, err
	}

	token, err := s.codec.Issue(user.Email, user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Register creates a new identity with the placeholder password. The
// duplicate check here is advisory; the store's unique index is the
// authoritative guard against concurrent registrations.
func (s *AuthService) Register(ctx context.Context, email string, role domain.Role) (*domain.User, error) {
	if email == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if role == "" {
		role = domain.RoleExternal
	}
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrUserExists
	}

	hash, err := auth.HashPassword(placeholderPassword)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
