package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bizdata/business-api/internal/core/domain"
	"github.com/bizdata/business-api/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init(logger.Options{Level: "error", Output: io.Discard})
	os.Exit(m.Run())
}

type stubAuthService struct {
	loginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
	registerFn func(ctx context.Context, email string, role domain.Role) (*domain.User, error)
}

func (s *stubAuthService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	_, user, err := s.loginFn(ctx, email, password)
	return user, err
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Register(ctx context.Context, email string, role domain.Role) (*domain.User, error) {
	return s.registerFn(ctx, email, role)
}

type stubThrottle struct {
	allowed  bool
	failures []string
	resets   []string
}

func (t *stubThrottle) Allow(_ context.Context, _ string) (bool, error) {
	return t.allowed, nil
}

func (t *stubThrottle) RecordFailure(_ context.Context, email string) error {
	t.failures = append(t.failures, email)
	return nil
}

func (t *stubThrottle) Reset(_ context.Context, email string) error {
	t.resets = append(t.resets, email)
	return nil
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			if email != "alice@example.com" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "token123", &domain.User{Email: email, Role: domain.RoleAdmin}, nil
		},
	}
	throttle := &stubThrottle{allowed: true}
	handler := NewAuthHandler(stub, throttle, 24*time.Hour)

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/login", `{"email":"alice@example.com","password":"secret"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
	if resp["token_type"] != "Bearer" {
		t.Fatalf("expected Bearer type, got %v", resp["token_type"])
	}
	if resp["expires_in_ms"] != float64(86400000) {
		t.Fatalf("expected 86400000 ms, got %v", resp["expires_in_ms"])
	}
	if resp["role"] != "ADMIN" || resp["email"] != "alice@example.com" {
		t.Fatalf("unexpected identity fields: %+v", resp)
	}

	if len(throttle.resets) != 1 || throttle.resets[0] != "alice@example.com" {
		t.Fatalf("successful login should reset the throttle: %+v", throttle.resets)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	throttle := &stubThrottle{allowed: true}
	handler := NewAuthHandler(stub, throttle, time.Hour)

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/login", `{"email":"alice@example.com","password":"bad"}`)
	_ = handler.Login(c)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if len(throttle.failures) != 1 {
		t.Fatalf("failed login should be recorded: %+v", throttle.failures)
	}
}

func TestAuthHandler_Login_UserNotFound(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrUserNotFound
		},
	}
	handler := NewAuthHandler(stub, nil, time.Hour)

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/login", `{"email":"ghost@example.com","password":"pwd"}`)
	_ = handler.Login(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_Throttled(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			t.Fatalf("service should not be reached when throttled")
			return "", nil, nil
		},
	}
	handler := NewAuthHandler(stub, &stubThrottle{allowed: false}, time.Hour)

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/login", `{"email":"alice@example.com","password":"secret"}`)
	_ = handler.Login(c)

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			t.Fatalf("should not be called")
			return "", nil, nil
		},
	}
	handler := NewAuthHandler(stub, nil, time.Hour)

	for _, body := range []string{"{", `{"email":"not-an-email","password":"x"}`, `{"email":"a@example.com"}`} {
		c, rec := newTestContext(t, http.MethodPost, "/api/auth/login", body)
		_ = handler.Login(c)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400 for %q, got %d", body, rec.Code)
		}
	}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, email string, role domain.Role) (*domain.User, error) {
			if email != "bob@example.com" || role != domain.RoleAdmin {
				t.Fatalf("unexpected args: %s %s", email, role)
			}
			return &domain.User{ID: "1", Email: email, Role: role}, nil
		},
	}
	handler := NewAuthHandler(stub, nil, time.Hour)

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/register", `{"email":"bob@example.com","role":"admin"}`)
	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["email"] != "bob@example.com" || resp["role"] != "ADMIN" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if _, leaked := resp["password_hash"]; leaked {
		t.Fatalf("password hash must not be serialized")
	}
}

func TestAuthHandler_Register_DefaultRole(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, email string, role domain.Role) (*domain.User, error) {
			if role != domain.RoleExternal {
				t.Fatalf("expected EXTERNAL default, got %s", role)
			}
			return &domain.User{ID: "1", Email: email, Role: role}, nil
		},
	}
	handler := NewAuthHandler(stub, nil, time.Hour)

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/register", `{"email":"carol@example.com"}`)
	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_UnknownRole(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, email string, role domain.Role) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub, nil, time.Hour)

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/register", `{"email":"x@example.com","role":"SUPERUSER"}`)
	_ = handler.Register(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, email string, role domain.Role) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	handler := NewAuthHandler(stub, nil, time.Hour)

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/register", `{"email":"dup@example.com"}`)
	_ = handler.Register(c)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}
