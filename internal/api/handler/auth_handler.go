package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bizdata/business-api/internal/api/metrics"
	"github.com/bizdata/business-api/internal/core/domain"
	"github.com/bizdata/business-api/internal/core/ports"
	"github.com/bizdata/business-api/pkg/logger"
)

type AuthHandler struct {
	authService ports.AuthService
	throttle    ports.LoginThrottle // optional, nil disables throttling
	tokenTTL    time.Duration
}

func NewAuthHandler(authService ports.AuthService, throttle ports.LoginThrottle, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{authService: authService, throttle: throttle, tokenTTL: tokenTTL}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresIn int64  `json:"expires_in_ms"`
	Role      string `json:"role"`
	Email     string `json:"email"`
}

type registerRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role,omitempty"`
}

// Login authenticates a user and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	ctx := c.Request().Context()

	if h.throttle != nil {
		allowed, err := h.throttle.Allow(ctx, req.Email)
		if err != nil {
			log := logger.Get()
			log.Warn().Err(err).Msg("login throttle unavailable")
		} else if !allowed {
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
			return c.JSON(http.StatusTooManyRequests, map[string]string{"error": domain.ErrTooManyAttempts.Error()})
		}
	}

	token, user, err := h.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		status := http.StatusUnauthorized
		result := "invalid_credentials"
		if errors.Is(err, domain.ErrUserNotFound) {
			status = http.StatusNotFound
			result = "not_found"
		}
		metrics.LoginsTotal.WithLabelValues(result).Inc()
		if h.throttle != nil {
			if terr := h.throttle.RecordFailure(ctx, req.Email); terr != nil {
				log := logger.Get()
				log.Warn().Err(terr).Msg("record login failure")
			}
		}
		return c.JSON(status, map[string]string{"error": "invalid credentials"})
	}

	if h.throttle != nil {
		if terr := h.throttle.Reset(ctx, req.Email); terr != nil {
			log := logger.Get()
			log.Warn().Err(terr).Msg("reset login throttle")
		}
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, loginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: h.tokenTTL.Milliseconds(),
		Role:      string(user.Role),
		Email:     user.Email,
	})
}

// Register creates a new user account. The password is assigned
// server-side; the payload only carries email and optional role.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	role := domain.RoleExternal
	if req.Role != "" {
		parsed, err := domain.ParseRole(req.Role)
		if err != nil {
			metrics.RegistrationsTotal.WithLabelValues("error").Inc()
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		role = parsed
	}

	user, err := h.authService.Register(c.Request().Context(), req.Email, role)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
			return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
		}
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "registration failed"})
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, user)
}
