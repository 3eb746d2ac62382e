package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bizdata/business-api/internal/core/domain"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestTokenCodec_RoundTrip(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour)

	token, err := codec.Issue("alice@example.com", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	id, err := codec.Validate(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if id.Email != "alice@example.com" {
		t.Fatalf("unexpected email: %s", id.Email)
	}
	if id.Role != domain.RoleAdmin {
		t.Fatalf("unexpected role: %s", id.Role)
	}
}

func TestTokenCodec_ValidateIsRepeatable(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour)
	token, err := codec.Issue("bob@example.com", domain.RoleExternal)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	first, err := codec.Validate(token)
	if err != nil {
		t.Fatalf("first validate: %v", err)
	}
	second, err := codec.Validate(token)
	if err != nil {
		t.Fatalf("second validate: %v", err)
	}
	if *first != *second {
		t.Fatalf("identities differ: %+v vs %+v", first, second)
	}
}

func TestTokenCodec_ExpiryBoundary(t *testing.T) {
	issuedAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	codec := NewTokenCodec("secret", time.Hour).WithClock(fixedClock(issuedAt))

	token, err := codec.Issue("carol@example.com", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	codec.WithClock(fixedClock(issuedAt.Add(time.Hour - time.Second)))
	if _, err := codec.Validate(token); err != nil {
		t.Fatalf("token just before expiry should be valid: %v", err)
	}

	// exactly at the expiry instant the token is already expired
	codec.WithClock(fixedClock(issuedAt.Add(time.Hour)))
	if _, err := codec.Validate(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken at expiry instant, got %v", err)
	}

	codec.WithClock(fixedClock(issuedAt.Add(2 * time.Hour)))
	if _, err := codec.Validate(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken after expiry, got %v", err)
	}
}

func TestTokenCodec_TamperedSignature(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour)
	token, err := codec.Issue("dave@example.com", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	tampered := []byte(token)
	last := len(tampered) - 1
	if tampered[last] == 'A' {
		tampered[last] = 'B'
	} else {
		tampered[last] = 'A'
	}

	if _, err := codec.Validate(string(tampered)); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for tampered token, got %v", err)
	}
}

func TestTokenCodec_WrongSecret(t *testing.T) {
	token, err := NewTokenCodec("secret-a", time.Hour).Issue("eve@example.com", domain.RoleExternal)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := NewTokenCodec("secret-b", time.Hour).Validate(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestTokenCodec_RejectsUnsignedToken(t *testing.T) {
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub":  "mallory@example.com",
		"role": "ADMIN",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := NewTokenCodec("secret", time.Hour).Validate(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for alg=none token, got %v", err)
	}
}

func TestTokenCodec_RejectsMissingExpiry(t *testing.T) {
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "frank@example.com",
		"role": "ADMIN",
	})
	token, err := raw.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := NewTokenCodec("secret", time.Hour).Validate(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken without exp claim, got %v", err)
	}
}

func TestTokenCodec_RejectsBadClaims(t *testing.T) {
	cases := []struct {
		name   string
		claims jwt.MapClaims
	}{
		{"unknown role", jwt.MapClaims{"sub": "x@example.com", "role": "SUPERUSER", "exp": time.Now().Add(time.Hour).Unix()}},
		{"empty subject", jwt.MapClaims{"sub": "", "role": "ADMIN", "exp": time.Now().Add(time.Hour).Unix()}},
	}

	codec := NewTokenCodec("secret", time.Hour)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw := jwt.NewWithClaims(jwt.SigningMethodHS256, tc.claims)
			token, err := raw.SignedString([]byte("secret"))
			if err != nil {
				t.Fatalf("sign: %v", err)
			}
			if _, err := codec.Validate(token); !errors.Is(err, domain.ErrInvalidToken) {
				t.Fatalf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestTokenCodec_Malformed(t *testing.T) {
	codec := NewTokenCodec("secret", time.Hour)
	for _, token := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		if _, err := codec.Validate(token); !errors.Is(err, domain.ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", token, err)
		}
	}
}

func TestTokenCodec_DefaultTTL(t *testing.T) {
	if got := NewTokenCodec("secret", 0).TTL(); got != DefaultTokenTTL {
		t.Fatalf("expected default ttl, got %v", got)
	}
	if got := NewTokenCodec("secret", -time.Minute).TTL(); got != DefaultTokenTTL {
		t.Fatalf("expected default ttl for negative input, got %v", got)
	}
}
