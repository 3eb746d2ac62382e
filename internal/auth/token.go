// Package auth holds the token codec and password primitives used by
// the authentication service and the request filter.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bizdata/business-api/internal/core/domain"
)

// DefaultTokenTTL applies when the configured TTL is zero or negative.
const DefaultTokenTTL = 24 * time.Hour

type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenCodec issues and validates signed bearer tokens. The secret and
// TTL are fixed at construction; rotating the secret invalidates every
// previously issued token.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// WithClock replaces the codec's time source. Intended for tests.
func (c *TokenCodec) WithClock(now func() time.Time) *TokenCodec {
	c.now = now
	return c
}

// TTL returns the configured token lifetime.
func (c *TokenCodec) TTL() time.Duration {
	return c.ttl
}

// Issue signs a token carrying the subject email and role, valid from
// now until now+ttl.
func (c *TokenCodec) Issue(email string, role domain.Role) (string, error) {
	now := c.now().UTC()
	claims := tokenClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Validate parses and verifies a token and returns the identity it
// carries. Every failure mode (malformed input, wrong algorithm, bad
// signature, expiry) collapses into domain.ErrInvalidToken so callers
// get no oracle for which check failed. A token inspected exactly at
// its expiry instant is already expired.
func (c *TokenCodec) Validate(token string) (*domain.Identity, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	).ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}

	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, domain.ErrInvalidToken
	}

	return &domain.Identity{Email: claims.Subject, Role: role}, nil
}
