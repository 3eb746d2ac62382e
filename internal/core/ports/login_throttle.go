package ports

import "context"

// LoginThrottle tracks failed login attempts per email so the API can
// back off brute-force attempts. Implementations fail open: a storage
// error must never lock out legitimate users.
type LoginThrottle interface {
	// Allow reports whether another attempt for this email is permitted.
	Allow(ctx context.Context, email string) (bool, error)
	// RecordFailure notes one failed attempt.
	RecordFailure(ctx context.Context, email string) error
	// Reset clears the failure count after a successful login.
	Reset(ctx context.Context, email string) error
}
