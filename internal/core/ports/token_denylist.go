package ports

import (
	"context"
	"time"
)

// DeniedToken is a revoked token identifier kept until the token itself
// would have expired, after which the eviction job may drop it.
type DeniedToken struct {
	JTI       string
	ExpiresAt time.Time
}

// TokenDenylist stores identifiers of tokens revoked before expiry.
// Logout writes here; every authenticated request checks here.
type TokenDenylist interface {
	// Add records a revoked token identifier.
	Add(ctx context.Context, token DeniedToken) error

	// Contains reports whether the given token identifier has been revoked.
	Contains(ctx context.Context, jti string) (bool, error)

	// DeleteExpired removes entries whose ExpiresAt is before now and
	// returns how many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
