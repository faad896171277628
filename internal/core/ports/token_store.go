package ports

import (
	"context"
	"time"
)

// RefreshTokenStore tracks outstanding refresh tokens by their jti so a
// token can be used exactly once (rotation) and all of an account's tokens
// can be revoked at once, e.g. after a password change.
type RefreshTokenStore interface {
	Save(ctx context.Context, accountID int64, jti string, ttl time.Duration) error
	// Validate reports whether the jti is outstanding for the account.
	Validate(ctx context.Context, accountID int64, jti string) (bool, error)
	Revoke(ctx context.Context, accountID int64, jti string) error
	RevokeAll(ctx context.Context, accountID int64) error
}
