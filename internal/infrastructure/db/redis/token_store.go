package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RefreshTokenStore tracks outstanding refresh tokens in Redis.
// Key format: refresh:<account_id>:<jti>, expiring with the token itself.
type RefreshTokenStore struct {
	client *redis.Client
}

func NewRefreshTokenStore(client *redis.Client) *RefreshTokenStore {
	return &RefreshTokenStore{client: client}
}

// Save records the jti as outstanding for the account until ttl elapses.
func (s *RefreshTokenStore) Save(ctx context.Context, accountID int64, jti string, ttl time.Duration) error {
	return s.client.Set(ctx, s.key(accountID, jti), "1", ttl).Err()
}

// Validate reports whether the jti is still outstanding.
func (s *RefreshTokenStore) Validate(ctx context.Context, accountID int64, jti string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(accountID, jti)).Result()
	if err != nil {
		return false, fmt.Errorf("refresh token check: %w", err)
	}
	return n > 0, nil
}

// Revoke drops a single jti, e.g. on rotation.
func (s *RefreshTokenStore) Revoke(ctx context.Context, accountID int64, jti string) error {
	return s.client.Del(ctx, s.key(accountID, jti)).Err()
}

// RevokeAll drops every outstanding token for the account, e.g. after a
// password change.
func (s *RefreshTokenStore) RevokeAll(ctx context.Context, accountID int64) error {
	iter := s.client.Scan(ctx, 0, fmt.Sprintf("refresh:%d:*", accountID), 100).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("revoke refresh token: %w", err)
		}
	}
	return iter.Err()
}

func (s *RefreshTokenStore) key(accountID int64, jti string) string {
	return fmt.Sprintf("refresh:%d:%s", accountID, jti)
}
