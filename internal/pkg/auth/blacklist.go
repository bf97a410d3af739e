// internal/pkg/auth/blacklist.go
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Blacklist stores revoked token ids in Redis until their natural expiry, so
// logout invalidates a token before it expires on its own.
type Blacklist struct {
	redisClient *redis.Client
}

// NewBlacklist creates a new token blacklist
func NewBlacklist(redisClient *redis.Client) *Blacklist {
	return &Blacklist{redisClient: redisClient}
}

func blacklistKey(tokenID string) string {
	return fmt.Sprintf("auth:blacklist:%s", tokenID)
}

// Revoke marks a token id as revoked until ttl elapses
func (b *Blacklist) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		// Token already expired, nothing to revoke
		return nil
	}
	if err := b.redisClient.Set(ctx, blacklistKey(tokenID), "revoked", ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether the token id has been revoked. If Redis is down
// the token is treated as valid rather than locking every user out.
func (b *Blacklist) IsRevoked(ctx context.Context, tokenID string) bool {
	err := b.redisClient.Get(ctx, blacklistKey(tokenID)).Err()
	return err == nil
}
