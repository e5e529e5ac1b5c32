package token

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const blacklistKeyPrefix = "token:blacklist:"

// Blacklist records revoked access token IDs (jti) until their natural expiry.
type Blacklist interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// RedisBlacklist stores revocations in Redis so they survive restarts and are
// shared across instances. When Redis is unavailable it degrades to an
// in-process map rather than failing logout.
type RedisBlacklist struct {
	client *redis.Client

	mu       sync.RWMutex
	fallback map[string]time.Time
}

func NewRedisBlacklist(client *redis.Client) *RedisBlacklist {
	return &RedisBlacklist{
		client:   client,
		fallback: make(map[string]time.Time),
	}
}

func (b *RedisBlacklist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		// Token already expired, nothing to record.
		return nil
	}

	if b.client != nil {
		if err := b.client.Set(ctx, blacklistKeyPrefix+jti, "1", ttl).Err(); err == nil {
			return nil
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.fallback[jti] = time.Now().Add(ttl)
	b.pruneLocked()
	return nil
}

func (b *RedisBlacklist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if b.client != nil {
		n, err := b.client.Exists(ctx, blacklistKeyPrefix+jti).Result()
		if err == nil {
			if n > 0 {
				return true, nil
			}
		}
		// Fall through to the local map on error so a Redis outage cannot
		// resurrect a token revoked during the outage.
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	expiry, ok := b.fallback[jti]
	return ok && time.Now().Before(expiry), nil
}

// pruneLocked drops expired fallback entries. Caller holds the write lock.
func (b *RedisBlacklist) pruneLocked() {
	now := time.Now()
	for jti, expiry := range b.fallback {
		if now.After(expiry) {
			delete(b.fallback, jti)
		}
	}
}
