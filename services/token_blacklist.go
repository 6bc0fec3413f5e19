package services

import (
	"context"
	"fmt"
	"time"

	"feathernote/logger"

	"github.com/redis/go-redis/v9"
)

type RedisTokenBlacklist struct {
	Client *redis.Client
}

// TokenBlacklist is the global instance, set once at startup. When it
// stays nil (tests, dev without Redis) no token is ever blacklisted.
var TokenBlacklist *RedisTokenBlacklist

// NewTokenBlacklist creates a Redis-backed revoked-token set.
func NewTokenBlacklist(redisURL string) (*RedisTokenBlacklist, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisTokenBlacklist{Client: client}, nil
}

// BlacklistToken revokes a token until its natural expiry. Redis drops
// the key on its own afterwards. Without Redis this is a no-op: the
// token stays valid until expiry, but logout itself still succeeds.
func BlacklistToken(ctx context.Context, tokenString string) error {
	if TokenBlacklist == nil {
		logger.Sugar.Warnw("token blacklist not configured, token stays valid until expiry")
		return nil
	}

	ttl := time.Until(TokenExpiry(tokenString))
	if ttl <= 0 {
		return nil
	}

	key := fmt.Sprintf("blacklist:%s", tokenString)
	if err := TokenBlacklist.Client.Set(ctx, key, "true", ttl).Err(); err != nil {
		return fmt.Errorf("failed to blacklist token: %w", err)
	}
	return nil
}

// IsTokenBlacklisted reports whether the token has been revoked.
func IsTokenBlacklisted(ctx context.Context, tokenString string) bool {
	if TokenBlacklist == nil {
		return false
	}

	key := fmt.Sprintf("blacklist:%s", tokenString)
	exists, err := TokenBlacklist.Client.Exists(ctx, key).Result()
	if err != nil {
		return false
	}
	return exists > 0
}

// Close closes the Redis connection.
func (tb *RedisTokenBlacklist) Close() error {
	return tb.Client.Close()
}
