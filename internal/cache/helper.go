package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	usersKey           = "users:all"
	userProductsPrefix = "user:%d:products"
)

const (
	// UserListTTL bounds staleness of the full vendor list.
	UserListTTL = 5 * time.Minute
	// ProductsTTL bounds staleness of a vendor's product list.
	ProductsTTL = 2 * time.Minute
)

// UsersKey is the cache key for the full vendor list.
func UsersKey() string {
	return usersKey
}

// UserProductsKey is the cache key for one vendor's product list.
func UserProductsKey(userID uint) string {
	return fmt.Sprintf(userProductsPrefix, userID)
}

// GetJSON attempts to get the key from Redis and unmarshal into dest.
// Returns (true, nil) if found and unmarshaled, (false, nil) if not found.
func GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if client == nil {
		return false, nil
	}
	s, err := client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(s), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON marshals v and sets the key with TTL.
func SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	if client == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return client.Set(ctx, key, b, ttl).Err()
}

// CacheAside tries Redis first, on miss it calls fetch (which should populate
// dest), then stores the result in Redis with ttl. fetch must write into dest.
func CacheAside(ctx context.Context, key string, dest any, ttl time.Duration, fetch func() error) error {
	found, err := GetJSON(ctx, key, dest)
	if err != nil {
		return err
	}
	if found {
		return nil
	}

	if err := fetch(); err != nil {
		return err
	}

	// Store into cache (best-effort)
	_ = SetJSON(ctx, key, dest, ttl)
	return nil
}

// Invalidate removes a key from the cache.
func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidateUsers drops the cached vendor list.
func InvalidateUsers(ctx context.Context) {
	Invalidate(ctx, usersKey)
}

// InvalidateUserProducts drops the cached product list of one vendor.
func InvalidateUserProducts(ctx context.Context, userID uint) {
	Invalidate(ctx, UserProductsKey(userID))
}
