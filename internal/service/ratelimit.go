package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CheckAndSetRateLimit allows one action per user per window. Without a
// Redis client (or with a zero window) every call is allowed.
func CheckAndSetRateLimit(ctx context.Context, rdb *redis.Client, userID, action string, limit time.Duration) (bool, error) {
	if rdb == nil || limit <= 0 {
		return true, nil
	}

	key := fmt.Sprintf("rate_limit:user:%s:%s", userID, action)

	wasSet, err := rdb.SetNX(ctx, key, "locked", limit).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check rate limit in redis: %w", err)
	}

	return wasSet, nil
}

// ClearRateLimit removes a user's lock for an action.
func ClearRateLimit(ctx context.Context, rdb *redis.Client, userID, action string) error {
	if rdb == nil {
		return nil
	}
	key := fmt.Sprintf("rate_limit:user:%s:%s", userID, action)
	_, err := rdb.Del(ctx, key).Result()
	return err
}
