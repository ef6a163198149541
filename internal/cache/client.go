package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

type Client struct {
	rdb *redis.Client
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// IncrAttempt bumps the fixed-window counter for key and returns the count
// within the current window. The window starts on the first attempt.
func (c *Client) IncrAttempt(ctx context.Context, key string, window time.Duration) (int64, error) {
	redisKey := "login_attempts:" + key
	count, err := c.rdb.Incr(ctx, redisKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment attempt counter: %w", err)
	}
	if count == 1 {
		if err := c.rdb.Expire(ctx, redisKey, window).Err(); err != nil {
			return count, fmt.Errorf("failed to set counter expiry: %w", err)
		}
	}
	return count, nil
}

func (c *Client) ResetAttempts(ctx context.Context, key string) error {
	return c.rdb.Del(ctx, "login_attempts:"+key).Err()
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
