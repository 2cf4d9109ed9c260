package database

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient wraps the go-redis client used for OTP codes and sessions.
type RedisClient struct{ *redis.Client }

func NewRedis(addr, pass string, db int) *RedisClient {
	return &RedisClient{redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     pass,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})}
}

// Ping verifies connectivity at startup.
func (c *RedisClient) Ping(ctx context.Context) error { return c.Client.Ping(ctx).Err() }

func (c *RedisClient) Close() error { return c.Client.Close() }
