package repository

import (
	"context"
	"time"

	"aerosky-service/internal/db"

	redis_v9 "github.com/redis/go-redis/v9"
)

// RedisRepo backs the login-lockout counters. All methods tolerate a nil
// client so the service runs without Redis configured.
type RedisRepo struct {
	client *redis_v9.Client
}

func NewRedisRepo() *RedisRepo {
	return &RedisRepo{client: db.RedisClient}
}

func (r *RedisRepo) SaveInt(ctx context.Context, key string, value int64, ltime time.Duration) error {
	if r.client == nil {
		return nil
	}
	return r.client.Set(ctx, key, value, ltime).Err()
}

func (r *RedisRepo) GetInt(ctx context.Context, key string) int64 {
	if r.client == nil {
		return 0
	}
	value, err := r.client.Get(ctx, key).Int64()
	if err != nil {
		return 0
	}
	return value
}
