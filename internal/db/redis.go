package db

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

// InitRedis is optional: when no address is configured the login-lockout
// counters silently degrade to in-memory only.
func InitRedis(addr, password string, database int) {
	if addr == "" {
		log.Println("Redis not configured, login lockout will not persist across restarts")
		return
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       database,
	})

	if err := RedisClient.Ping(context.Background()).Err(); err != nil {
		log.Printf("Warning: could not verify Redis connection: %s", err)
	}
}
