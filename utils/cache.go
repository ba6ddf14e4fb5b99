package utils

import (
	"context"
	"log"
	"time"

	"bookportal/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient backs the booking in-flight guard. It stays nil when no
// Redis address is configured; callers must treat a nil client as
// "guard disabled".
var CacheClient *redis.Client

// InitCache initializes the Redis client when REDIS_ADDR is set.
func InitCache() {
	if config.AppConfig.RedisAddr == "" {
		return
	}
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
}

// GetCacheClient returns the Redis client, which may be nil.
func GetCacheClient() *redis.Client {
	return CacheClient
}
