package utils

import (
	"context"
	"log"
	"time"

	"reservas/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient is the generic cache client, used for the active-service
// catalog snapshot.
var CacheClient *redis.Client

// InitCache initializes the Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := CacheClient.Ping(ctx).Err(); err != nil {
		log.Printf("warning: redis cache unreachable at %s: %v", config.AppConfig.RedisAddr, err)
	}
}

// GetCacheClient returns the generic cache client, initializing it on
// first use.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}
