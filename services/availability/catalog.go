package availability

import (
	"context"
	"encoding/json"
	"time"

	serviceRepo "reservas/database/repository/service"
	"reservas/models"
	"reservas/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const catalogCacheKey = "catalog:active-services"

// CatalogCache is the narrow slice of the cache the catalog depends on.
type CatalogCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// RedisCatalogCache adapts a redis client to CatalogCache.
type RedisCatalogCache struct {
	Client *redis.Client
}

func (c *RedisCatalogCache) Get(ctx context.Context, key string) (string, error) {
	return c.Client.Get(ctx, key).Result()
}

func (c *RedisCatalogCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.Client.Set(ctx, key, value, ttl).Err()
}

func (c *RedisCatalogCache) Del(ctx context.Context, key string) error {
	return c.Client.Del(ctx, key).Err()
}

// DefaultCatalog loads active services through the repository with a
// read-through cache of the raw documents. Cache trouble degrades to a
// direct store read; it never fails a query.
type DefaultCatalog struct {
	Repo   serviceRepo.AgencyServiceRepository
	Cache  CatalogCache // nil disables caching
	TTL    time.Duration
	Logger *zap.Logger
}

// NewCatalog creates a service catalog.
func NewCatalog(repo serviceRepo.AgencyServiceRepository, cache CatalogCache, ttl time.Duration, logger *zap.Logger) Catalog {
	return &DefaultCatalog{Repo: repo, Cache: cache, TTL: ttl, Logger: logger}
}

// LoadActive returns active services whose owning agency is active,
// with schedules decoded. Order is unspecified; the resolver re-sorts.
func (c *DefaultCatalog) LoadActive() ([]models.AgencyService, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if c.Cache != nil && c.TTL > 0 {
		if raw, err := c.Cache.Get(ctx, catalogCacheKey); err == nil {
			var services []models.AgencyService
			if err := json.Unmarshal([]byte(raw), &services); err == nil {
				return c.decodeSchedules(services), nil
			}
			c.logger().Warn("unreadable catalog cache entry, reading from store", zap.Error(err))
		}
	}

	services, err := c.Repo.ListActiveWithAgency()
	if err != nil {
		return nil, err
	}

	if c.Cache != nil && c.TTL > 0 {
		if raw, err := json.Marshal(services); err == nil {
			if err := c.Cache.Set(ctx, catalogCacheKey, string(raw), c.TTL); err != nil {
				c.logger().Warn("failed to cache active services", zap.Error(err))
			}
		}
	}
	return c.decodeSchedules(services), nil
}

// Invalidate drops the cached snapshot. Every submission write calls
// this so booking queries never serve a stale schedule past the TTL.
func (c *DefaultCatalog) Invalidate() {
	if c.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := c.Cache.Del(ctx, catalogCacheKey); err != nil {
		c.logger().Warn("failed to invalidate catalog cache", zap.Error(err))
	}
}

// decodeSchedules attaches the decoded schedule to each service. A
// record whose blobs fail to decode is kept with a nil schedule so one
// bad record cannot break resolution for the others; the fault is
// logged for operators.
func (c *DefaultCatalog) decodeSchedules(services []models.AgencyService) []models.AgencyService {
	for i := range services {
		sched, err := models.DecodeSchedule(services[i].Hours, services[i].ExcludedDates)
		if err != nil {
			cfgErr := utils.NewConfigurationError(services[i].AgencyID, err)
			c.logger().Warn("service offers nothing due to corrupt schedule",
				zap.String("agencyId", services[i].AgencyID),
				zap.Error(cfgErr),
			)
			services[i].Schedule = nil
			continue
		}
		services[i].Schedule = sched
	}
	return services
}

func (c *DefaultCatalog) logger() *zap.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return zap.NewNop()
}
