package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"tongpass/internal/domain/site"
	"tongpass/internal/shared/logger"
)

const (
	sitePolicyKeyPrefix = "site:policy:"
	sitePolicyTTL       = 60 * time.Second
)

// SitePolicyCache is a read-through cache in front of the site repository.
// Site policy is read on every check-in/check-out, changes rarely, and a
// 60s staleness window is acceptable. Any cache failure falls back to the
// database; the cache is never load-bearing.
type SitePolicyCache struct {
	client *redis.Client
	repo   site.Repository
	logger logger.Interface
}

// NewSitePolicyCache wraps the repository with a redis cache. Implements
// site.Repository so callers do not know whether caching is enabled.
func NewSitePolicyCache(client *redis.Client, repo site.Repository, log logger.Interface) site.Repository {
	return &SitePolicyCache{
		client: client,
		repo:   repo,
		logger: log.With("component", "cache.site_policy"),
	}
}

func (c *SitePolicyCache) key(id uint) string {
	return fmt.Sprintf("%s%d", sitePolicyKeyPrefix, id)
}

func (c *SitePolicyCache) GetByID(ctx context.Context, id uint) (*site.Site, error) {
	key := c.key(id)

	data, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var cached site.Site
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
		c.logger.Warnw("corrupt cache entry, falling back to database", "key", key)
	} else if err != redis.Nil {
		c.logger.Warnw("cache read failed, falling back to database",
			"key", key,
			"error", err)
	}

	loaded, err := c.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(loaded); err == nil {
		if err := c.client.Set(ctx, key, data, sitePolicyTTL).Err(); err != nil {
			c.logger.Warnw("cache write failed", "key", key, "error", err)
		}
	}

	return loaded, nil
}

// ListAutoCheckout is scheduler-only traffic, too infrequent to cache.
func (c *SitePolicyCache) ListAutoCheckout(ctx context.Context) ([]*site.Site, error) {
	return c.repo.ListAutoCheckout(ctx)
}
