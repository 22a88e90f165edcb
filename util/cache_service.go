// util/cache_service.go

package util

import (
	"context"

	"github.com/dev-mohitbeniwal/eventdesk/db"
	"github.com/dev-mohitbeniwal/eventdesk/model"
)

// CacheService fronts the redis cache. A nil backing cache turns every call
// into a miss so the services run unchanged without redis.
type CacheService struct {
	cache *db.RedisCache
}

func NewCacheService(cache *db.RedisCache) *CacheService {
	return &CacheService{cache: cache}
}

func (c *CacheService) GetEvent(ctx context.Context, eventID int64) (*model.Event, error) {
	if c == nil || c.cache == nil {
		return nil, nil
	}
	return c.cache.GetCachedEvent(ctx, eventID)
}

func (c *CacheService) SetEvent(ctx context.Context, event model.Event) error {
	if c == nil || c.cache == nil {
		return nil
	}
	return c.cache.CacheEvent(ctx, &event)
}

func (c *CacheService) DeleteEvent(ctx context.Context, eventID int64) error {
	if c == nil || c.cache == nil {
		return nil
	}
	return c.cache.DeleteCachedEvent(ctx, eventID)
}

func (c *CacheService) GetForm(ctx context.Context, formID int64) (*model.Form, error) {
	if c == nil || c.cache == nil {
		return nil, nil
	}
	return c.cache.GetCachedForm(ctx, formID)
}

func (c *CacheService) SetForm(ctx context.Context, form model.Form) error {
	if c == nil || c.cache == nil {
		return nil
	}
	return c.cache.CacheForm(ctx, &form)
}

func (c *CacheService) DeleteForm(ctx context.Context, formID int64) error {
	if c == nil || c.cache == nil {
		return nil
	}
	return c.cache.DeleteCachedForm(ctx, formID)
}
