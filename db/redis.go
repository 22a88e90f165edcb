// db/redis.go
package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/eventdesk/config"
	logger "github.com/dev-mohitbeniwal/eventdesk/logging"
	"github.com/dev-mohitbeniwal/eventdesk/model"
)

// RedisCache is a read-through cache for events and forms plus the sliding
// window counters behind the rate limiter. A cache miss returns (nil, nil).
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func InitRedis(ctx context.Context) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.GetString("redis.addr"),
		Password: config.GetString("redis.password"),
		DB:       config.GetInt("redis.db"),
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := client.Ping(pingCtx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Successfully connected to Redis")
	return NewRedisCache(client, config.GetDuration("redis.defaultCacheTTL")), nil
}

func (c *RedisCache) Close() {
	if err := c.client.Close(); err != nil {
		logger.Error("Error closing Redis connection", zap.Error(err))
	}
}

func eventKey(eventID int64) string { return fmt.Sprintf("event:%d", eventID) }

func formKey(formID int64) string { return fmt.Sprintf("form:%d", formID) }

func (c *RedisCache) setJSON(ctx context.Context, key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache %s: %w", key, err)
	}
	return nil
}

// getJSON reports whether the key was present.
func (c *RedisCache) getJSON(ctx context.Context, key string, v any) (bool, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("failed to get %s from cache: %w", key, err)
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return true, nil
}

func (c *RedisCache) del(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete %s from cache: %w", key, err)
	}
	return nil
}

func (c *RedisCache) CacheEvent(ctx context.Context, event *model.Event) error {
	if err := c.setJSON(ctx, eventKey(event.ID), event); err != nil {
		return err
	}
	logger.Debug("Event cached successfully", zap.Int64("eventID", event.ID))
	return nil
}

func (c *RedisCache) GetCachedEvent(ctx context.Context, eventID int64) (*model.Event, error) {
	var event model.Event
	found, err := c.getJSON(ctx, eventKey(eventID), &event)
	if err != nil || !found {
		return nil, err
	}
	logger.Debug("Event retrieved from cache", zap.Int64("eventID", eventID))
	return &event, nil
}

func (c *RedisCache) DeleteCachedEvent(ctx context.Context, eventID int64) error {
	return c.del(ctx, eventKey(eventID))
}

func (c *RedisCache) CacheForm(ctx context.Context, form *model.Form) error {
	if err := c.setJSON(ctx, formKey(form.ID), form); err != nil {
		return err
	}
	logger.Debug("Form cached successfully", zap.Int64("formID", form.ID))
	return nil
}

func (c *RedisCache) GetCachedForm(ctx context.Context, formID int64) (*model.Form, error) {
	var form model.Form
	found, err := c.getJSON(ctx, formKey(formID), &form)
	if err != nil || !found {
		return nil, err
	}
	logger.Debug("Form retrieved from cache", zap.Int64("formID", formID))
	return &form, nil
}

func (c *RedisCache) DeleteCachedForm(ctx context.Context, formID int64) error {
	return c.del(ctx, formKey(formID))
}

// RateLimit records one hit for key and reports whether the number of hits
// inside the trailing window is still within limit.
func (c *RedisCache) RateLimit(ctx context.Context, key string, limit int, per time.Duration) (bool, error) {
	pipe := c.client.Pipeline()
	now := time.Now().UnixNano()
	key = fmt.Sprintf("ratelimit:%s", key)

	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", now-per.Nanoseconds()))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: now})
	card := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, per)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to execute rate limit commands: %w", err)
	}

	count := card.Val()
	allowed := count <= int64(limit)
	logger.Debug("Rate limit check",
		zap.String("key", key),
		zap.Int64("count", count),
		zap.Int("limit", limit),
		zap.Bool("allowed", allowed))
	return allowed, nil
}
