package util

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/eventdesk/db"
	"github.com/dev-mohitbeniwal/eventdesk/model"
)

func TestCacheService_WithRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	cache := NewCacheService(db.NewRedisCache(client, time.Minute))
	ctx := context.Background()

	require.NoError(t, cache.SetForm(ctx, model.Form{ID: 10001, EventID: 10000, Fields: model.DefaultFields()}))
	form, err := cache.GetForm(ctx, 10001)
	require.NoError(t, err)
	require.NotNil(t, form)
	assert.Equal(t, int64(10000), form.EventID)

	require.NoError(t, cache.DeleteForm(ctx, 10001))
	form, err = cache.GetForm(ctx, 10001)
	require.NoError(t, err)
	assert.Nil(t, form)
}

func TestCacheService_WithoutRedis(t *testing.T) {
	cache := NewCacheService(nil)
	ctx := context.Background()

	assert.NoError(t, cache.SetEvent(ctx, model.Event{ID: 10000}))
	event, err := cache.GetEvent(ctx, 10000)
	assert.NoError(t, err)
	assert.Nil(t, event)
	assert.NoError(t, cache.DeleteEvent(ctx, 10000))
}
