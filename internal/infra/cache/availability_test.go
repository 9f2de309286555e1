//go:build unit

package cache_test

import (
	"context"
	"testing"
	"time"

	"campsite-reservation/internal/infra/cache"
	"campsite-reservation/internal/pkg/calendar"
	"campsite-reservation/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestAvailabilityCache_Degrades(t *testing.T) {
	ctx := context.Background()
	from, to := calendar.Date(2026, 10, 20), calendar.Date(2026, 10, 22)
	view := &queries.AvailabilityView{From: from, To: to, AvailableDates: []time.Time{from}}

	t.Run("success: nil client is a no-op", func(t *testing.T) {
		c := cache.NewAvailabilityCache(nil, time.Minute)

		_, ok := c.Generation(ctx)
		assert.False(t, ok)
		_, ok = c.Get(ctx, 0, from, to)
		assert.False(t, ok)
		c.Set(ctx, 0, view)
		c.Invalidate(ctx)
	})

	t.Run("success: unreachable redis reports a miss", func(t *testing.T) {
		client := redis.NewClient(&redis.Options{
			Addr:        "127.0.0.1:1",
			DialTimeout: 50 * time.Millisecond,
			MaxRetries:  -1,
		})
		t.Cleanup(func() { _ = client.Close() })
		c := cache.NewAvailabilityCache(client, time.Minute)

		_, ok := c.Generation(ctx)
		assert.False(t, ok)
		_, ok = c.Get(ctx, 1, from, to)
		assert.False(t, ok)
		c.Set(ctx, 1, view)
		c.Invalidate(ctx)
	})
}
