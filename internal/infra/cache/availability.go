package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"campsite-reservation/internal/pkg/calendar"
	"campsite-reservation/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix     = "campsite:availability"
	generationKey = keyPrefix + ":gen"
)

// AvailabilityCache is a read-through cache of availability views. Every
// committed write bumps a generation counter that is part of each key, so
// stale entries are never read again and simply expire.
// A nil client turns every operation into a no-op.
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAvailabilityCache(client *redis.Client, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{client: client, ttl: ttl}
}

type cachedView struct {
	From           string   `json:"from"`
	To             string   `json:"to"`
	AvailableDates []string `json:"available_dates"`
}

func (c *AvailabilityCache) Generation(ctx context.Context) (int64, bool) {
	if c.client == nil {
		return 0, false
	}
	gen, err := c.client.Get(ctx, generationKey).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, true
		}
		slog.Warn("availability cache generation read failed", "error", err.Error())
		return 0, false
	}
	return gen, true
}

func (c *AvailabilityCache) Get(ctx context.Context, gen int64, from, to time.Time) (*queries.AvailabilityView, bool) {
	if c.client == nil {
		return nil, false
	}
	key := viewKey(gen, from, to)
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("availability cache read failed", "key", key, "error", err.Error())
		}
		return nil, false
	}

	var cv cachedView
	if err := json.Unmarshal(raw, &cv); err != nil {
		slog.Warn("availability cache entry is corrupted", "key", key, "error", err.Error())
		return nil, false
	}
	view, err := cv.toView()
	if err != nil {
		return nil, false
	}
	return view, true
}

func (c *AvailabilityCache) Set(ctx context.Context, gen int64, view *queries.AvailabilityView) {
	if c.client == nil || view == nil {
		return
	}
	key := viewKey(gen, view.From, view.To)
	payload, err := json.Marshal(fromView(view))
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		slog.Warn("availability cache write failed", "key", key, "error", err.Error())
	}
}

// Invalidate retires every cached view by moving to the next generation.
func (c *AvailabilityCache) Invalidate(ctx context.Context) {
	if c.client == nil {
		return
	}
	if err := c.client.Incr(ctx, generationKey).Err(); err != nil {
		slog.Warn("availability cache invalidation failed", "error", err.Error())
	}
}

func viewKey(gen int64, from, to time.Time) string {
	return fmt.Sprintf("%s:%d:%s:%s", keyPrefix, gen, calendar.Format(from), calendar.Format(to))
}

func fromView(v *queries.AvailabilityView) cachedView {
	dates := make([]string, len(v.AvailableDates))
	for i, d := range v.AvailableDates {
		dates[i] = calendar.Format(d)
	}
	return cachedView{
		From:           calendar.Format(v.From),
		To:             calendar.Format(v.To),
		AvailableDates: dates,
	}
}

func (cv cachedView) toView() (*queries.AvailabilityView, error) {
	from, err := calendar.Parse(cv.From)
	if err != nil {
		return nil, err
	}
	to, err := calendar.Parse(cv.To)
	if err != nil {
		return nil, err
	}
	dates := make([]time.Time, len(cv.AvailableDates))
	for i, s := range cv.AvailableDates {
		d, err := calendar.Parse(s)
		if err != nil {
			return nil, err
		}
		dates[i] = d
	}
	return &queries.AvailabilityView{From: from, To: to, AvailableDates: dates}, nil
}
