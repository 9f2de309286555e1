package queries

import (
	"context"
	"time"

	"campsite-reservation/internal/domain/reservation"
	"campsite-reservation/internal/pkg/calendar"
	"campsite-reservation/internal/usecase/shared"
)

type AvailabilityView struct {
	From           time.Time   `json:"from"`
	To             time.Time   `json:"to"`
	AvailableDates []time.Time `json:"available_dates"`
}

// AvailabilityCache stores computed views per index generation. Implementations
// swallow their own failures: a miss is always a valid answer.
type AvailabilityCache interface {
	// Generation must be read before the index so a view is never filed under a newer generation.
	Generation(ctx context.Context) (int64, bool)
	Get(ctx context.Context, gen int64, from, to time.Time) (*AvailabilityView, bool)
	Set(ctx context.Context, gen int64, view *AvailabilityView)
}

type AvailabilityQueries interface {
	// AvailableDates lists the free days of the inclusive window [from, to].
	AvailableDates(ctx context.Context, from, to time.Time) (*AvailabilityView, error)
	// AvailableDatesInWindow defaults missing bounds to the bookable horizon,
	// raises an early from and lowers a late to onto it, then delegates to
	// AvailableDates. A window left inverted is rejected as invalid_range.
	AvailableDatesInWindow(ctx context.Context, from, to *time.Time) (*AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	uow      shared.UnitOfWork
	cache    AvailabilityCache
	calendar *shared.Calendar
}

func NewAvailabilityQueries(uow shared.UnitOfWork, cache AvailabilityCache, cal *shared.Calendar) AvailabilityQueries {
	return &availabilityQueriesImpl{
		uow:      uow,
		cache:    cache,
		calendar: cal,
	}
}

func (q *availabilityQueriesImpl) AvailableDates(ctx context.Context, from, to time.Time) (*AvailabilityView, error) {
	from, to = calendar.Truncate(from), calendar.Truncate(to)
	if from.After(to) {
		return nil, reservation.NewInvalidRangeError()
	}

	var (
		gen       int64
		cacheable bool
	)
	if q.cache != nil {
		gen, cacheable = q.cache.Generation(ctx)
	}
	if cacheable {
		if view, ok := q.cache.Get(ctx, gen, from, to); ok {
			return view, nil
		}
	}

	end := calendar.AddDays(to, 1)
	view, err := shared.ReadResult(ctx, q.uow, func(ctx context.Context, tx shared.Tx) (*AvailabilityView, error) {
		markers, err := tx.OccupiedDays().FindIntersecting(ctx, from, end)
		if err != nil {
			return nil, err
		}
		occupied := calendar.NewSet()
		for _, m := range markers {
			occupied[calendar.Truncate(m.Day)] = struct{}{}
		}
		return &AvailabilityView{
			From:           from,
			To:             to,
			AvailableDates: occupied.SubtractFrom(calendar.DaysInRange(from, end)),
		}, nil
	})
	if err != nil {
		return nil, err
	}

	if cacheable {
		q.cache.Set(ctx, gen, view)
	}
	return view, nil
}

func (q *availabilityQueriesImpl) AvailableDatesInWindow(ctx context.Context, from, to *time.Time) (*AvailabilityView, error) {
	earliest, latest := q.calendar.Policy().Horizon(q.calendar.Today())

	start := earliest
	if from != nil {
		if d := calendar.Truncate(*from); d.After(earliest) {
			start = d
		}
	}
	end := latest
	if to != nil {
		if d := calendar.Truncate(*to); d.Before(latest) {
			end = d
		}
	}
	return q.AvailableDates(ctx, start, end)
}
