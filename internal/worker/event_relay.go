// Package worker runs background jobs owned by the application lifecycle.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"campsite-reservation/internal/infra/broker"
	"campsite-reservation/internal/pkg/clock"
	"campsite-reservation/internal/pkg/config"
	"campsite-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	defaultPollInterval = 2 * time.Second
	defaultBatchSize    = 50
	maxRetryDelay       = 5 * time.Minute
)

// EventRelay moves outbox rows to the publisher. Publish runs inside the
// batch transaction, which the unit of work may replay on a serialization
// failure; events already published by an earlier run of the same batch are
// only marked sent on replay. Delivery stays at-least-once: if the batch
// finally fails, or another relay claims a row between runs, the event goes
// out again.
type EventRelay struct {
	uow         shared.UnitOfWork
	publisher   broker.Publisher
	clock       clock.Clock
	interval    time.Duration
	batchSize   int
	maxAttempts int

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewEventRelay(uow shared.UnitOfWork, publisher broker.Publisher, clk clock.Clock, cfg config.Config) *EventRelay {
	r := &EventRelay{
		uow:         uow,
		publisher:   publisher,
		clock:       clk,
		interval:    cfg.Broker.PollInterval,
		batchSize:   cfg.Broker.BatchSize,
		maxAttempts: cfg.Broker.MaxAttempts,
	}
	if r.interval <= 0 {
		r.interval = defaultPollInterval
	}
	if r.batchSize <= 0 {
		r.batchSize = defaultBatchSize
	}
	if r.maxAttempts <= 0 {
		r.maxAttempts = 1
	}
	return r
}

func (r *EventRelay) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.loop(ctx)
	}()
}

func (r *EventRelay) Stop(ctx context.Context) error {
	if r.cancel != nil {
		r.cancel()
	}
	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}
	return r.publisher.Close()
}

func (r *EventRelay) loop(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := r.RunOnce(ctx); err != nil && ctx.Err() == nil {
				slog.Error("event relay batch failed", "error", err.Error())
			}
		}
	}
}

// RunOnce relays one batch of due events and reports how many were published.
func (r *EventRelay) RunOnce(ctx context.Context) (int, error) {
	published := 0
	// survives replays of the transaction below
	delivered := make(map[uuid.UUID]struct{})
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		published = 0
		now := r.clock.Now()
		events, err := tx.Events().ClaimDue(ctx, now, r.batchSize)
		if err != nil {
			return err
		}
		for _, ev := range events {
			if _, ok := delivered[ev.ID]; ok {
				if err := tx.Events().MarkSent(ctx, ev.ID, now); err != nil {
					return err
				}
				published++
				continue
			}
			if pubErr := r.publisher.Publish(ctx, ev); pubErr != nil {
				attempts := int(ev.Attempts) + 1
				dead := attempts >= r.maxAttempts
				slog.Warn("failed to publish reservation event",
					"event_id", ev.ID.String(),
					"kind", string(ev.Kind),
					"attempt", attempts,
					"dead", dead,
					"error", pubErr.Error())
				if err := tx.Events().MarkFailed(ctx, ev.ID, pubErr.Error(), now.Add(retryDelay(attempts)), dead); err != nil {
					return err
				}
				continue
			}
			delivered[ev.ID] = struct{}{}
			if err := tx.Events().MarkSent(ctx, ev.ID, now); err != nil {
				return err
			}
			published++
		}
		return nil
	})
	return published, err
}

func retryDelay(attempts int) time.Duration {
	if attempts > 12 {
		return maxRetryDelay
	}
	d := time.Duration(1<<attempts) * time.Second
	if d > maxRetryDelay {
		return maxRetryDelay
	}
	return d
}
