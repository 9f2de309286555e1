package repository

import (
	"context"
	"time"

	"campsite-reservation/internal/infra"
	"campsite-reservation/internal/infra/repository/converter"
	sqlc "campsite-reservation/internal/infra/sqlc/generated"
	"campsite-reservation/internal/pkg/pgconv"
	"campsite-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type EventQueries interface {
	CreateReservationEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationEventParams) error
	ClaimDueReservationEvents(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimDueReservationEventsParams) ([]sqlc.ReservationEvents, error)
	MarkReservationEventSent(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkReservationEventSentParams) error
	MarkReservationEventFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkReservationEventFailedParams) error
}

type EventRepository struct {
	queries EventQueries
	db      sqlc.DBTX
}

func NewEventRepository(queries EventQueries, db sqlc.DBTX) *EventRepository {
	return &EventRepository{
		queries: queries,
		db:      db,
	}
}

func (r *EventRepository) Append(ctx context.Context, event shared.ReservationEvent) error {
	id := event.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	params := sqlc.CreateReservationEventParams{
		ID:      id,
		Kind:    string(event.Kind),
		Topic:   event.Topic,
		Payload: event.Payload,
		RunAt:   pgconv.TimeToPgtype(event.RunAt),
	}
	if err := r.queries.CreateReservationEvent(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to append reservation event", err)
	}
	return nil
}

func (r *EventRepository) ClaimDue(ctx context.Context, now time.Time, limit int) ([]shared.ReservationEvent, error) {
	rows, err := r.queries.ClaimDueReservationEvents(ctx, r.db, sqlc.ClaimDueReservationEventsParams{
		Now:       pgconv.TimeToPgtype(now),
		MaxEvents: int32(limit), // #nosec G115 -- batch size is a small configured value
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim reservation events", err)
	}
	events := make([]shared.ReservationEvent, len(rows))
	for i, row := range rows {
		events[i] = converter.EventFromRow(row)
	}
	return events, nil
}

func (r *EventRepository) MarkSent(ctx context.Context, id uuid.UUID, at time.Time) error {
	err := r.queries.MarkReservationEventSent(ctx, r.db, sqlc.MarkReservationEventSentParams{
		ID:     id,
		SentAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark reservation event sent", err)
	}
	return nil
}

func (r *EventRepository) MarkFailed(ctx context.Context, id uuid.UUID, lastError string, nextRunAt time.Time, dead bool) error {
	status := shared.EventStatusPending
	if dead {
		status = shared.EventStatusDead
	}
	params := sqlc.MarkReservationEventFailedParams{
		ID:        id,
		Status:    string(status),
		LastError: pgtype.Text{String: lastError, Valid: lastError != ""},
		NextRunAt: pgconv.TimeToPgtype(nextRunAt),
	}
	if err := r.queries.MarkReservationEventFailed(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to mark reservation event failed", err)
	}
	return nil
}
