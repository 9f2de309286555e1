//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"campsite-reservation/internal/infra"
	"campsite-reservation/internal/infra/repository"
	sqlc "campsite-reservation/internal/infra/sqlc/generated"
	"campsite-reservation/internal/usecase/shared"
	repositorymock "campsite-reservation/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEventRepository(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)

	t.Run("success: append assigns an id when missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockEventQueries(ctrl)
		repo := repository.NewEventRepository(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().CreateReservationEvent(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateReservationEventParams) error {
				assert.NotEqual(t, uuid.Nil, arg.ID)
				assert.Equal(t, "reservation.created", arg.Kind)
				assert.Equal(t, now, arg.RunAt.Time)
				return nil
			})

		err := repo.Append(ctx, shared.ReservationEvent{
			Kind:    shared.EventReservationCreated,
			Topic:   string(shared.EventReservationCreated),
			Payload: []byte(`{}`),
			RunAt:   now,
		})
		assert.NoError(t, err)
	})

	t.Run("success: claimed rows become events", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockEventQueries(ctrl)
		repo := repository.NewEventRepository(mockQueries, &mockDBTX{})
		id := uuid.New()

		mockQueries.EXPECT().ClaimDueReservationEvents(ctx, gomock.Any(), sqlc.ClaimDueReservationEventsParams{
			Now:       pgtype.Timestamptz{Time: now, Valid: true},
			MaxEvents: 10,
		}).Return([]sqlc.ReservationEvents{{
			ID:        id,
			Kind:      "reservation.cancelled",
			Topic:     "reservation.cancelled",
			Payload:   []byte(`{"status":"cancelled"}`),
			RunAt:     pgtype.Timestamptz{Time: now, Valid: true},
			Attempts:  2,
			Status:    "pending",
			LastError: pgtype.Text{String: "channel closed", Valid: true},
			CreatedAt: pgtype.Timestamptz{Time: now, Valid: true},
		}}, nil)

		events, err := repo.ClaimDue(ctx, now, 10)

		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, id, events[0].ID)
		assert.Equal(t, shared.EventReservationCancelled, events[0].Kind)
		assert.Equal(t, int32(2), events[0].Attempts)
		assert.Equal(t, "channel closed", events[0].LastError)
	})

	t.Run("success: failure past the limit is marked dead", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockEventQueries(ctrl)
		repo := repository.NewEventRepository(mockQueries, &mockDBTX{})
		id := uuid.New()

		mockQueries.EXPECT().MarkReservationEventFailed(ctx, gomock.Any(), sqlc.MarkReservationEventFailedParams{
			ID:        id,
			Status:    "dead",
			LastError: pgtype.Text{String: "broker down", Valid: true},
			NextRunAt: pgtype.Timestamptz{Time: now, Valid: true},
		}).Return(nil)

		assert.NoError(t, repo.MarkFailed(ctx, id, "broker down", now, true))
	})

	t.Run("error: mark sent failure is classified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockEventQueries(ctrl)
		repo := repository.NewEventRepository(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().MarkReservationEventSent(ctx, gomock.Any(), gomock.Any()).Return(pgErr(infra.PgErrCodeSerializationFailure))

		err := repo.MarkSent(ctx, uuid.New(), now)

		assert.True(t, infra.IsKind(err, infra.KindSerialization))
		assert.True(t, infra.IsRetryable(err))
	})
}
