//go:build unit

package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"campsite-reservation/internal/domain/reservation"
	"campsite-reservation/internal/infra"
	"campsite-reservation/internal/infra/memory"
	"campsite-reservation/internal/pkg/calendar"
	"campsite-reservation/internal/usecase/shared"
	"campsite-reservation/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func insert(t *testing.T, store *memory.Store, res *reservation.Reservation) {
	t.Helper()
	err := store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Reservations().Insert(ctx, res); err != nil {
			return err
		}
		return tx.OccupiedDays().InsertDays(ctx, res.ID(), res.Days())
	})
	require.NoError(t, err)
}

func occupied(t *testing.T, store *memory.Store, from, to time.Time) []shared.OccupiedDay {
	t.Helper()
	var markers []shared.OccupiedDay
	err := store.WithinReadOnly(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		var err error
		markers, err = tx.OccupiedDays().FindIntersecting(ctx, from, to)
		return err
	})
	require.NoError(t, err)
	return markers
}

func TestStore_Within(t *testing.T) {
	ctx := context.Background()
	from, to := calendar.Date(2026, 10, 20), calendar.Date(2026, 10, 23)

	t.Run("success: failed transaction leaves no trace", func(t *testing.T) {
		store := memory.NewStore()
		res, err := builder.NewReservationBuilder().WithStay(from, to).BuildDomain()
		require.NoError(t, err)
		boom := errors.New("boom")

		err = store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			require.NoError(t, tx.Reservations().Insert(ctx, res))
			require.NoError(t, tx.OccupiedDays().InsertDays(ctx, res.ID(), res.Days()))
			return boom
		})

		assert.ErrorIs(t, err, boom)
		assert.Empty(t, occupied(t, store, from, to))
		err = store.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
			_, err := tx.Reservations().FindByID(ctx, res.ID())
			return err
		})
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("error: read-only transaction rejects writes", func(t *testing.T) {
		store := memory.NewStore()
		res, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)

		err = store.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Reservations().Insert(ctx, res)
		})

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})

	t.Run("error: cancelled context", func(t *testing.T) {
		store := memory.NewStore()
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		err := store.Within(cctx, func(context.Context, shared.Tx) error {
			t.Fatal("fn must not run")
			return nil
		})

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestStore_OccupiedDays(t *testing.T) {
	ctx := context.Background()

	t.Run("error: taken day rejects the whole batch", func(t *testing.T) {
		store := memory.NewStore()
		first, err := builder.NewReservationBuilder().WithStay(calendar.Date(2026, 10, 20), calendar.Date(2026, 10, 22)).BuildDomain()
		require.NoError(t, err)
		insert(t, store, first)
		second, err := builder.NewReservationBuilder().WithStay(calendar.Date(2026, 10, 18), calendar.Date(2026, 10, 21)).BuildDomain()
		require.NoError(t, err)

		err = store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			if err := tx.Reservations().Insert(ctx, second); err != nil {
				return err
			}
			err := tx.OccupiedDays().InsertDays(ctx, second.ID(), second.Days())
			assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))

			markers, _ := tx.OccupiedDays().FindIntersecting(ctx, calendar.Date(2026, 10, 18), calendar.Date(2026, 10, 20))
			assert.Empty(t, markers, "no day of the rejected batch is claimed")
			return err
		})
		require.Error(t, err)

		markers := occupied(t, store, calendar.Date(2026, 10, 18), calendar.Date(2026, 10, 23))
		assert.Equal(t, []shared.OccupiedDay{
			{Day: calendar.Date(2026, 10, 20), ReservationID: first.ID()},
			{Day: calendar.Date(2026, 10, 21), ReservationID: first.ID()},
		}, markers)
	})

	t.Run("error: markers need an existing reservation", func(t *testing.T) {
		store := memory.NewStore()

		err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.OccupiedDays().InsertDays(ctx, uuid.New(), []time.Time{calendar.Date(2026, 10, 20)})
		})

		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})

	t.Run("success: delete only touches the owner's days", func(t *testing.T) {
		store := memory.NewStore()
		res, err := builder.NewReservationBuilder().WithStay(calendar.Date(2026, 10, 20), calendar.Date(2026, 10, 22)).BuildDomain()
		require.NoError(t, err)
		insert(t, store, res)

		var deleted int64
		err = store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			var err error
			deleted, err = tx.OccupiedDays().DeleteDays(ctx, uuid.New(), res.Days())
			return err
		})
		require.NoError(t, err)
		assert.Zero(t, deleted)

		err = store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			var err error
			deleted, err = tx.OccupiedDays().DeleteDays(ctx, res.ID(), []time.Time{calendar.Date(2026, 10, 21), calendar.Date(2026, 10, 25)})
			return err
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted)
		assert.Len(t, occupied(t, store, calendar.Date(2026, 10, 20), calendar.Date(2026, 10, 22)), 1)
	})
}

func TestStore_Reservations(t *testing.T) {
	ctx := context.Background()

	t.Run("error: update with a stale version", func(t *testing.T) {
		store := memory.NewStore()
		res, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)
		insert(t, store, res)

		stale, err := builder.NewReservationBuilder().WithID(res.ID()).WithVersion(5).BuildDomain()
		require.NoError(t, err)
		err = store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Reservations().Update(ctx, stale)
		})

		assert.True(t, infra.IsKind(err, infra.KindStaleVersion))
	})

	t.Run("success: callers get copies", func(t *testing.T) {
		store := memory.NewStore()
		res, err := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, err)
		insert(t, store, res)

		err = store.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
			found, err := tx.Reservations().FindByID(ctx, res.ID())
			if err != nil {
				return err
			}
			found.Cancel(calendar.Date(2026, 10, 15), time.Now())
			return nil
		})
		require.NoError(t, err)

		err = store.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
			found, err := tx.Reservations().FindByID(ctx, res.ID())
			if err != nil {
				return err
			}
			assert.True(t, found.IsActive())
			return nil
		})
		require.NoError(t, err)
	})
}

func TestStore_Events(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)
	store := memory.NewStore()

	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for i, id := range ids {
			if err := tx.Events().Append(ctx, shared.ReservationEvent{
				ID:    id,
				Kind:  shared.EventReservationCreated,
				Topic: string(shared.EventReservationCreated),
				RunAt: now.Add(time.Duration(i) * time.Second),
			}); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)

	var claimed []shared.ReservationEvent
	err = store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		claimed, err = tx.Events().ClaimDue(ctx, now.Add(time.Second), 10)
		if err != nil {
			return err
		}
		if err := tx.Events().MarkSent(ctx, ids[0], now); err != nil {
			return err
		}
		return tx.Events().MarkFailed(ctx, ids[1], "broker down", now.Add(time.Minute), false)
	})
	require.NoError(t, err)
	require.Len(t, claimed, 2, "the third event is not due yet")
	assert.Equal(t, ids[0], claimed[0].ID)
	assert.Equal(t, ids[1], claimed[1].ID)

	err = store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		claimed, err = tx.Events().ClaimDue(ctx, now.Add(time.Hour), 10)
		return err
	})
	require.NoError(t, err)
	require.Len(t, claimed, 2)
	assert.Equal(t, ids[2], claimed[0].ID)
	assert.Equal(t, ids[1], claimed[1].ID)
	assert.Equal(t, int32(1), claimed[1].Attempts)
	assert.Equal(t, "broker down", claimed[1].LastError)
}
