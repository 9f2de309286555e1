//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"campsite-reservation/internal/infra"
	"campsite-reservation/internal/infra/repository"
	sqlc "campsite-reservation/internal/infra/sqlc/generated"
	"campsite-reservation/internal/pkg/calendar"
	"campsite-reservation/internal/usecase/shared"
	repositorymock "campsite-reservation/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func pgDate(day time.Time) pgtype.Date {
	return pgtype.Date{Time: day, Valid: true}
}

// =============================================================================
// Read Occupied Days Tests
// =============================================================================

func TestOccupiedDayRepository_LockIntersecting(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	from, to := calendar.Date(2026, 10, 20), calendar.Date(2026, 10, 23)

	t.Run("success: rows become markers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOccupiedDayQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewOccupiedDayRepository(mockQueries, mockDB)

		mockQueries.EXPECT().
			LockOccupiedDays(ctx, mockDB, sqlc.LockOccupiedDaysParams{FromDay: pgDate(from), ToDay: pgDate(to)}).
			Return([]sqlc.LockOccupiedDaysRow{{Day: pgDate(calendar.Date(2026, 10, 21)), ReservationID: owner}}, nil)

		markers, err := repo.LockIntersecting(ctx, from, to)

		require.NoError(t, err)
		assert.Equal(t, []shared.OccupiedDay{{Day: calendar.Date(2026, 10, 21), ReservationID: owner}}, markers)
	})

	t.Run("error: lock wait timed out", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOccupiedDayQueries(ctrl)
		repo := repository.NewOccupiedDayRepository(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().LockOccupiedDays(ctx, gomock.Any(), gomock.Any()).Return(nil, pgErr(infra.PgErrCodeQueryCanceled))

		_, err := repo.LockIntersecting(ctx, from, to)

		assert.True(t, infra.IsKind(err, infra.KindLockTimeout))
		assert.True(t, infra.IsContention(err))
	})

	t.Run("success: plain read uses the unlocked query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOccupiedDayQueries(ctrl)
		repo := repository.NewOccupiedDayRepository(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().ListOccupiedDays(ctx, gomock.Any(), gomock.Any()).Return([]sqlc.ListOccupiedDaysRow{}, nil)

		markers, err := repo.FindIntersecting(ctx, from, to)

		require.NoError(t, err)
		assert.Empty(t, markers)
	})
}

// =============================================================================
// Write Occupied Days Tests
// =============================================================================

func TestOccupiedDayRepository_InsertDays(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	days := calendar.DaysInRange(calendar.Date(2026, 10, 20), calendar.Date(2026, 10, 23))

	testCases := []struct {
		name       string
		days       []time.Time
		setupMock  func(*repositorymock.MockOccupiedDayQueries)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: every day inserted",
			days: days,
			setupMock: func(mock *repositorymock.MockOccupiedDayQueries) {
				mock.EXPECT().InsertOccupiedDays(ctx, gomock.Any(), sqlc.InsertOccupiedDaysParams{
					Days:          []pgtype.Date{pgDate(days[0]), pgDate(days[1]), pgDate(days[2])},
					ReservationID: owner,
				}).Return(int64(3), nil)
			},
		},
		{
			name:      "success: nothing to insert skips the query",
			days:      []time.Time{},
			setupMock: func(mock *repositorymock.MockOccupiedDayQueries) {},
		},
		{
			name: "error: a day is already taken",
			days: days,
			setupMock: func(mock *repositorymock.MockOccupiedDayQueries) {
				mock.EXPECT().InsertOccupiedDays(ctx, gomock.Any(), gomock.Any()).Return(int64(0), pgErr(infra.PgErrCodeUniqueViolation))
			},
			expectKind: infra.KindDuplicateKey,
		},
		{
			name: "error: unknown reservation",
			days: days,
			setupMock: func(mock *repositorymock.MockOccupiedDayQueries) {
				mock.EXPECT().InsertOccupiedDays(ctx, gomock.Any(), gomock.Any()).Return(int64(0), pgErr(infra.PgErrCodeForeignKeyViolation))
			},
			expectKind: infra.KindForeignKeyViolated,
		},
		{
			name: "error: fewer rows than requested",
			days: days,
			setupMock: func(mock *repositorymock.MockOccupiedDayQueries) {
				mock.EXPECT().InsertOccupiedDays(ctx, gomock.Any(), gomock.Any()).Return(int64(2), nil)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockOccupiedDayQueries(ctrl)
			repo := repository.NewOccupiedDayRepository(mockQueries, &mockDBTX{})
			tc.setupMock(mockQueries)

			err := repo.InsertDays(ctx, owner, tc.days)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOccupiedDayRepository_DeleteDays(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()
	days := []time.Time{calendar.Date(2026, 10, 20), calendar.Date(2026, 10, 21)}

	t.Run("success: reports how many markers went", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOccupiedDayQueries(ctrl)
		repo := repository.NewOccupiedDayRepository(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().DeleteOccupiedDays(ctx, gomock.Any(), sqlc.DeleteOccupiedDaysParams{
			ReservationID: owner,
			Days:          []pgtype.Date{pgDate(days[0]), pgDate(days[1])},
		}).Return(int64(1), nil)

		deleted, err := repo.DeleteDays(ctx, owner, days)

		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted)
	})

	t.Run("success: nothing to delete skips the query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repository.NewOccupiedDayRepository(repositorymock.NewMockOccupiedDayQueries(ctrl), &mockDBTX{})

		deleted, err := repo.DeleteDays(ctx, owner, nil)

		require.NoError(t, err)
		assert.Zero(t, deleted)
	})

	t.Run("error: database failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockOccupiedDayQueries(ctrl)
		repo := repository.NewOccupiedDayRepository(mockQueries, &mockDBTX{})

		mockQueries.EXPECT().DeleteOccupiedDays(ctx, gomock.Any(), gomock.Any()).Return(int64(0), errors.New("broken pipe"))

		_, err := repo.DeleteDays(ctx, owner, days)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
