//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"campsite-reservation/internal/domain/reservation"
	"campsite-reservation/internal/infra"
	"campsite-reservation/internal/infra/repository"
	sqlc "campsite-reservation/internal/infra/sqlc/generated"
	"campsite-reservation/internal/pkg/calendar"
	"campsite-reservation/tests/common/builder"
	repositorymock "campsite-reservation/tests/mock/repository"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Find Reservation Tests
// =============================================================================

func TestReservationRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	b := builder.NewReservationBuilder()

	testCases := []struct {
		name       string
		forUpdate  bool
		setupMock  func(*repositorymock.MockReservationQueries, sqlc.DBTX)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: row is mapped to the aggregate",
			setupMock: func(mock *repositorymock.MockReservationQueries, db sqlc.DBTX) {
				mock.EXPECT().GetReservation(ctx, db, b.ID).Return(b.BuildInfra(), nil)
			},
		},
		{
			name:      "success: locking read",
			forUpdate: true,
			setupMock: func(mock *repositorymock.MockReservationQueries, db sqlc.DBTX) {
				mock.EXPECT().GetReservationForUpdate(ctx, db, b.ID).Return(b.BuildInfra(), nil)
			},
		},
		{
			name: "error: no rows",
			setupMock: func(mock *repositorymock.MockReservationQueries, db sqlc.DBTX) {
				mock.EXPECT().GetReservation(ctx, db, b.ID).Return(sqlc.Reservations{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name:      "error: lock wait timed out",
			forUpdate: true,
			setupMock: func(mock *repositorymock.MockReservationQueries, db sqlc.DBTX) {
				mock.EXPECT().GetReservationForUpdate(ctx, db, b.ID).Return(sqlc.Reservations{}, pgErr(infra.PgErrCodeLockNotAvailable))
			},
			expectKind: infra.KindLockTimeout,
		},
		{
			name: "error: connection failure",
			setupMock: func(mock *repositorymock.MockReservationQueries, db sqlc.DBTX) {
				mock.EXPECT().GetReservation(ctx, db, b.ID).Return(sqlc.Reservations{}, errors.New("connection reset"))
			},
			expectKind: infra.KindDBFailure,
		},
		{
			name: "error: corrupted row",
			setupMock: func(mock *repositorymock.MockReservationQueries, db sqlc.DBTX) {
				row := b.BuildInfra()
				row.Status = "archived"
				mock.EXPECT().GetReservation(ctx, db, b.ID).Return(row, nil)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReservationQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries, mockDB)
			tc.setupMock(mockQueries, mockDB)

			var (
				res *reservation.Reservation
				err error
			)
			if tc.forUpdate {
				res, err = repo.FindByIDForUpdate(ctx, b.ID)
			} else {
				res, err = repo.FindByID(ctx, b.ID)
			}

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
				assert.Nil(t, res)
				return
			}
			require.NoError(t, err)
			expected, err := b.BuildDomain()
			require.NoError(t, err)
			if diff := cmp.Diff(expected, res, cmp.AllowUnexported(reservation.Reservation{}, reservation.Guest{}, reservation.Stay{})); diff != "" {
				t.Errorf("reservation mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// =============================================================================
// Insert Reservation Tests
// =============================================================================

func TestReservationRepository_Insert(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockReservationQueries, *reservation.Reservation, sqlc.DBTX)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: params carry the stay as dates",
			setupMock: func(mock *repositorymock.MockReservationQueries, res *reservation.Reservation, db sqlc.DBTX) {
				mock.EXPECT().CreateReservation(ctx, db, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateReservationParams) error {
						assert.Equal(t, res.ID(), arg.ID)
						assert.Equal(t, "active", arg.Status)
						assert.True(t, arg.CheckinDate.Valid)
						assert.Equal(t, calendar.Format(res.Stay().Checkin()), calendar.Format(arg.CheckinDate.Time))
						assert.False(t, arg.CancelledDate.Valid)
						return nil
					})
			},
		},
		{
			name: "error: duplicate id",
			setupMock: func(mock *repositorymock.MockReservationQueries, res *reservation.Reservation, db sqlc.DBTX) {
				mock.EXPECT().CreateReservation(ctx, db, gomock.Any()).Return(pgErr(infra.PgErrCodeUniqueViolation))
			},
			expectKind: infra.KindDuplicateKey,
		},
		{
			name: "error: serialization failure",
			setupMock: func(mock *repositorymock.MockReservationQueries, res *reservation.Reservation, db sqlc.DBTX) {
				mock.EXPECT().CreateReservation(ctx, db, gomock.Any()).Return(pgErr(infra.PgErrCodeSerializationFailure))
			},
			expectKind: infra.KindSerialization,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReservationQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries, mockDB)

			res, err := builder.NewReservationBuilder().BuildDomain()
			require.NoError(t, err)
			tc.setupMock(mockQueries, res, mockDB)

			err = repo.Insert(ctx, res)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// =============================================================================
// Update Reservation Tests
// =============================================================================

func TestReservationRepository_Update(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		setupMock  func(*repositorymock.MockReservationQueries, sqlc.DBTX)
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: one row updated",
			setupMock: func(mock *repositorymock.MockReservationQueries, db sqlc.DBTX) {
				mock.EXPECT().UpdateReservation(ctx, db, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateReservationParams) (int64, error) {
						assert.Equal(t, "cancelled", arg.Status)
						assert.True(t, arg.CancelledDate.Valid)
						assert.Equal(t, int32(2), arg.Version)
						return 1, nil
					})
			},
		},
		{
			name: "error: stored version moved on",
			setupMock: func(mock *repositorymock.MockReservationQueries, db sqlc.DBTX) {
				mock.EXPECT().UpdateReservation(ctx, db, gomock.Any()).Return(int64(0), nil)
			},
			expectKind: infra.KindStaleVersion,
		},
		{
			name: "error: deadlock",
			setupMock: func(mock *repositorymock.MockReservationQueries, db sqlc.DBTX) {
				mock.EXPECT().UpdateReservation(ctx, db, gomock.Any()).Return(int64(0), pgErr(infra.PgErrCodeDeadlockDetected))
			},
			expectKind: infra.KindSerialization,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockReservationQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewReservationRepository(mockQueries, mockDB)

			res, err := builder.NewReservationBuilder().BuildDomain()
			require.NoError(t, err)
			require.True(t, res.Cancel(calendar.Date(2026, 10, 15), res.CreatedAt()))
			tc.setupMock(mockQueries, mockDB)

			err = repo.Update(ctx, res)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
