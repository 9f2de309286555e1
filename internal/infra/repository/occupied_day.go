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
)

type OccupiedDayQueries interface {
	ListOccupiedDays(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOccupiedDaysParams) ([]sqlc.ListOccupiedDaysRow, error)
	LockOccupiedDays(ctx context.Context, db sqlc.DBTX, arg sqlc.LockOccupiedDaysParams) ([]sqlc.LockOccupiedDaysRow, error)
	InsertOccupiedDays(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertOccupiedDaysParams) (int64, error)
	DeleteOccupiedDays(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteOccupiedDaysParams) (int64, error)
}

type OccupiedDayRepository struct {
	queries OccupiedDayQueries
	db      sqlc.DBTX
}

func NewOccupiedDayRepository(queries OccupiedDayQueries, db sqlc.DBTX) *OccupiedDayRepository {
	return &OccupiedDayRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OccupiedDayRepository) FindIntersecting(ctx context.Context, from, to time.Time) ([]shared.OccupiedDay, error) {
	rows, err := r.queries.ListOccupiedDays(ctx, r.db, sqlc.ListOccupiedDaysParams{
		FromDay: pgconv.DateToPgtype(from),
		ToDay:   pgconv.DateToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list occupied days", err)
	}
	return converter.OccupiedDaysFromListRows(rows), nil
}

func (r *OccupiedDayRepository) LockIntersecting(ctx context.Context, from, to time.Time) ([]shared.OccupiedDay, error) {
	rows, err := r.queries.LockOccupiedDays(ctx, r.db, sqlc.LockOccupiedDaysParams{
		FromDay: pgconv.DateToPgtype(from),
		ToDay:   pgconv.DateToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock occupied days", err)
	}
	return converter.OccupiedDaysFromLockRows(rows), nil
}

func (r *OccupiedDayRepository) InsertDays(ctx context.Context, reservationID uuid.UUID, days []time.Time) error {
	if len(days) == 0 {
		return nil
	}
	inserted, err := r.queries.InsertOccupiedDays(ctx, r.db, sqlc.InsertOccupiedDaysParams{
		Days:          pgconv.DatesToPgtype(days),
		ReservationID: reservationID,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to insert occupied days", err)
	}
	if inserted != int64(len(days)) {
		return infra.NewRepoErr(infra.KindDBFailure, "inserted occupied day count does not match request")
	}
	return nil
}

func (r *OccupiedDayRepository) DeleteDays(ctx context.Context, reservationID uuid.UUID, days []time.Time) (int64, error) {
	if len(days) == 0 {
		return 0, nil
	}
	deleted, err := r.queries.DeleteOccupiedDays(ctx, r.db, sqlc.DeleteOccupiedDaysParams{
		ReservationID: reservationID,
		Days:          pgconv.DatesToPgtype(days),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete occupied days", err)
	}
	return deleted, nil
}
