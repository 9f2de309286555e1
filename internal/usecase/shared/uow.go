package shared

import (
	"context"
	"time"

	"campsite-reservation/internal/domain/reservation"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: serializable transaction for write operations with retry logic.
	// fn may run more than once and must not keep side effects outside tx.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: read-only snapshot, no locks taken
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Reservations() ReservationRepository
	OccupiedDays() OccupiedDayRepository
	Events() EventRepository
}

type ReservationRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	// FindByIDForUpdate locks the row until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	Insert(ctx context.Context, res *reservation.Reservation) error
	// Update persists res only if the stored version is res.Version()-1.
	Update(ctx context.Context, res *reservation.Reservation) error
}

// OccupiedDayRepository is the availability index: one marker per claimed day.
type OccupiedDayRepository interface {
	// FindIntersecting returns markers with from <= day < to.
	FindIntersecting(ctx context.Context, from, to time.Time) ([]OccupiedDay, error)
	// LockIntersecting is FindIntersecting holding row locks for the transaction.
	LockIntersecting(ctx context.Context, from, to time.Time) ([]OccupiedDay, error)
	InsertDays(ctx context.Context, reservationID uuid.UUID, days []time.Time) error
	// DeleteDays removes the markers of days owned by reservationID and reports how many went.
	DeleteDays(ctx context.Context, reservationID uuid.UUID, days []time.Time) (int64, error)
}

type EventRepository interface {
	Append(ctx context.Context, event ReservationEvent) error
	// ClaimDue locks up to limit pending events due at now; concurrent relays skip them.
	ClaimDue(ctx context.Context, now time.Time, limit int) ([]ReservationEvent, error)
	MarkSent(ctx context.Context, id uuid.UUID, at time.Time) error
	MarkFailed(ctx context.Context, id uuid.UUID, lastError string, nextRunAt time.Time, dead bool) error
}
