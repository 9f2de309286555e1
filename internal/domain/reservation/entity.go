package reservation

import (
	"time"

	"campsite-reservation/internal/pkg/calendar"

	"github.com/google/uuid"
)

// Reservation is the aggregate guarding one stay at the campsite.
// Once cancelled it never changes again.
type Reservation struct {
	id          uuid.UUID
	guest       Guest
	stay        Stay
	status      Status
	cancelledOn time.Time
	version     int32
	createdAt   time.Time
	updatedAt   time.Time
}

func NewReservation(guest Guest, stay Stay, now time.Time) *Reservation {
	return &Reservation{
		id:        uuid.New(),
		guest:     guest,
		stay:      stay,
		status:    StatusActive,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}
}

func ReconstructReservation(
	id uuid.UUID,
	guest Guest,
	stay Stay,
	status Status,
	cancelledOn *time.Time,
	version int32,
	createdAt, updatedAt time.Time,
) (*Reservation, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if (status == StatusCancelled) != (cancelledOn != nil) {
		return nil, ErrInvalidStatus
	}

	r := &Reservation{
		id:        id,
		guest:     guest,
		stay:      stay,
		status:    status,
		version:   version,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
	if cancelledOn != nil {
		r.cancelledOn = calendar.Truncate(*cancelledOn)
	}
	return r, nil
}

// Reschedule replaces the guest details and the stay of an active reservation.
func (r *Reservation) Reschedule(guest Guest, stay Stay, now time.Time) error {
	if r.IsCancelled() {
		return ErrReservationCancelled
	}
	r.guest = guest
	r.stay = stay
	r.touch(now)
	return nil
}

// Cancel moves the reservation to its terminal state.
// It reports false, changing nothing, when the reservation was already cancelled.
func (r *Reservation) Cancel(today, now time.Time) bool {
	if r.IsCancelled() {
		return false
	}
	r.status = StatusCancelled
	r.cancelledOn = calendar.Truncate(today)
	r.touch(now)
	return true
}

func (r *Reservation) touch(now time.Time) {
	r.version++
	r.updatedAt = now
}

func (r *Reservation) IsActive() bool {
	return r.status == StatusActive
}

func (r *Reservation) IsCancelled() bool {
	return r.status == StatusCancelled
}

// CancelledOn is only set for cancelled reservations.
func (r *Reservation) CancelledOn() (time.Time, bool) {
	if !r.IsCancelled() {
		return time.Time{}, false
	}
	return r.cancelledOn, true
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) Guest() Guest         { return r.guest }
func (r *Reservation) Stay() Stay           { return r.stay }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) Version() int32       { return r.version }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }

// Days are the occupied days the reservation holds while active.
func (r *Reservation) Days() []time.Time {
	if !r.IsActive() {
		return []time.Time{}
	}
	return r.stay.Days()
}
