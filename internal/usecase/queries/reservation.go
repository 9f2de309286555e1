package queries

import (
	"context"
	"time"

	"campsite-reservation/internal/domain/reservation"
	"campsite-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID            uuid.UUID  `json:"id"`
	GuestName     string     `json:"guest_name"`
	GuestEmail    string     `json:"guest_email"`
	CheckinDate   time.Time  `json:"checkin_date"`
	CheckoutDate  time.Time  `json:"checkout_date"`
	Status        string     `json:"status"`
	Active        bool       `json:"active"`
	CancelledDate *time.Time `json:"cancelled_date,omitempty"`
	Version       int32      `json:"version"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func ToReservationView(r *reservation.Reservation) *ReservationView {
	view := &ReservationView{
		ID:           r.ID(),
		GuestName:    r.Guest().Name(),
		GuestEmail:   r.Guest().Email(),
		CheckinDate:  r.Stay().Checkin(),
		CheckoutDate: r.Stay().Checkout(),
		Status:       r.Status().String(),
		Active:       r.IsActive(),
		Version:      r.Version(),
		CreatedAt:    r.CreatedAt(),
		UpdatedAt:    r.UpdatedAt(),
	}
	if day, ok := r.CancelledOn(); ok {
		view.CancelledDate = &day
	}
	return view
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
}

type reservationQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewReservationQueries(uow shared.UnitOfWork) ReservationQueries {
	return &reservationQueriesImpl{uow: uow}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	return shared.ReadResult(ctx, q.uow, func(ctx context.Context, tx shared.Tx) (*ReservationView, error) {
		res, err := tx.Reservations().FindByID(ctx, id)
		if err != nil {
			return nil, shared.TranslateLookupErr(err)
		}
		return ToReservationView(res), nil
	})
}
