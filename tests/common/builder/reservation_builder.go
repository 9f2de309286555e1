//go:build unit || e2e

package builder

import (
	"time"

	domres "campsite-reservation/internal/domain/reservation"
	reqdto "campsite-reservation/internal/handler/dto/request"
	sqlc "campsite-reservation/internal/infra/sqlc/generated"
	"campsite-reservation/internal/pkg/calendar"
	"campsite-reservation/internal/pkg/ptr"
	"campsite-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationBuilder struct {
	ID           uuid.UUID
	GuestName    string
	GuestEmail   string
	CheckinDate  time.Time
	CheckoutDate time.Time
	Status       domres.Status
	CancelledOn  *time.Time
	Version      int32
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewReservationBuilder defaults to a two night stay starting tomorrow (UTC).
func NewReservationBuilder() *ReservationBuilder {
	now := time.Now().UTC()
	checkin := calendar.AddDays(calendar.Truncate(now), 1)
	return &ReservationBuilder{
		ID:           uuid.New(),
		GuestName:    "Jane Camper",
		GuestEmail:   "jane@example.com",
		CheckinDate:  checkin,
		CheckoutDate: calendar.AddDays(checkin, 2),
		Status:       domres.StatusActive,
		Version:      1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *ReservationBuilder) BuildDomain() (*domres.Reservation, error) {
	return domres.ReconstructReservation(
		b.ID,
		domres.RestoreGuest(b.GuestName, b.GuestEmail),
		domres.RestoreStay(b.CheckinDate, b.CheckoutDate),
		b.Status,
		b.CancelledOn,
		b.Version,
		b.CreatedAt,
		b.UpdatedAt,
	)
}

func (b *ReservationBuilder) BuildInfra() sqlc.Reservations {
	row := sqlc.Reservations{
		ID:           b.ID,
		GuestName:    b.GuestName,
		GuestEmail:   b.GuestEmail,
		CheckinDate:  pgtype.Date{Time: b.CheckinDate, Valid: true},
		CheckoutDate: pgtype.Date{Time: b.CheckoutDate, Valid: true},
		Status:       b.Status.String(),
		Version:      b.Version,
		CreatedAt:    pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:    pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
	if b.CancelledOn != nil {
		row.CancelledDate = pgtype.Date{Time: *b.CancelledOn, Valid: true}
	}
	return row
}

func (b *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		GuestName:    b.GuestName,
		GuestEmail:   b.GuestEmail,
		CheckinDate:  calendar.Format(b.CheckinDate),
		CheckoutDate: calendar.Format(b.CheckoutDate),
	}
}

func (b *ReservationBuilder) BuildUpdateRequestDTO() reqdto.UpdateReservationRequest {
	return reqdto.UpdateReservationRequest{
		CheckinDate:  ptr.Of(calendar.Format(b.CheckinDate)),
		CheckoutDate: ptr.Of(calendar.Format(b.CheckoutDate)),
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:            b.ID,
		GuestName:     b.GuestName,
		GuestEmail:    b.GuestEmail,
		CheckinDate:   b.CheckinDate,
		CheckoutDate:  b.CheckoutDate,
		Status:        b.Status.String(),
		Active:        b.Status == domres.StatusActive,
		CancelledDate: b.CancelledOn,
		Version:       b.Version,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// Fluent builder methods
func (b *ReservationBuilder) WithID(id uuid.UUID) *ReservationBuilder {
	b.ID = id
	return b
}

func (b *ReservationBuilder) WithGuest(name, email string) *ReservationBuilder {
	b.GuestName = name
	b.GuestEmail = email
	return b
}

func (b *ReservationBuilder) WithStay(checkin, checkout time.Time) *ReservationBuilder {
	b.CheckinDate = calendar.Truncate(checkin)
	b.CheckoutDate = calendar.Truncate(checkout)
	return b
}

func (b *ReservationBuilder) WithVersion(version int32) *ReservationBuilder {
	b.Version = version
	return b
}

func (b *ReservationBuilder) AsCancelled(on time.Time) *ReservationBuilder {
	day := calendar.Truncate(on)
	b.Status = domres.StatusCancelled
	b.CancelledOn = &day
	return b
}
