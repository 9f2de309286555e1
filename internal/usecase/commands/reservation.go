package commands

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"campsite-reservation/internal/domain/reservation"
	"campsite-reservation/internal/pkg/calendar"
	"campsite-reservation/internal/pkg/errs"
	"campsite-reservation/internal/pkg/patch"
	"campsite-reservation/internal/usecase/queries"
	"campsite-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReservationInput struct {
	GuestName    string
	GuestEmail   string
	CheckinDate  string
	CheckoutDate string
}

// UpdateReservationInput holds the fields to change; nil keeps the stored value.
type UpdateReservationInput struct {
	GuestName    *string
	GuestEmail   *string
	CheckinDate  *string
	CheckoutDate *string
}

// AvailabilityInvalidator is told about every committed change to the occupied days.
type AvailabilityInvalidator interface {
	Invalidate(ctx context.Context)
}

type ReservationCommands interface {
	Create(ctx context.Context, input CreateReservationInput) (*queries.ReservationView, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateReservationInput) (*queries.ReservationView, error)
	// Cancel is idempotent: cancelling a cancelled reservation returns it unchanged.
	Cancel(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error)
}

type reservationCommandsImpl struct {
	uow         shared.UnitOfWork
	calendar    *shared.Calendar
	invalidator AvailabilityInvalidator
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	cal *shared.Calendar,
	invalidator AvailabilityInvalidator,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:         uow,
		calendar:    cal,
		invalidator: invalidator,
	}
}

func (c *reservationCommandsImpl) Create(ctx context.Context, input CreateReservationInput) (*queries.ReservationView, error) {
	guest, err := reservation.NewGuest(input.GuestName, input.GuestEmail)
	if err != nil {
		return nil, err
	}
	stay, err := c.calendar.Policy().Validate(input.CheckinDate, input.CheckoutDate, c.calendar.Today())
	if err != nil {
		return nil, err
	}

	view, err := shared.WithinResult(ctx, c.uow, func(ctx context.Context, tx shared.Tx) (*queries.ReservationView, error) {
		taken, err := tx.OccupiedDays().LockIntersecting(ctx, stay.Checkin(), stay.Checkout())
		if err != nil {
			return nil, err
		}
		if len(taken) > 0 {
			return nil, periodOccupied(taken)
		}

		now := c.calendar.Now()
		res := reservation.NewReservation(guest, stay, now)
		if err := tx.Reservations().Insert(ctx, res); err != nil {
			return nil, shared.TranslateWriteErr(err)
		}
		if err := tx.OccupiedDays().InsertDays(ctx, res.ID(), res.Days()); err != nil {
			return nil, shared.TranslateWriteErr(err)
		}
		if err := appendEvent(ctx, tx, shared.EventReservationCreated, res, now); err != nil {
			return nil, err
		}
		return queries.ToReservationView(res), nil
	})
	if err != nil {
		return nil, err
	}

	c.invalidate(ctx)
	return view, nil
}

func (c *reservationCommandsImpl) Update(ctx context.Context, id uuid.UUID, input UpdateReservationInput) (*queries.ReservationView, error) {
	changed := false
	view, err := shared.WithinResult(ctx, c.uow, func(ctx context.Context, tx shared.Tx) (*queries.ReservationView, error) {
		changed = false
		res, err := tx.Reservations().FindByIDForUpdate(ctx, id)
		if err != nil {
			return nil, shared.TranslateLookupErr(err)
		}
		if res.IsCancelled() {
			return nil, reservation.ErrReservationCancelled
		}

		name, email := res.Guest().Name(), res.Guest().Email()
		checkin, checkout := calendar.Format(res.Stay().Checkin()), calendar.Format(res.Stay().Checkout())

		guest, err := reservation.NewGuest(
			patch.Coalesce(input.GuestName, name),
			patch.Coalesce(input.GuestEmail, email),
		)
		if err != nil {
			return nil, err
		}
		stay, err := c.calendar.Policy().Validate(
			patch.Coalesce(input.CheckinDate, checkin),
			patch.Coalesce(input.CheckoutDate, checkout),
			c.calendar.Today(),
		)
		if err != nil {
			return nil, err
		}

		// nothing to write: keep the version and skip the event
		if !patch.Changed(input.GuestName, name) && !patch.Changed(input.GuestEmail, email) &&
			!patch.Changed(input.CheckinDate, checkin) && !patch.Changed(input.CheckoutDate, checkout) {
			return queries.ToReservationView(res), nil
		}
		changed = true

		markers, err := tx.OccupiedDays().LockIntersecting(ctx, stay.Checkin(), stay.Checkout())
		if err != nil {
			return nil, err
		}
		if others := shared.HeldByOthers(markers, id); len(others) > 0 {
			return nil, periodOccupied(others)
		}

		oldDays := res.Days()
		now := c.calendar.Now()
		if err := res.Reschedule(guest, stay, now); err != nil {
			return nil, err
		}
		newDays := res.Days()

		release := calendar.NewSet(newDays...).SubtractFrom(oldDays)
		claim := calendar.NewSet(oldDays...).SubtractFrom(newDays)

		deleted, err := tx.OccupiedDays().DeleteDays(ctx, id, release)
		if err != nil {
			return nil, err
		}
		if deleted != int64(len(release)) {
			return nil, errs.Wrapf(shared.ErrAvailabilityIndexCorrupted,
				"reservation %s released %d of %d days", id, deleted, len(release))
		}
		if err := tx.OccupiedDays().InsertDays(ctx, id, claim); err != nil {
			return nil, shared.TranslateWriteErr(err)
		}
		if err := tx.Reservations().Update(ctx, res); err != nil {
			return nil, shared.TranslateWriteErr(err)
		}
		if err := appendEvent(ctx, tx, shared.EventReservationUpdated, res, now); err != nil {
			return nil, err
		}
		return queries.ToReservationView(res), nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		c.invalidate(ctx)
	}
	return view, nil
}

func (c *reservationCommandsImpl) Cancel(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	changed := false
	view, err := shared.WithinResult(ctx, c.uow, func(ctx context.Context, tx shared.Tx) (*queries.ReservationView, error) {
		changed = false
		res, err := tx.Reservations().FindByIDForUpdate(ctx, id)
		if err != nil {
			return nil, shared.TranslateLookupErr(err)
		}

		held := res.Days()
		now := c.calendar.Now()
		if !res.Cancel(c.calendar.Today(), now) {
			return queries.ToReservationView(res), nil
		}

		if err := tx.Reservations().Update(ctx, res); err != nil {
			return nil, shared.TranslateWriteErr(err)
		}
		deleted, err := tx.OccupiedDays().DeleteDays(ctx, id, held)
		if err != nil {
			return nil, err
		}
		if deleted != int64(len(held)) {
			return nil, errs.Wrapf(shared.ErrAvailabilityIndexCorrupted,
				"reservation %s released %d of %d days", id, deleted, len(held))
		}
		if err := appendEvent(ctx, tx, shared.EventReservationCancelled, res, now); err != nil {
			return nil, err
		}
		changed = true
		return queries.ToReservationView(res), nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		c.invalidate(ctx)
	}
	return view, nil
}

func (c *reservationCommandsImpl) invalidate(ctx context.Context) {
	if c.invalidator != nil {
		c.invalidator.Invalidate(ctx)
	}
}

func periodOccupied(markers []shared.OccupiedDay) error {
	days := make([]string, len(markers))
	for i, m := range markers {
		days[i] = calendar.Format(m.Day)
	}
	return errs.Wrapf(shared.ErrPeriodOccupied, "occupied days: %s", strings.Join(days, ", "))
}

type reservationEventPayload struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	Event         string    `json:"event"`
	GuestEmail    string    `json:"guest_email"`
	CheckinDate   string    `json:"checkin_date"`
	CheckoutDate  string    `json:"checkout_date"`
	Status        string    `json:"status"`
	Version       int32     `json:"version"`
	OccurredAt    time.Time `json:"occurred_at"`
}

func appendEvent(ctx context.Context, tx shared.Tx, kind shared.EventKind, res *reservation.Reservation, now time.Time) error {
	payload, err := json.Marshal(reservationEventPayload{
		ReservationID: res.ID(),
		Event:         string(kind),
		GuestEmail:    res.Guest().Email(),
		CheckinDate:   calendar.Format(res.Stay().Checkin()),
		CheckoutDate:  calendar.Format(res.Stay().Checkout()),
		Status:        res.Status().String(),
		Version:       res.Version(),
		OccurredAt:    now,
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode reservation event")
	}
	return tx.Events().Append(ctx, shared.ReservationEvent{
		ID:        uuid.New(),
		Kind:      kind,
		Topic:     string(kind),
		Payload:   payload,
		RunAt:     now,
		CreatedAt: now,
	})
}
