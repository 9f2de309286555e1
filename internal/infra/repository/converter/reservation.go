package converter

import (
	"time"

	"campsite-reservation/internal/domain/reservation"
	sqlc "campsite-reservation/internal/infra/sqlc/generated"
	"campsite-reservation/internal/pkg/pgconv"
	"campsite-reservation/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

func ReservationToCreateParams(res *reservation.Reservation) sqlc.CreateReservationParams {
	stay := res.Stay()
	return sqlc.CreateReservationParams{
		ID:            res.ID(),
		GuestName:     res.Guest().Name(),
		GuestEmail:    res.Guest().Email(),
		CheckinDate:   pgconv.DateToPgtype(stay.Checkin()),
		CheckoutDate:  pgconv.DateToPgtype(stay.Checkout()),
		Status:        res.Status().String(),
		CancelledDate: cancelledDate(res),
		Version:       res.Version(),
		CreatedAt:     pgconv.TimeToPgtype(res.CreatedAt()),
		UpdatedAt:     pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func ReservationToUpdateParams(res *reservation.Reservation) sqlc.UpdateReservationParams {
	stay := res.Stay()
	return sqlc.UpdateReservationParams{
		ID:            res.ID(),
		GuestName:     res.Guest().Name(),
		GuestEmail:    res.Guest().Email(),
		CheckinDate:   pgconv.DateToPgtype(stay.Checkin()),
		CheckoutDate:  pgconv.DateToPgtype(stay.Checkout()),
		Status:        res.Status().String(),
		CancelledDate: cancelledDate(res),
		Version:       res.Version(),
		UpdatedAt:     pgconv.TimeToPgtype(res.UpdatedAt()),
	}
}

func ReservationFromRow(row sqlc.Reservations) (*reservation.Reservation, error) {
	return reservation.ReconstructReservation(
		row.ID,
		reservation.RestoreGuest(row.GuestName, row.GuestEmail),
		reservation.RestoreStay(pgconv.DateFromPgtype(row.CheckinDate), pgconv.DateFromPgtype(row.CheckoutDate)),
		reservation.Status(row.Status),
		pgconv.DatePtrFromPgtype(row.CancelledDate),
		row.Version,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func OccupiedDaysFromListRows(rows []sqlc.ListOccupiedDaysRow) []shared.OccupiedDay {
	out := make([]shared.OccupiedDay, len(rows))
	for i, r := range rows {
		out[i] = shared.OccupiedDay{Day: pgconv.DateFromPgtype(r.Day), ReservationID: r.ReservationID}
	}
	return out
}

func OccupiedDaysFromLockRows(rows []sqlc.LockOccupiedDaysRow) []shared.OccupiedDay {
	out := make([]shared.OccupiedDay, len(rows))
	for i, r := range rows {
		out[i] = shared.OccupiedDay{Day: pgconv.DateFromPgtype(r.Day), ReservationID: r.ReservationID}
	}
	return out
}

func EventFromRow(row sqlc.ReservationEvents) shared.ReservationEvent {
	ev := shared.ReservationEvent{
		ID:        row.ID,
		Kind:      shared.EventKind(row.Kind),
		Topic:     row.Topic,
		Payload:   row.Payload,
		RunAt:     pgconv.TimeFromPgtype(row.RunAt),
		Attempts:  row.Attempts,
		Status:    shared.EventStatus(row.Status),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}
	if msg := pgconv.StringPtrFromPgtype(row.LastError); msg != nil {
		ev.LastError = *msg
	}
	return ev
}

func cancelledDate(res *reservation.Reservation) pgtype.Date {
	var on *time.Time
	if day, ok := res.CancelledOn(); ok {
		on = &day
	}
	return pgconv.DatePtrToPgtype(on)
}
