package shared

import (
	"time"

	"github.com/google/uuid"
)

type OccupiedDay struct {
	Day           time.Time
	ReservationID uuid.UUID
}

type EventKind string

const (
	EventReservationCreated   EventKind = "reservation.created"
	EventReservationUpdated   EventKind = "reservation.updated"
	EventReservationCancelled EventKind = "reservation.cancelled"
)

type EventStatus string

const (
	EventStatusPending EventStatus = "pending"
	EventStatusSent    EventStatus = "sent"
	EventStatusDead    EventStatus = "dead"
)

// ReservationEvent is an outbox row written in the same transaction as the change it describes.
type ReservationEvent struct {
	ID        uuid.UUID
	Kind      EventKind
	Topic     string
	Payload   []byte
	RunAt     time.Time
	Attempts  int32
	Status    EventStatus
	LastError string
	CreatedAt time.Time
}

// HeldByOthers keeps the markers not owned by id.
func HeldByOthers(days []OccupiedDay, id uuid.UUID) []OccupiedDay {
	out := make([]OccupiedDay, 0, len(days))
	for _, d := range days {
		if d.ReservationID != id {
			out = append(out, d)
		}
	}
	return out
}
