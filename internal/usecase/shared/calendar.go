package shared

import (
	"time"

	"campsite-reservation/internal/domain/reservation"
	"campsite-reservation/internal/pkg/calendar"
	"campsite-reservation/internal/pkg/clock"
	"campsite-reservation/internal/pkg/config"
)

// Calendar answers "what day is it at the campsite" and carries the booking policy.
type Calendar struct {
	clock    clock.Clock
	location *time.Location
	policy   reservation.BookingPolicy
}

func NewCalendar(c clock.Clock, cfg config.Config) (*Calendar, error) {
	loc, err := cfg.Reservation.Location()
	if err != nil {
		return nil, err
	}
	policy, err := reservation.NewBookingPolicy(
		cfg.Reservation.MinLength,
		cfg.Reservation.MaxLength,
		cfg.Reservation.MinStartOffsetDays,
		cfg.Reservation.MaxStartOffsetDays,
	)
	if err != nil {
		return nil, err
	}
	return &Calendar{clock: c, location: loc, policy: policy}, nil
}

func (c *Calendar) Now() time.Time {
	return c.clock.Now()
}

func (c *Calendar) Today() time.Time {
	return calendar.Today(c.clock, c.location)
}

func (c *Calendar) Policy() reservation.BookingPolicy {
	return c.policy
}
