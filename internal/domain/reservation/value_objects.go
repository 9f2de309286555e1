package reservation

import (
	"net/mail"
	"strings"
	"time"

	"campsite-reservation/internal/pkg/calendar"
)

const (
	maxGuestNameLength  = 200
	maxGuestEmailLength = 254
)

type Guest struct {
	name  string
	email string
}

func NewGuest(name, email string) (Guest, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxGuestNameLength {
		return Guest{}, newValidationError(KindGuestName, "Name must not be empty")
	}

	email = strings.TrimSpace(email)
	if email == "" || len(email) > maxGuestEmailLength {
		return Guest{}, newValidationError(KindGuestEmail, "Email must be a well-formed email address")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return Guest{}, newValidationError(KindGuestEmail, "Email must be a well-formed email address")
	}

	return Guest{name: name, email: email}, nil
}

func (g Guest) Name() string  { return g.name }
func (g Guest) Email() string { return g.email }

// Stay is the half-open interval [checkin, checkout) of nights spent at the campsite.
type Stay struct {
	checkin  time.Time
	checkout time.Time
}

func NewStay(checkin, checkout time.Time) (Stay, error) {
	checkin, checkout = calendar.Truncate(checkin), calendar.Truncate(checkout)
	if !checkin.Before(checkout) {
		return Stay{}, newValidationError(KindCheckinNotBeforeCheckout, msgCheckinNotBeforeCheckout)
	}
	return Stay{checkin: checkin, checkout: checkout}, nil
}

func (s Stay) Checkin() time.Time  { return s.checkin }
func (s Stay) Checkout() time.Time { return s.checkout }

func (s Stay) Nights() int {
	return calendar.Nights(s.checkin, s.checkout)
}

// Days lists the occupied days; the checkout day is free for the next guest.
func (s Stay) Days() []time.Time {
	return calendar.DaysInRange(s.checkin, s.checkout)
}

// RestoreGuest rebuilds a Guest from persisted data without re-validating it.
func RestoreGuest(name, email string) Guest {
	return Guest{name: name, email: email}
}

// RestoreStay rebuilds a Stay from persisted data without re-validating it.
func RestoreStay(checkin, checkout time.Time) Stay {
	return Stay{checkin: calendar.Truncate(checkin), checkout: calendar.Truncate(checkout)}
}
