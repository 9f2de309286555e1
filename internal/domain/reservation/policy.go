package reservation

import (
	"fmt"
	"strings"
	"time"

	"campsite-reservation/internal/pkg/calendar"
	"campsite-reservation/internal/pkg/errs"
)

// BookingPolicy holds the rules every requested stay must satisfy.
type BookingPolicy struct {
	minLength          int
	maxLength          int
	minStartOffsetDays int
	maxStartOffsetDays int
}

func NewBookingPolicy(minLength, maxLength, minStartOffsetDays, maxStartOffsetDays int) (BookingPolicy, error) {
	if minLength < 1 || maxLength < minLength {
		return BookingPolicy{}, errs.Wrapf(ErrInvalidPolicy, "length bounds [%d, %d]", minLength, maxLength)
	}
	if minStartOffsetDays < 0 || maxStartOffsetDays < minStartOffsetDays {
		return BookingPolicy{}, errs.Wrapf(ErrInvalidPolicy, "start offset bounds [%d, %d]", minStartOffsetDays, maxStartOffsetDays)
	}
	return BookingPolicy{
		minLength:          minLength,
		maxLength:          maxLength,
		minStartOffsetDays: minStartOffsetDays,
		maxStartOffsetDays: maxStartOffsetDays,
	}, nil
}

// Horizon is the inclusive range of days on which a stay may begin.
func (p BookingPolicy) Horizon(today time.Time) (earliest, latest time.Time) {
	today = calendar.Truncate(today)
	return calendar.AddDays(today, p.minStartOffsetDays), calendar.AddDays(today, p.maxStartOffsetDays)
}

// Validate checks the raw yyyy-MM-dd dates in a fixed order and reports the
// first broken rule as a *ValidationError.
func (p BookingPolicy) Validate(checkinRaw, checkoutRaw string, today time.Time) (Stay, error) {
	checkinRaw, checkoutRaw = strings.TrimSpace(checkinRaw), strings.TrimSpace(checkoutRaw)
	today = calendar.Truncate(today)

	checkin, checkinErr := parseOptional(checkinRaw)
	checkout, checkoutErr := parseOptional(checkoutRaw)
	if checkinErr != nil || checkoutErr != nil {
		return Stay{}, newValidationError(KindInvalidFormat, msgInvalidFormat)
	}

	if checkinRaw == "" || checkoutRaw == "" {
		return Stay{}, newValidationError(KindMissingDates, msgMissingDates)
	}

	if checkin.Before(today) || checkout.Before(today) {
		return Stay{}, newValidationError(KindPastDates, msgPastDates)
	}

	stay, err := NewStay(checkin, checkout)
	if err != nil {
		return Stay{}, err
	}

	if n := stay.Nights(); n < p.minLength || n > p.maxLength {
		return Stay{}, newValidationError(KindInvalidLength,
			fmt.Sprintf("The reservation at the campsite must be between %d and %d days", p.minLength, p.maxLength))
	}

	earliest, latest := p.Horizon(today)
	if checkin.Before(earliest) || checkin.After(latest) {
		return Stay{}, newValidationError(KindLeadTime,
			fmt.Sprintf("The campsite can be reserved minimum %d day(s) ahead of arrival and up to %d days in advance",
				p.minStartOffsetDays, p.maxStartOffsetDays))
	}

	return stay, nil
}

func parseOptional(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	return calendar.Parse(raw)
}
