//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"campsite-reservation/internal/domain/reservation"
	"campsite-reservation/internal/pkg/calendar"
	"campsite-reservation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = calendar.Date(2026, 10, 15)

func defaultPolicy(t *testing.T) reservation.BookingPolicy {
	t.Helper()
	p, err := reservation.NewBookingPolicy(1, 3, 1, 30)
	require.NoError(t, err)
	return p
}

func TestBookingPolicy_Validate(t *testing.T) {
	policy := defaultPolicy(t)

	testCases := []struct {
		name     string
		checkin  string
		checkout string
		kind     reservation.ValidationKind
		message  string
	}{
		// success cases
		{name: "success: one night starting tomorrow", checkin: "2026-10-16", checkout: "2026-10-17"},
		{name: "success: maximum length", checkin: "2026-10-16", checkout: "2026-10-19"},
		{name: "success: latest allowed arrival", checkin: "2026-11-14", checkout: "2026-11-15"},
		{name: "success: surrounding whitespace is ignored", checkin: " 2026-10-20 ", checkout: "2026-10-21\t"},

		// format is checked first, even when the other date is missing
		{
			name: "error: malformed check-in", checkin: "2026-13-01", checkout: "2026-10-20",
			kind: reservation.KindInvalidFormat, message: "Both check-in and check-out dates must have valid format: yyyy-MM-dd",
		},
		{
			name: "error: malformed check-out with missing check-in", checkin: "", checkout: "20-10-2026",
			kind: reservation.KindInvalidFormat,
		},
		{
			name: "error: missing check-in", checkin: "", checkout: "2026-10-20",
			kind: reservation.KindMissingDates, message: "Both check-in and check-out dates must be provided.",
		},
		{
			name: "error: missing check-out", checkin: "2026-10-20", checkout: "  ",
			kind: reservation.KindMissingDates,
		},
		{
			name: "error: check-in in the past", checkin: "2026-10-14", checkout: "2026-10-16",
			kind: reservation.KindPastDates, message: "Both check-in and check-out dates must be in the future.",
		},
		{
			name: "error: past dates win over inverted order", checkin: "2026-10-20", checkout: "2026-10-10",
			kind: reservation.KindPastDates,
		},
		{
			name: "error: same day check-in and check-out", checkin: "2026-10-20", checkout: "2026-10-20",
			kind: reservation.KindCheckinNotBeforeCheckout, message: "The check-in date must be before the check-out date",
		},
		{
			name: "error: check-out before check-in", checkin: "2026-10-21", checkout: "2026-10-20",
			kind: reservation.KindCheckinNotBeforeCheckout,
		},
		{
			name: "error: four nights", checkin: "2026-10-16", checkout: "2026-10-20",
			kind: reservation.KindInvalidLength, message: "The reservation at the campsite must be between 1 and 3 days",
		},
		{
			name: "error: arrival today", checkin: "2026-10-15", checkout: "2026-10-16",
			kind:    reservation.KindLeadTime,
			message: "The campsite can be reserved minimum 1 day(s) ahead of arrival and up to 30 days in advance",
		},
		{
			name: "error: arrival one day past the horizon", checkin: "2026-11-15", checkout: "2026-11-16",
			kind: reservation.KindLeadTime,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stay, err := policy.Validate(tc.checkin, tc.checkout, today)

			if tc.kind == "" {
				require.NoError(t, err)
				assert.Equal(t, calendar.Nights(stay.Checkin(), stay.Checkout()), stay.Nights())
				assert.Len(t, stay.Days(), stay.Nights())
				return
			}

			require.Error(t, err)
			assert.True(t, errs.Is(err, errs.ErrValidation), "validation errors carry the validation kind")
			ve, ok := reservation.AsValidationError(err)
			require.True(t, ok)
			assert.Equal(t, tc.kind, ve.Kind)
			if tc.message != "" {
				assert.Equal(t, tc.message, ve.Message)
			}
		})
	}
}

func TestBookingPolicy_ValidateUsesCalendarDayOfToday(t *testing.T) {
	policy := defaultPolicy(t)

	late := time.Date(2026, 10, 15, 23, 59, 0, 0, time.UTC)
	_, err := policy.Validate("2026-10-16", "2026-10-17", late)
	assert.NoError(t, err)
}

func TestNewBookingPolicy(t *testing.T) {
	testCases := []struct {
		name    string
		args    [4]int
		wantErr bool
	}{
		{name: "success: default policy", args: [4]int{1, 3, 1, 30}},
		{name: "success: same-day arrivals allowed", args: [4]int{1, 1, 0, 0}},
		{name: "error: zero minimum length", args: [4]int{0, 3, 1, 30}, wantErr: true},
		{name: "error: max length below min", args: [4]int{3, 2, 1, 30}, wantErr: true},
		{name: "error: negative offset", args: [4]int{1, 3, -1, 30}, wantErr: true},
		{name: "error: max offset below min", args: [4]int{1, 3, 10, 5}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := reservation.NewBookingPolicy(tc.args[0], tc.args[1], tc.args[2], tc.args[3])
			if tc.wantErr {
				assert.True(t, errs.Is(err, reservation.ErrInvalidPolicy))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestBookingPolicy_Horizon(t *testing.T) {
	earliest, latest := defaultPolicy(t).Horizon(time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC))

	assert.Equal(t, calendar.Date(2026, 10, 16), earliest)
	assert.Equal(t, calendar.Date(2026, 11, 14), latest)
}
