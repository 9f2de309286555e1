package reservation

import (
	"campsite-reservation/internal/pkg/errs"
)

var (
	ErrReservationCancelled = errs.Mark(errs.New("reservation is cancelled"), errs.ErrNotAllowed)
	ErrInvalidStatus        = errs.New("invalid reservation status")
	ErrInvalidPolicy        = errs.New("invalid booking policy")
)

const (
	msgInvalidFormat            = "Both check-in and check-out dates must have valid format: yyyy-MM-dd"
	msgMissingDates             = "Both check-in and check-out dates must be provided."
	msgPastDates                = "Both check-in and check-out dates must be in the future."
	msgCheckinNotBeforeCheckout = "The check-in date must be before the check-out date"
	msgInvalidRange             = "The from date must not be after the to date"
)

// ValidationError describes the first rule a request broke.
type ValidationError struct {
	Kind    ValidationKind
	Message string
}

func (e *ValidationError) Error() string {
	return string(e.Kind) + ": " + e.Message
}

func newValidationError(kind ValidationKind, msg string) error {
	return errs.Mark(&ValidationError{Kind: kind, Message: msg}, errs.ErrValidation)
}

// NewInvalidRangeError reports a query window whose start is after its end.
func NewInvalidRangeError() error {
	return newValidationError(KindInvalidRange, msgInvalidRange)
}

// AsValidationError extracts the ValidationError carried by err, if any.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errs.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
