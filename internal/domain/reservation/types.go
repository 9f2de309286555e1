package reservation

type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusCancelled:
		return true
	default:
		return false
	}
}

type ValidationKind string

const (
	KindInvalidFormat            ValidationKind = "invalid_format"
	KindMissingDates             ValidationKind = "missing_dates"
	KindPastDates                ValidationKind = "past_dates"
	KindCheckinNotBeforeCheckout ValidationKind = "checkin_not_before_checkout"
	KindInvalidLength            ValidationKind = "invalid_length"
	KindLeadTime                 ValidationKind = "lead_time"
	KindInvalidRange             ValidationKind = "invalid_range"
	KindGuestName                ValidationKind = "guest_name"
	KindGuestEmail               ValidationKind = "guest_email"
)
