package request

import (
	"campsite-reservation/internal/usecase/commands"
)

// Dates are kept as raw strings so that format errors are reported by the booking policy.
type CreateReservationRequest struct {
	GuestName    string `json:"guestName" binding:"required,max=200"`
	GuestEmail   string `json:"guestEmail" binding:"required,max=254"`
	CheckinDate  string `json:"checkinDate"`
	CheckoutDate string `json:"checkoutDate"`
}

type UpdateReservationRequest struct {
	GuestName    *string `json:"guestName,omitempty" binding:"omitempty,max=200"`
	GuestEmail   *string `json:"guestEmail,omitempty" binding:"omitempty,max=254"`
	CheckinDate  *string `json:"checkinDate,omitempty"`
	CheckoutDate *string `json:"checkoutDate,omitempty"`
}

type AvailabilityQuery struct {
	FromDate string `form:"fromDate"`
	ToDate   string `form:"toDate"`
}

func (r CreateReservationRequest) ToInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		GuestName:    r.GuestName,
		GuestEmail:   r.GuestEmail,
		CheckinDate:  r.CheckinDate,
		CheckoutDate: r.CheckoutDate,
	}
}

func (r UpdateReservationRequest) ToInput() commands.UpdateReservationInput {
	return commands.UpdateReservationInput{
		GuestName:    r.GuestName,
		GuestEmail:   r.GuestEmail,
		CheckinDate:  r.CheckinDate,
		CheckoutDate: r.CheckoutDate,
	}
}
