package response

import (
	"time"

	"campsite-reservation/internal/pkg/calendar"
	"campsite-reservation/internal/pkg/errs"
	"campsite-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID           string    `json:"id"`
	GuestName    string    `json:"guestName"`
	GuestEmail   string    `json:"guestEmail"`
	CheckinDate  string    `json:"checkinDate"`
	CheckoutDate string    `json:"checkoutDate"`
	Status       string    `json:"status"`
	Active       bool      `json:"active"`
	CancelledOn  *string   `json:"cancelledDate,omitempty"`
	Version      int32     `json:"version"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type AvailabilityResponse struct {
	FromDate       string   `json:"fromDate"`
	ToDate         string   `json:"toDate"`
	AvailableDates []string `json:"availableDates"`
}

// calendar days go out as yyyy-MM-dd, ids as their canonical string
var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: time.Time{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return calendar.Format(src.(time.Time)), nil
			},
		},
		{
			SrcType: uuid.UUID{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
	},
}

func FromReservationView(v *queries.ReservationView) (*ReservationResponse, error) {
	var res ReservationResponse
	if err := copier.CopyWithOption(&res, v, copyOption); err != nil {
		return nil, errs.Wrap(err, "failed to map reservation view")
	}
	if v.CancelledDate != nil {
		day := calendar.Format(*v.CancelledDate)
		res.CancelledOn = &day
	}
	return &res, nil
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	dates := make([]string, len(v.AvailableDates))
	for i, d := range v.AvailableDates {
		dates[i] = calendar.Format(d)
	}
	return &AvailabilityResponse{
		FromDate:       calendar.Format(v.From),
		ToDate:         calendar.Format(v.To),
		AvailableDates: dates,
	}
}
