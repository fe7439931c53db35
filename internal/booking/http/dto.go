package http

import (
	"fmt"
	"time"

	"github.com/nekogravitycat/hotel-booking-backend/internal/booking"
	"github.com/nekogravitycat/hotel-booking-backend/internal/calendar"
)

// BookingBody is the payload of create and update requests.
// Missing dates are accepted here and rejected by the booking engine.
type BookingBody struct {
	CheckIn  string `json:"checkIn" binding:"omitempty,datetime=2006-01-02"`
	CheckOut string `json:"checkOut" binding:"omitempty,datetime=2006-01-02"`
}

// Dates parses the body dates. An empty date yields the zero time.
func (b *BookingBody) Dates() (time.Time, time.Time, error) {
	checkIn, err := parseOptionalDate(b.CheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	checkOut, err := parseOptionalDate(b.CheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return checkIn, checkOut, nil
}

func parseOptionalDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	d, err := calendar.ParseDate(s)
	if err != nil {
		return time.Time{}, err
	}
	// The zero time stands for a missing date, so it cannot be sent explicitly.
	if d.IsZero() {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return d, nil
}

type BookingResponse struct {
	ID        string    `json:"id"`
	CheckIn   string    `json:"checkIn"`
	CheckOut  string    `json:"checkOut"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		CheckIn:   calendar.FormatDate(b.CheckIn),
		CheckOut:  calendar.FormatDate(b.CheckOut),
		CreatedAt: b.CreatedAt,
	}
}

func newDateList(dates []time.Time) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = calendar.FormatDate(d)
	}
	return out
}
