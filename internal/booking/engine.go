package booking

import (
	"fmt"
	"time"

	"github.com/nekogravitycat/hotel-booking-backend/internal/calendar"
)

// Engine decides whether a stay can be booked and which dates are taken.
// It keeps no state: every call works on the snapshot of bookings it is given.
type Engine struct {
	cal                    *calendar.Calendar
	latestDateInDays       int
	maxBookingPeriodInDays int
}

func NewEngine(cal *calendar.Calendar, latestDateInDays, maxBookingPeriodInDays int) *Engine {
	return &Engine{
		cal:                    cal,
		latestDateInDays:       latestDateInDays,
		maxBookingPeriodInDays: maxBookingPeriodInDays,
	}
}

// Validate checks candidate against every booking in all and returns one message per
// broken rule. An empty result means the booking can be stored.
// A missing CheckIn or CheckOut aborts with calendar.ErrInvalidArgument instead.
//
// When all contains a booking with the candidate's ID, the candidate is treated as its
// replacement and does not conflict with the dates it already holds.
func (e *Engine) Validate(candidate *Booking, all []*Booking) ([]string, error) {
	if candidate.CheckIn.IsZero() {
		return nil, calendar.InvalidArgument(MsgCheckInNotNull)
	}
	if candidate.CheckOut.IsZero() {
		return nil, calendar.InvalidArgument(MsgCheckOutNotNull)
	}

	today := e.cal.Today()
	first, last, err := horizon(today, e.latestDateInDays)
	if err != nil {
		return nil, err
	}

	checkIn := calendar.DateOf(candidate.CheckIn)
	checkOut := calendar.DateOf(candidate.CheckOut)

	errs := []string{}
	errs = validateDate(fieldCheckIn, checkIn, first, last, errs)
	errs = validateDate(fieldCheckOut, checkOut, first, last, errs)
	errs = e.validatePeriod(checkIn, checkOut, errs)

	booked, err := ComputeBookedDates(all, today, e.latestDateInDays)
	if err != nil {
		return nil, err
	}
	errs = validateAvailability(candidate.ID, checkIn, checkOut, first, last, all, booked, errs)

	return errs, nil
}

// BookedDates returns the booked dates inside the current horizon.
func (e *Engine) BookedDates(all []*Booking) (calendar.DateSet, error) {
	return ComputeBookedDates(all, e.cal.Today(), e.latestDateInDays)
}

// AvailableDates returns the free dates inside the current horizon.
func (e *Engine) AvailableDates(all []*Booking) (calendar.DateSet, error) {
	return ComputeAvailableDates(all, e.cal.Today(), e.latestDateInDays)
}

func validateDate(field string, date, first, last time.Time, errs []string) []string {
	if date.Before(first) {
		errs = append(errs, fmt.Sprintf(MsgTooEarly, field, calendar.FormatDate(first)))
	}
	if date.After(last) {
		errs = append(errs, fmt.Sprintf(MsgTooLate, field, calendar.FormatDate(last)))
	}
	return errs
}

func (e *Engine) validatePeriod(checkIn, checkOut time.Time, errs []string) []string {
	if !checkIn.Before(checkOut) {
		errs = append(errs, MsgCheckInAfterCheckOut)
	}
	if calendar.CountDays(checkIn, checkOut) > e.maxBookingPeriodInDays {
		errs = append(errs, fmt.Sprintf(MsgStayTooLong, e.maxBookingPeriodInDays))
	}
	return errs
}

func validateAvailability(id string, checkIn, checkOut, first, last time.Time, all []*Booking, booked calendar.DateSet, errs []string) []string {
	// A booking being replaced must not collide with itself.
	if existing := findByID(all, id); existing != nil {
		for d := range calendar.DatesInRange(existing.CheckIn, existing.CheckOut) {
			booked.Remove(d)
		}
	}

	// Booked dates never leave the horizon, so only the overlap with it needs checking.
	if checkIn.Before(first) {
		checkIn = first
	}
	if checkOut.After(last) {
		checkOut = last
	}
	for d := range calendar.DatesInRange(checkIn, checkOut) {
		if booked.Contains(d) {
			return append(errs, MsgAlreadyBooked)
		}
	}
	return errs
}

func findByID(all []*Booking, id string) *Booking {
	if id == "" {
		return nil
	}
	for _, b := range all {
		if b != nil && b.ID == id {
			return b
		}
	}
	return nil
}

// ComputeBookedDates returns every date inside the horizon that is covered by at least
// one booking. The horizon starts the day after today and spans latestDateInDays dates.
func ComputeBookedDates(all []*Booking, today time.Time, latestDateInDays int) (calendar.DateSet, error) {
	first, last, err := horizon(today, latestDateInDays)
	if err != nil {
		return nil, err
	}

	booked := make(calendar.DateSet)
	for _, b := range all {
		if b == nil {
			continue
		}
		for d := range calendar.DatesInRange(b.CheckIn, b.CheckOut) {
			if d.Before(first) || d.After(last) {
				continue
			}
			booked.Add(d)
		}
	}
	return booked, nil
}

// ComputeAvailableDates returns the horizon dates that ComputeBookedDates does not.
func ComputeAvailableDates(all []*Booking, today time.Time, latestDateInDays int) (calendar.DateSet, error) {
	first, last, err := horizon(today, latestDateInDays)
	if err != nil {
		return nil, err
	}
	booked, err := ComputeBookedDates(all, today, latestDateInDays)
	if err != nil {
		return nil, err
	}

	available := make(calendar.DateSet)
	for d := range calendar.DatesInRange(first, last) {
		if !booked.Contains(d) {
			available.Add(d)
		}
	}
	return available, nil
}

func horizon(today time.Time, latestDateInDays int) (time.Time, time.Time, error) {
	if today.IsZero() {
		return time.Time{}, time.Time{}, calendar.InvalidArgument("Today must be not null")
	}
	first := calendar.DateOf(today).AddDate(0, 0, 1)
	last, err := calendar.OffsetDate(first, latestDateInDays)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return first, last, nil
}
