package calendar

import (
	"errors"
	"fmt"
	"iter"
	"time"
)

// DateLayout is the wire format of a calendar date.
const DateLayout = time.DateOnly

const secondsPerDay = 24 * 60 * 60

// ErrInvalidArgument marks structural failures such as a missing date.
var ErrInvalidArgument = errors.New("invalid argument")

type argumentError struct {
	msg string
}

func (e *argumentError) Error() string {
	return e.msg
}

func (e *argumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// InvalidArgument returns an error that renders as msg and matches ErrInvalidArgument.
func InvalidArgument(msg string) error {
	return &argumentError{msg: msg}
}

// Calendar derives relative dates from a Clock.
type Calendar struct {
	clock Clock
}

func New(clock Clock) *Calendar {
	return &Calendar{clock: clock}
}

func (c *Calendar) Today() time.Time {
	return DateOf(c.clock.Today())
}

func (c *Calendar) Tomorrow() time.Time {
	return c.Today().AddDate(0, 0, 1)
}

func (c *Calendar) Yesterday() time.Time {
	return c.Today().AddDate(0, 0, -1)
}

// DateOf drops the time of day and the location of t, keeping its calendar date.
// All dates handled by this package are UTC midnights, so they compare and hash consistently.
func DateOf(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a "2006-01-02" date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// FormatDate renders d as "2006-01-02". The zero date renders as an empty string.
func FormatDate(d time.Time) string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

// CountDays returns how many calendar days the inclusive range spans.
// The same date counts as one day.
func CountDays(firstInclusive, lastInclusive time.Time) int {
	lastExclusive := DateOf(lastInclusive).AddDate(0, 0, 1)
	return daysBetween(DateOf(firstInclusive), lastExclusive)
}

func daysBetween(from, to time.Time) int {
	// UTC midnights are exact multiples of a day, so the division never truncates.
	return int(to.Unix()/secondsPerDay - from.Unix()/secondsPerDay)
}

// DatesInRange yields every date from first to last, both inclusive, in ascending order.
// The sequence is empty when either bound is zero or first is after last.
// It can be ranged over any number of times.
func DatesInRange(firstInclusive, lastInclusive time.Time) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		if firstInclusive.IsZero() || lastInclusive.IsZero() {
			return
		}
		last := DateOf(lastInclusive)
		for d := DateOf(firstInclusive); !d.After(last); d = d.AddDate(0, 0, 1) {
			if !yield(d) {
				return
			}
		}
	}
}

// OffsetDate returns the date dayCount positions from initial, counting initial itself as
// position one: OffsetDate(d, 1) == d and OffsetDate(d, 30) is the 30th day starting at d.
// A zero dayCount returns initial. Negative counts shift back by exactly dayCount days.
//
// TODO: drop the negative branch once nothing outside the tests relies on it; the horizon
// bound is the only production caller and it always passes a positive count.
func OffsetDate(initial time.Time, dayCount int) (time.Time, error) {
	if initial.IsZero() {
		return time.Time{}, InvalidArgument("Initial Date must be not null")
	}
	initial = DateOf(initial)
	if dayCount == 0 {
		return initial, nil
	}
	lastPosition := dayCount
	if dayCount > 0 {
		lastPosition = dayCount - 1
	}
	return initial.AddDate(0, 0, lastPosition), nil
}
