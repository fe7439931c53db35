package calendar

import "time"

// Clock is the single source of "today" for everything date related.
// Tests substitute a FixedClock instead of touching the system time.
type Clock interface {
	Today() time.Time
}

// SystemClock reports today's date as seen in the hotel's location.
type SystemClock struct {
	loc *time.Location
}

// NewSystemClock returns a clock for the given location. A nil location means UTC.
func NewSystemClock(loc *time.Location) SystemClock {
	if loc == nil {
		loc = time.UTC
	}
	return SystemClock{loc: loc}
}

func (c SystemClock) Today() time.Time {
	loc := c.loc
	if loc == nil {
		loc = time.UTC
	}
	return DateOf(time.Now().In(loc))
}

// FixedClock always reports the same date.
type FixedClock struct {
	Date time.Time
}

func (c FixedClock) Today() time.Time {
	return DateOf(c.Date)
}
