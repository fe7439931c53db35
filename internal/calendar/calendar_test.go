package calendar

import (
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalendarRelativeDates(t *testing.T) {
	cal := New(FixedClock{Date: time.Date(2026, 2, 28, 22, 15, 0, 0, time.UTC)})

	assert.Equal(t, date(2026, 2, 28), cal.Today())
	assert.Equal(t, date(2026, 3, 1), cal.Tomorrow())
	assert.Equal(t, date(2026, 2, 27), cal.Yesterday())
}

func TestSystemClockUsesLocation(t *testing.T) {
	loc, err := time.LoadLocation("Pacific/Kiritimati")
	if err != nil {
		t.Skipf("tzdata not available: %v", err)
	}
	now := time.Now().In(loc)

	got := NewSystemClock(loc).Today()

	// Allow for the test straddling midnight in that zone.
	want := DateOf(now)
	if !got.Equal(want) {
		assert.Equal(t, want.AddDate(0, 0, 1), got)
	}
	assert.Equal(t, time.UTC, got.Location())
}

func TestCountDays(t *testing.T) {
	tests := []struct {
		name  string
		first time.Time
		last  time.Time
		want  int
	}{
		{name: "same date", first: date(2026, 1, 10), last: date(2026, 1, 10), want: 1},
		{name: "adjacent dates", first: date(2026, 1, 10), last: date(2026, 1, 11), want: 2},
		{name: "across month end", first: date(2026, 1, 30), last: date(2026, 2, 2), want: 4},
		{name: "across leap day", first: date(2028, 2, 28), last: date(2028, 3, 1), want: 3},
		{name: "ignores time of day", first: time.Date(2026, 1, 10, 23, 0, 0, 0, time.UTC), last: time.Date(2026, 1, 12, 1, 0, 0, 0, time.UTC), want: 3},
		{name: "reversed range", first: date(2026, 1, 12), last: date(2026, 1, 10), want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountDays(tt.first, tt.last))
		})
	}
}

func TestCountDaysSameDateIsOne(t *testing.T) {
	for d := range DatesInRange(date(2025, 12, 1), date(2026, 3, 31)) {
		require.Equal(t, 1, CountDays(d, d), "date %s", FormatDate(d))
	}
}

func TestDatesInRange(t *testing.T) {
	t.Run("inclusive ascending sequence", func(t *testing.T) {
		got := slices.Collect(DatesInRange(date(2026, 12, 30), date(2027, 1, 2)))
		assert.Equal(t, []time.Time{
			date(2026, 12, 30),
			date(2026, 12, 31),
			date(2027, 1, 1),
			date(2027, 1, 2),
		}, got)
	})

	t.Run("length matches CountDays", func(t *testing.T) {
		first := date(2026, 5, 1)
		for n := 0; n < 40; n++ {
			last := first.AddDate(0, 0, n)
			got := slices.Collect(DatesInRange(first, last))
			require.Len(t, got, CountDays(first, last))
		}
	})

	t.Run("single date", func(t *testing.T) {
		got := slices.Collect(DatesInRange(date(2026, 5, 1), date(2026, 5, 1)))
		assert.Equal(t, []time.Time{date(2026, 5, 1)}, got)
	})

	t.Run("first after last is empty", func(t *testing.T) {
		assert.Empty(t, slices.Collect(DatesInRange(date(2026, 5, 2), date(2026, 5, 1))))
	})

	t.Run("missing bound is empty", func(t *testing.T) {
		assert.Empty(t, slices.Collect(DatesInRange(time.Time{}, date(2026, 5, 1))))
		assert.Empty(t, slices.Collect(DatesInRange(date(2026, 5, 1), time.Time{})))
		assert.Empty(t, slices.Collect(DatesInRange(time.Time{}, time.Time{})))
	})

	t.Run("restartable", func(t *testing.T) {
		seq := DatesInRange(date(2026, 5, 1), date(2026, 5, 3))
		assert.Equal(t, slices.Collect(seq), slices.Collect(seq))
	})

	t.Run("stops early", func(t *testing.T) {
		var seen []time.Time
		for d := range DatesInRange(date(2026, 5, 1), date(2026, 5, 31)) {
			seen = append(seen, d)
			if len(seen) == 2 {
				break
			}
		}
		assert.Len(t, seen, 2)
	})
}

func TestOffsetDate(t *testing.T) {
	d := date(2026, 3, 10)

	tests := []struct {
		name     string
		dayCount int
		want     time.Time
	}{
		{name: "zero returns initial", dayCount: 0, want: d},
		{name: "one returns initial", dayCount: 1, want: d},
		{name: "positive counts initial as first day", dayCount: 30, want: date(2026, 4, 8)},
		{name: "two is the next day", dayCount: 2, want: date(2026, 3, 11)},
		{name: "negative is a plain shift", dayCount: -1, want: date(2026, 3, 9)},
		{name: "negative across month", dayCount: -10, want: date(2026, 2, 28)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := OffsetDate(d, tt.dayCount)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOffsetDateMissingInitial(t *testing.T) {
	for _, n := range []int{-5, 0, 1, 30} {
		_, err := OffsetDate(time.Time{}, n)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidArgument))
		assert.Equal(t, "Initial Date must be not null", err.Error())
	}
}

func TestParseAndFormatDate(t *testing.T) {
	d, err := ParseDate("2026-07-04")
	require.NoError(t, err)
	assert.Equal(t, date(2026, 7, 4), d)
	assert.Equal(t, "2026-07-04", FormatDate(d))
	assert.Equal(t, "", FormatDate(time.Time{}))

	_, err = ParseDate("04/07/2026")
	assert.Error(t, err)
}

func TestDateSet(t *testing.T) {
	s := NewDateSet(date(2026, 1, 3), date(2026, 1, 1))
	s.Add(time.Date(2026, 1, 2, 15, 0, 0, 0, time.UTC))
	s.Add(date(2026, 1, 1))

	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains(date(2026, 1, 2)))
	assert.Equal(t, []time.Time{date(2026, 1, 1), date(2026, 1, 2), date(2026, 1, 3)}, s.Sorted())

	s.Remove(date(2026, 1, 2))
	assert.False(t, s.Contains(date(2026, 1, 2)))

	collected := Collect(DatesInRange(date(2026, 1, 1), date(2026, 1, 5)))
	assert.Equal(t, 5, collected.Len())
}
