package calendar

import (
	"iter"
	"slices"
	"time"
)

// DateSet is an unordered set of calendar dates.
type DateSet map[time.Time]struct{}

func NewDateSet(dates ...time.Time) DateSet {
	s := make(DateSet, len(dates))
	for _, d := range dates {
		s.Add(d)
	}
	return s
}

// Collect drains seq into a new set.
func Collect(seq iter.Seq[time.Time]) DateSet {
	s := make(DateSet)
	for d := range seq {
		s.Add(d)
	}
	return s
}

func (s DateSet) Add(d time.Time) {
	s[DateOf(d)] = struct{}{}
}

func (s DateSet) Remove(d time.Time) {
	delete(s, DateOf(d))
}

func (s DateSet) Contains(d time.Time) bool {
	_, ok := s[DateOf(d)]
	return ok
}

func (s DateSet) Len() int {
	return len(s)
}

// Sorted returns the dates in ascending order.
func (s DateSet) Sorted() []time.Time {
	out := make([]time.Time, 0, len(s))
	for d := range s {
		out = append(out, d)
	}
	slices.SortFunc(out, func(a, b time.Time) int {
		return a.Compare(b)
	})
	return out
}
