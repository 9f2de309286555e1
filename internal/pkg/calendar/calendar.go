// Package calendar works with calendar days represented as time.Time values
// pinned to midnight UTC. Every range in this package is half-open: [start, end).
package calendar

import (
	"time"

	"campsite-reservation/internal/pkg/clock"
)

const Layout = "2006-01-02"

func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Truncate drops the clock part of t, keeping the calendar day as seen in t's location.
func Truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return Date(y, m, d)
}

// Today is the current calendar day in loc.
func Today(c clock.Clock, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return Truncate(c.Now().In(loc))
}

func Parse(s string) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

func Format(day time.Time) string {
	return day.Format(Layout)
}

func AddDays(day time.Time, n int) time.Time {
	return day.AddDate(0, 0, n)
}

// Nights counts the nights between two days; negative when end precedes start.
func Nights(start, end time.Time) int {
	return int(Truncate(end).Sub(Truncate(start)).Hours() / 24)
}

// DaysInRange lists every day in [start, end) in ascending order.
// It returns an empty slice when start is not before end.
func DaysInRange(start, end time.Time) []time.Time {
	start, end = Truncate(start), Truncate(end)
	n := Nights(start, end)
	if n <= 0 {
		return []time.Time{}
	}
	days := make([]time.Time, 0, n)
	for d := start; d.Before(end); d = AddDays(d, 1) {
		days = append(days, d)
	}
	return days
}

// Set is a day-keyed set used to diff day lists.
type Set map[time.Time]struct{}

func NewSet(days ...time.Time) Set {
	s := make(Set, len(days))
	for _, d := range days {
		s[Truncate(d)] = struct{}{}
	}
	return s
}

func (s Set) Has(day time.Time) bool {
	_, ok := s[Truncate(day)]
	return ok
}

// SubtractFrom returns the days of list that are not in s, preserving order.
func (s Set) SubtractFrom(list []time.Time) []time.Time {
	out := make([]time.Time, 0, len(list))
	for _, d := range list {
		if !s.Has(d) {
			out = append(out, d)
		}
	}
	return out
}
