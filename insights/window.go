// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package insights

import "time"

// DateLayout is the calendar-date format used everywhere: YYYY-MM-DD.
const DateLayout = "2006-01-02"

// Range selects the reporting window shape around an anchor date.
type Range string

const (
	RangeWeek  Range = "week"
	RangeMonth Range = "month"
	RangeYear  Range = "year"
)

// ValidRange reports whether s names a supported range kind.
func ValidRange(s string) bool {
	switch Range(s) {
	case RangeWeek, RangeMonth, RangeYear:
		return true
	}
	return false
}

// Window is an inclusive start/end date range plus its explicit ordered
// day sequence.
type Window struct {
	Start time.Time
	End   time.Time
	Days  []string
}

// StartDate returns the window start formatted as YYYY-MM-DD.
func (w Window) StartDate() string { return w.Start.Format(DateLayout) }

// EndDate returns the window end formatted as YYYY-MM-DD.
func (w Window) EndDate() string { return w.End.Format(DateLayout) }

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// Resolve computes the window containing anchor for the given range
// kind: the ISO week (Monday through Sunday), the calendar month, or
// the calendar year. Days lists every date from start to end inclusive.
func Resolve(r Range, anchor time.Time) Window {
	anchor = dateOnly(anchor)

	var start, end time.Time
	switch r {
	case RangeMonth:
		start = time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.UTC)
		end = start.AddDate(0, 1, -1)
	case RangeYear:
		start = time.Date(anchor.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		end = time.Date(anchor.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
	default: // week
		// time.Weekday counts Sunday as 0; shift so Monday is 0
		offset := (int(anchor.Weekday()) + 6) % 7
		start = anchor.AddDate(0, 0, -offset)
		end = start.AddDate(0, 0, 6)
	}

	return Window{Start: start, End: end, Days: daysBetween(start, end)}
}

func daysBetween(start, end time.Time) []string {
	var days []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(DateLayout))
	}
	return days
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
