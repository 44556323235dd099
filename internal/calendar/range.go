// Package calendar lays out the year-to-date grid of days shown on the
// summary screen.
package calendar

import (
	"iter"
	"time"

	"github.com/julianstephens/habitual/internal/constants"
)

// StartOfDay returns midnight of t's day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// FromYearStart yields one date per day from January 1 of now's year through
// now's day, ascending, each at midnight in now's location. The sequence is
// restartable: every range over it recomputes from now.
func FromYearStart(now time.Time) iter.Seq[time.Time] {
	year, loc := now.Year(), now.Location()
	days := now.YearDay()

	return func(yield func(time.Time) bool) {
		for i := 0; i < days; i++ {
			// Normalising the day-of-month keeps every element on its own
			// calendar day even across DST changes.
			if !yield(time.Date(year, time.January, 1+i, 0, 0, 0, 0, loc)) {
				return
			}
		}
	}
}

// DatesFromYearStart collects FromYearStart into a slice.
func DatesFromYearStart(now time.Time) []time.Time {
	dates := make([]time.Time, 0, now.YearDay())
	for d := range FromYearStart(now) {
		dates = append(dates, d)
	}
	return dates
}

// FillerCount is the number of placeholder cells needed so the grid shows at
// least MinimumSummaryDates cells.
func FillerCount(n int) int {
	return max(0, constants.MinimumSummaryDates-n)
}

// LeadingBlanks is the number of empty cells before first so that it lands
// under its weekday in a Sunday-first grid.
func LeadingBlanks(first time.Time) int {
	return int(first.Weekday())
}

// SameDay reports whether a and b fall on the same calendar day in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	a, b = a.In(loc), b.In(loc)
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DayKey formats t's calendar day in loc as YYYY-MM-DD.
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(constants.DateFormat)
}

// IsPast reports whether date's whole day lies before now. Past days are
// read-only.
func IsPast(date, now time.Time) bool {
	d := date.In(now.Location())
	endOfDay := time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), now.Location())
	return endOfDay.Before(now)
}
