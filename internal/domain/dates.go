package domain

import "time"

// Simulations run on discrete calendar months indexed 0..N-1 from a scenario
// start date. Helpers here are the single source of truth for month
// arithmetic so every engine agrees on what "month m" means.

// MonthDate returns the calendar date of month index m relative to start.
func MonthDate(start time.Time, m int) time.Time {
	return start.AddDate(0, m, 0)
}

// MonthLabel formats month index m relative to start as "2026-01".
func MonthLabel(start time.Time, m int) string {
	return MonthDate(start, m).Format("2006-01")
}

// monthOrdinal flattens a date to a comparable year*12+month value.
func monthOrdinal(t time.Time) int {
	return t.Year()*12 + int(t.Month()) - 1
}

// MonthsBetween returns the number of whole calendar months from a to b.
// Negative when b precedes a.
func MonthsBetween(a, b time.Time) int {
	return monthOrdinal(b) - monthOrdinal(a)
}

// ContainsMonth reports whether the [start,end] window contains the calendar
// month of d. Comparison is at month granularity: a window ending mid-month
// still covers that whole month.
func ContainsMonth(start, end time.Time, d time.Time) bool {
	m := monthOrdinal(d)
	return m >= monthOrdinal(start) && m <= monthOrdinal(end)
}

// MonthStarted reports whether the calendar month of d is at or after the
// month of start.
func MonthStarted(start, d time.Time) bool {
	return monthOrdinal(d) >= monthOrdinal(start)
}
