package analytics

import (
	"fmt"
	"time"
)

// Window is an inclusive time range used for KPI queries
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// MonthStart returns midnight on the first day of t's month
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// MonthEnd returns the last representable instant of t's month
func MonthEnd(t time.Time) time.Time {
	return MonthStart(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// DaysInMonth returns the number of days in t's month
func DaysInMonth(t time.Time) int {
	return MonthStart(t).AddDate(0, 1, -1).Day()
}

// CurrentMonth returns the month-to-date window ending at asOf
func CurrentMonth(asOf time.Time) Window {
	return Window{Start: MonthStart(asOf), End: asOf}
}

// PreviousMonth returns the full calendar month before asOf's month
func PreviousMonth(asOf time.Time) Window {
	start := MonthStart(asOf).AddDate(0, -1, 0)
	return Window{Start: start, End: MonthEnd(start)}
}

// SameMonthLastYear returns asOf's calendar month one year earlier, in full
func SameMonthLastYear(asOf time.Time) Window {
	start := MonthStart(asOf).AddDate(-1, 0, 0)
	return Window{Start: start, End: MonthEnd(start)}
}

// MonthWindow returns the full calendar month offset months before asOf's
// month. Offset 0 is asOf's own month.
func MonthWindow(asOf time.Time, offset int) Window {
	start := MonthStart(asOf).AddDate(0, -offset, 0)
	return Window{Start: start, End: MonthEnd(start)}
}

// CurrentQuarter returns the full calendar quarter containing asOf
func CurrentQuarter(asOf time.Time) Window {
	quarterMonth := time.Month((int(asOf.Month())-1)/3*3 + 1)
	start := time.Date(asOf.Year(), quarterMonth, 1, 0, 0, 0, 0, asOf.Location())
	return Window{Start: start, End: start.AddDate(0, 3, 0).Add(-time.Nanosecond)}
}

// Days returns the number of calendar days the window spans
func (w Window) Days() int {
	days := 0
	for t := MonthStart(w.Start); t.Before(w.End); t = t.AddDate(0, 1, 0) {
		days += DaysInMonth(t)
	}
	if days == 0 {
		days = DaysInMonth(w.Start)
	}
	return days
}

// MonthKey formats t as "YYYY-M" without zero padding, the key format used
// in monthly trend series.
func MonthKey(t time.Time) string {
	return fmt.Sprintf("%d-%d", t.Year(), int(t.Month()))
}
