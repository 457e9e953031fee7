// utils/dates.go
package utils

import "time"

// DateLayout is the canonical calendar-date form stored with invoices.
const DateLayout = "2006-01-02"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}

// Today returns now's UTC calendar date as YYYY-MM-DD.
func Today(now time.Time) string {
	return BeginningOfDay(now.UTC()).Format(DateLayout)
}
