// Package dateutils provides common calendar operations used throughout the application.
package dateutils

import (
	"time"
)

// Common date format constants used throughout the application
const (
	DateLayoutISO       = "2006-01-02"
	DateLayoutMonth     = "2006-01"
	DateLayoutFull      = "2006-01-02 15:04:05"
	DateLayoutWithMonth = "2-Jan-2006"
)

// Truncate discards the time-of-day component of a date. All billing
// comparisons operate on truncated dates.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysInMonth returns the number of days in the given year/month.
// Falls back to 30 when the month is out of range.
func DaysInMonth(year int, month time.Month) int {
	if month < time.January || month > time.December {
		return 30
	}
	// Day 0 of the next month is the last day of this month.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ClampDay returns a date in the same year/month as date with the day set to
// min(day, days-in-that-month). A billing day of 31 lands on February 28/29.
func ClampDay(date time.Time, day int) time.Time {
	maxDay := DaysInMonth(date.Year(), date.Month())
	if day > maxDay {
		day = maxDay
	}
	return time.Date(date.Year(), date.Month(), day, 0, 0, 0, 0, time.UTC)
}

// AddMonthsClamped advances a date by n calendar months and clamps the day to
// the target month's length. Unlike time.Time.AddDate this never rolls over
// into the following month (Jan 31 + 1 month is Feb 28, not Mar 3).
func AddMonthsClamped(date time.Time, n int, day int) time.Time {
	year, month := normalizeMonth(date.Year(), int(date.Month())+n)
	maxDay := DaysInMonth(year, month)
	if day > maxDay {
		day = maxDay
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// normalizeMonth folds an out-of-range month ordinal into a valid year/month pair.
func normalizeMonth(year, month int) (int, time.Month) {
	for month > 12 {
		month -= 12
		year++
	}
	for month < 1 {
		month += 12
		year--
	}
	return year, time.Month(month)
}

// MonthsBetween returns the number of complete calendar months from start to
// end. The start day is clamped to the end month's length, so a month that
// began on the 31st completes on February 28. Returns 0 when end is before
// start.
func MonthsBetween(start, end time.Time) int {
	start, end = Truncate(start), Truncate(end)
	if end.Before(start) {
		return 0
	}
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if end.Day() < clampedStartDay(start.Day(), end) {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// clampedStartDay clamps a start day-of-month to the length of end's month,
// matching how billing days are clamped when projected into shorter months.
func clampedStartDay(startDay int, end time.Time) int {
	if max := DaysInMonth(end.Year(), end.Month()); startDay > max {
		return max
	}
	return startDay
}

// WeeksBetween returns the number of complete weeks from start to end.
// Returns 0 when end is before start.
func WeeksBetween(start, end time.Time) int {
	start, end = Truncate(start), Truncate(end)
	if end.Before(start) {
		return 0
	}
	days := int(end.Sub(start).Hours() / 24)
	return days / 7
}

// YearsBetween returns the number of complete calendar years from start to
// end, with the same day clamping as MonthsBetween: a year that began on
// leap-day February 29 completes on February 28. Returns 0 when end is
// before start.
func YearsBetween(start, end time.Time) int {
	start, end = Truncate(start), Truncate(end)
	if end.Before(start) {
		return 0
	}
	years := end.Year() - start.Year()
	if int(end.Month()) < int(start.Month()) ||
		(end.Month() == start.Month() && end.Day() < clampedStartDay(start.Day(), end)) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// SameMonth reports whether two dates fall in the same calendar year and month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD).
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}
