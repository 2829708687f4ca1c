package dateutil

import (
	"time"
)

// Date builds a UTC midnight time for a civil year/month/day. All calendar
// arithmetic in the engine runs on UTC midnights so day differences are exact.
func Date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole-day difference to - from. Negative when to
// precedes from.
func DaysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// IsLeapYear checks if a year is a leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns the number of days in a given year
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// IsValidDate reports whether year/month/day names a real Gregorian date.
func IsValidDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	t := Date(year, month, day)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}
