package dateutil

import (
	"time"
)

// Age calculates the age at a given date
func Age(birthDate, atDate time.Time) int {
	return YearsBetween(birthDate, atDate)
}

// YearsBetween returns the whole calendar years from a to b. The count is
// decremented when b's month/day falls before a's within the partial year.
func YearsBetween(a, b time.Time) int {
	years := b.Year() - a.Year()
	if b.Month() < a.Month() ||
		(b.Month() == a.Month() && b.Day() < a.Day()) {
		years--
	}
	return years
}

// MonthsBetween returns the whole calendar months from a to b, decremented
// when b's day-of-month precedes a's.
func MonthsBetween(a, b time.Time) int {
	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if b.Day() < a.Day() {
		months--
	}
	return months
}

// AddYears adds a specified number of years to a date.
// Feb 29 rolls over to Mar 1 in non-leap target years.
func AddYears(date time.Time, years int) time.Time {
	return date.AddDate(years, 0, 0)
}

// DateOnly truncates t to midnight UTC of its calendar day.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD date in UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
