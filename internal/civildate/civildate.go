package civildate

import (
	"errors"
	"time"
)

// Layout is the canonical civil date representation: a bare calendar date
// with no time-of-day or timezone component.
const Layout = "2006-01-02"

var ErrInvalidFormat = errors.New("invalid date format, expected YYYY-MM-DD or RFC3339")

// Normalize converts any supported date representation into the business
// timezone's civil date. A bare YYYY-MM-DD string is returned unchanged;
// an RFC3339 instant is projected onto loc's calendar. Every "what day is
// this" decision in the booking core goes through here so availability
// cannot shift with the server or client timezone.
func Normalize(input string, loc *time.Location) (string, error) {
	if _, err := time.Parse(Layout, input); err == nil {
		return input, nil
	}

	t, err := time.Parse(time.RFC3339, input)
	if err != nil {
		return "", ErrInvalidFormat
	}

	return t.In(loc).Format(Layout), nil
}

// FromTime projects an instant onto loc's calendar.
func FromTime(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(Layout)
}

// Today is the current civil date in loc. The only place the core reads
// the wall clock for calendar decisions.
func Today(loc *time.Location) string {
	return FromTime(time.Now(), loc)
}

// Weekday returns the day of week of a civil date, 0=Sunday..6=Saturday.
func Weekday(date string, loc *time.Location) (int, error) {
	start, err := StartOfDay(date, loc)
	if err != nil {
		return 0, err
	}
	return int(start.Weekday()), nil
}

// StartOfDay is the instant of 00:00:00.000 local business time on date.
func StartOfDay(date string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(Layout, date)
	if err != nil {
		return time.Time{}, ErrInvalidFormat
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}

// EndOfDay is StartOfDay + 24h - 1ms.
func EndOfDay(date string, loc *time.Location) (time.Time, error) {
	start, err := StartOfDay(date, loc)
	if err != nil {
		return time.Time{}, err
	}
	return start.Add(24*time.Hour - time.Millisecond), nil
}

// AddDays shifts a civil date by n calendar days.
func AddDays(date string, n int) (string, error) {
	t, err := time.Parse(Layout, date)
	if err != nil {
		return "", ErrInvalidFormat
	}
	return t.AddDate(0, 0, n).Format(Layout), nil
}

// Before reports whether a sorts strictly before b. Civil dates in the
// canonical layout order lexicographically.
func Before(a, b string) bool {
	return a < b
}
