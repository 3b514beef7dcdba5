package utils

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the civil date format used throughout the engine, e.g. "2025-02-25".
// Dates and clock times are treated as local values; no timezone conversion happens here.
const DateLayout = "2006-01-02"

// ErrInvalidTimeFormat is returned for malformed "HH:MM" clock strings.
var ErrInvalidTimeFormat = errors.New("invalid time format, expected HH:MM")

// ErrInvalidDate is returned for malformed "YYYY-MM-DD" date strings.
var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

// ParseClock converts a "HH:MM" clock string to minutes from midnight (0..1439).
// All four positions must be digits; signs and trailing garbage are rejected.
func ParseClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, ErrInvalidTimeFormat
	}
	for _, i := range [4]int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, ErrInvalidTimeFormat
		}
	}
	h := int(s[0]-'0')*10 + int(s[1]-'0')
	m := int(s[3]-'0')*10 + int(s[4]-'0')
	if h > 23 || m > 59 {
		return 0, ErrInvalidTimeFormat
	}
	return h*60 + m, nil
}

// FormatClock converts minutes from midnight back to a zero-padded "HH:MM" string.
// Inverse of ParseClock for all valid minute values.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseDate validates and parses a "YYYY-MM-DD" civil date.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// DayOfWeek returns the weekday of a civil date as 0..6 with 0 = Sunday.
func DayOfWeek(date string) (int, error) {
	t, err := ParseDate(date)
	if err != nil {
		return 0, err
	}
	return int(t.Weekday()), nil
}
