package validation

import (
	"errors"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var (
	ErrDateInvalid     = errors.New("date must be formatted YYYY-MM-DD")
	ErrDateNotInFuture = errors.New("date must be after today")
)

// ParseDate reads a calendar date as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrDateInvalid
	}
	return d, nil
}

// ParseFutureDate parses s and requires it to be strictly after the UTC
// calendar day containing now.
func ParseFutureDate(s string, now time.Time) (time.Time, error) {
	d, err := ParseDate(s)
	if err != nil {
		return time.Time{}, err
	}

	today := now.UTC().Truncate(24 * time.Hour)
	if !d.After(today) {
		return time.Time{}, ErrDateNotInFuture
	}

	return d, nil
}
