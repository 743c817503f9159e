package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTimeFormat is returned when a time string does not match "HH:MM AM/PM"
var ErrInvalidTimeFormat = errors.New("types: invalid time format, expected HH:MM AM/PM")

// TimeString is a 12-hour wall-clock time of day in "HH:MM AM/PM" form,
// e.g. "09:00 AM" or "06:00 PM". This is the representation the client
// applications send and store; it is parsed here, once, at the boundary.
type TimeString string

// NewTimeString builds a TimeString from the clock part of t
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("03:04 PM"))
}

// NewTimeStringFromString validates s and returns it as a TimeString
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// String returns the raw "HH:MM AM/PM" representation
func (t TimeString) String() string {
	return string(t)
}

// IsZero reports whether the time string is empty
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks that the string parses as "HH:MM AM/PM"
func (t TimeString) Validate() error {
	_, _, err := t.Clock()
	return err
}

// Clock parses the 12-hour string into 24-hour (hour, minute) values.
//
// Mapping: hour 12 with AM -> 0, hour 12 with PM -> 12, any other hour
// with PM -> hour+12, any other hour with AM -> unchanged. Minutes pass
// through unchanged.
//
// Malformed input (missing space or colon, non-numeric fields, values out
// of range, unknown period marker) fails with ErrInvalidTimeFormat.
func (t TimeString) Clock() (hour, minute int, err error) {
	parts := strings.Fields(string(t))
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}

	hm := strings.Split(parts[0], ":")
	if len(hm) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}

	hour, err = strconv.Atoi(hm[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	minute, err = strconv.Atoi(hm[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}

	if hour < 1 || hour > 12 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}

	switch strings.ToUpper(parts[1]) {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	default:
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}

	return hour, minute, nil
}

// At combines the time of day with the calendar date of day, in day's location
func (t TimeString) At(day time.Time) (time.Time, error) {
	hour, minute, err := t.Clock()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location()), nil
}

// Equal reports whether two time strings denote the same instant of the day.
// "09:00 am" and "09:00 AM" are equal; malformed strings are only equal verbatim.
func (t TimeString) Equal(other TimeString) bool {
	h1, m1, err1 := t.Clock()
	h2, m2, err2 := other.Clock()
	if err1 != nil || err2 != nil {
		return t == other
	}
	return h1 == h2 && m1 == m2
}

// IsBefore reports whether t is strictly earlier in the day than other.
// Malformed strings compare as not-before.
func (t TimeString) IsBefore(other TimeString) bool {
	h1, m1, err1 := t.Clock()
	h2, m2, err2 := other.Clock()
	if err1 != nil || err2 != nil {
		return false
	}
	return h1*60+m1 < h2*60+m2
}
