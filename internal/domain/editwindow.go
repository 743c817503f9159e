package domain

import (
	"time"

	"github.com/tadbeer-it/TDB-FieldService/pkg/types"
)

// EditCutoff returns the instant after which a booking may no longer be
// edited or cancelled by the client. With a start time the cutoff is the
// appointment instant itself; without one it is midnight of the booking date.
func EditCutoff(date time.Time, start *types.TimeString) (time.Time, error) {
	if start == nil || start.IsZero() {
		return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location()), nil
	}
	return start.At(date)
}

// EditableAt reports whether, at instant now, the appointment is still at
// least windowHours away and therefore editable. The comparison is inclusive:
// exactly windowHours before the cutoff is still editable.
//
// Malformed start times fail with types.ErrInvalidTimeFormat rather than
// being silently misread.
func EditableAt(date time.Time, start *types.TimeString, now time.Time, windowHours int) (bool, error) {
	cutoff, err := EditCutoff(date, start)
	if err != nil {
		return false, err
	}
	return cutoff.Sub(now) >= time.Duration(windowHours)*time.Hour, nil
}

// EditableAt reports whether the booking is still inside its edit window at
// instant now
func (b *Booking) EditableAt(now time.Time, windowHours int) (bool, error) {
	return EditableAt(b.BookingDate, b.StartTime, now, windowHours)
}
