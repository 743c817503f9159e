package domain

import "time"

// BlockedDayStatus open/closed marker for a calendar date
type BlockedDayStatus string

const (
	DayOpen   BlockedDayStatus = "open"
	DayClosed BlockedDayStatus = "closed"
)

// BlockedDay represents admin-imposed unavailability for a calendar date.
// ClientID == nil blocks the date for everyone; a set ClientID blocks it for
// that client only. A blocked day constrains new bookings, it owns none.
type BlockedDay struct {
	ID       int64
	Date     time.Time
	ClientID *int64
	Status   BlockedDayStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsClosed reports whether the day is closed for booking
func (d *BlockedDay) IsClosed() bool {
	return d.Status == DayClosed
}

// AppliesTo reports whether the block applies to the given client
func (d *BlockedDay) AppliesTo(clientID int64) bool {
	return d.ClientID == nil || *d.ClientID == clientID
}
