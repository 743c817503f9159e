package domain

import (
	"time"

	"github.com/tadbeer-it/TDB-FieldService/pkg/types"
)

// BookingStatus represents the status of a booking.
// The backend tolerates free-form values coming from older records; anything
// not recognised as cancelled is treated as an active booking.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Booking represents a scheduled on-site visit
type Booking struct {
	ID       int64
	ClientID *int64 // nil for admin-created global blocks
	UserID   int64  // account that created the booking

	BookingDate time.Time         // calendar date, no time component
	StartTime   *types.TimeString // nil when the visit has no fixed slot
	Status      BookingStatus

	BranchID   *int64
	BranchName *string
	Notes      *string

	CancellationReason *string
	CancelledAt        *time.Time

	DeletedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled reports whether the booking has been cancelled.
// Unknown status strings deliberately count as not cancelled, so legacy
// records keep occupying their slot.
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// OccupiesSlot reports whether the booking still holds its (date, time) slot
func (b *Booking) OccupiesSlot() bool {
	return !b.IsCancelled()
}

// CanBeCancelled reports whether the booking is in a cancellable state
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeRescheduled reports whether the booking is in a reschedulable state
func (b *Booking) CanBeRescheduled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// BelongsTo reports whether the booking belongs to the given client
func (b *Booking) BelongsTo(clientID int64) bool {
	return b.ClientID != nil && *b.ClientID == clientID
}

// IsOnDate reports whether the booking falls on the given calendar date.
// Comparison is by local date, not by instant.
func (b *Booking) IsOnDate(date time.Time) bool {
	y1, m1, d1 := b.BookingDate.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// ClientBookingsFilter filter for listing a client's bookings
type ClientBookingsFilter struct {
	ClientID         int64
	StartDate        *time.Time
	EndDate          *time.Time
	Status           *BookingStatus
	IncludeCancelled bool
}
