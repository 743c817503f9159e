package create_booking

import (
	"fmt"
	"time"

	"github.com/tadbeer-it/TDB-FieldService/internal/domain"
	"github.com/tadbeer-it/TDB-FieldService/pkg/types"
)

// validateRequest validates the request data
func validateRequest(req *Request, catalog []types.TimeString) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes too long", ErrInvalidInput)
	}

	if req.StartTime != nil {
		if err := req.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
		}
		if !slotInCatalog(*req.StartTime, catalog) {
			return ErrSlotNotInCatalog
		}
	}

	return nil
}

// slotInCatalog reports whether t is one of the configured daily slots
func slotInCatalog(t types.TimeString, catalog []types.TimeString) bool {
	for _, slot := range catalog {
		if slot.Equal(t) {
			return true
		}
	}
	return false
}

// isSlotTaken reports whether some non-cancelled booking occupies (date, slot)
func isSlotTaken(date time.Time, slot types.TimeString, bookings []*domain.Booking) bool {
	for _, b := range bookings {
		if !b.OccupiesSlot() || !b.IsOnDate(date) || b.StartTime == nil {
			continue
		}
		if b.StartTime.Equal(slot) {
			return true
		}
	}
	return false
}

// isDayFullyBooked reports whether the date already carries at least as many
// non-cancelled bookings as the catalog has slots (count-based, matching the
// availability view)
func isDayFullyBooked(date time.Time, bookings []*domain.Booking, catalog []types.TimeString) bool {
	if len(catalog) == 0 {
		return false
	}
	count := 0
	for _, b := range bookings {
		if b.OccupiesSlot() && b.IsOnDate(date) {
			count++
		}
	}
	return count >= len(catalog)
}

// isDayBlocked reports whether an applicable blocked-day row closes the date
func isDayBlocked(days []*domain.BlockedDay, clientID int64) bool {
	for _, d := range days {
		if d.IsClosed() && d.AppliesTo(clientID) {
			return true
		}
	}
	return false
}

// isDateInPast reports whether the date is before today (local dates only)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
