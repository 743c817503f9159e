package get_available_slots

import (
	"time"

	"github.com/tadbeer-it/TDB-FieldService/internal/domain"
	"github.com/tadbeer-it/TDB-FieldService/pkg/types"
)

// isSlotTaken reports whether some non-cancelled booking occupies the given
// (date, slot) pair. Cancelled bookings free their slot immediately and
// permanently; bookings without a start time never occupy a catalog slot.
// A malformed stored time simply never matches.
func isSlotTaken(date time.Time, slot types.TimeString, bookings []*domain.Booking) bool {
	for _, b := range bookings {
		if !b.OccupiesSlot() {
			continue
		}
		if !b.IsOnDate(date) {
			continue
		}
		if b.StartTime == nil {
			continue
		}
		if b.StartTime.Equal(slot) {
			return true
		}
	}
	return false
}

// countActiveBookings counts the non-cancelled bookings on the date
func countActiveBookings(date time.Time, bookings []*domain.Booking) int {
	count := 0
	for _, b := range bookings {
		if b.OccupiesSlot() && b.IsOnDate(date) {
			count++
		}
	}
	return count
}

// isDayFullyBooked reports whether the date has at least as many non-cancelled
// bookings as the catalog has slots.
//
// This is a count against the catalog size, not a set difference of taken
// slots: legacy bookings at off-catalog times can push the count to the
// threshold while some catalog slot is still literally free. Kept this way on
// purpose; isDayFullyBookedStrict is the exact variant, selected through the
// strict_full_day config flag.
func isDayFullyBooked(date time.Time, bookings []*domain.Booking, catalog []types.TimeString) bool {
	if len(catalog) == 0 {
		return false
	}
	return countActiveBookings(date, bookings) >= len(catalog)
}

// isDayFullyBookedStrict reports whether every catalog slot is literally taken
func isDayFullyBookedStrict(date time.Time, bookings []*domain.Booking, catalog []types.TimeString) bool {
	if len(catalog) == 0 {
		return false
	}
	for _, slot := range catalog {
		if !isSlotTaken(date, slot, bookings) {
			return false
		}
	}
	return true
}

// buildSlots maps the catalog to per-slot availability, in catalog order
func buildSlots(date time.Time, bookings []*domain.Booking, catalog []types.TimeString) []Slot {
	slots := make([]Slot, len(catalog))
	for i, slot := range catalog {
		slots[i] = Slot{
			StartTime: slot,
			Taken:     isSlotTaken(date, slot, bookings),
		}
	}
	return slots
}

// isDayBlocked reports whether any applicable blocked-day row closes the date
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
