package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tadbeer-it/TDB-FieldService/internal/domain"
	"github.com/tadbeer-it/TDB-FieldService/pkg/types"
)

var testDate = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

func testCatalog() []types.TimeString {
	catalog := make([]types.TimeString, len(domain.DefaultSlotCatalog))
	for i, s := range domain.DefaultSlotCatalog {
		catalog[i] = types.TimeString(s)
	}
	return catalog
}

func booking(status domain.BookingStatus, start string) *domain.Booking {
	b := &domain.Booking{
		BookingDate: testDate,
		Status:      status,
	}
	if start != "" {
		ts := types.TimeString(start)
		b.StartTime = &ts
	}
	return b
}

func TestIsSlotTaken(t *testing.T) {
	tests := []struct {
		name     string
		bookings []*domain.Booking
		slot     types.TimeString
		want     bool
	}{
		{
			name:     "pending booking occupies its slot",
			bookings: []*domain.Booking{booking(domain.StatusPending, "09:00 AM")},
			slot:     "09:00 AM",
			want:     true,
		},
		{
			name:     "confirmed booking occupies its slot",
			bookings: []*domain.Booking{booking(domain.StatusConfirmed, "09:00 AM")},
			slot:     "09:00 AM",
			want:     true,
		},
		{
			name:     "cancelled booking frees its slot",
			bookings: []*domain.Booking{booking(domain.StatusCancelled, "09:00 AM")},
			slot:     "09:00 AM",
			want:     false,
		},
		{
			name:     "unknown status still occupies",
			bookings: []*domain.Booking{booking(domain.BookingStatus("archived"), "09:00 AM")},
			slot:     "09:00 AM",
			want:     true,
		},
		{
			name:     "different slot is free",
			bookings: []*domain.Booking{booking(domain.StatusPending, "09:00 AM")},
			slot:     "10:00 AM",
			want:     false,
		},
		{
			name:     "booking without start time occupies nothing",
			bookings: []*domain.Booking{booking(domain.StatusPending, "")},
			slot:     "09:00 AM",
			want:     false,
		},
		{
			name:     "case-insensitive time match",
			bookings: []*domain.Booking{booking(domain.StatusPending, "09:00 am")},
			slot:     "09:00 AM",
			want:     true,
		},
		{
			name:     "malformed stored time never matches",
			bookings: []*domain.Booking{booking(domain.StatusPending, "morning-ish")},
			slot:     "09:00 AM",
			want:     false,
		},
		{
			name: "booking on another date does not count",
			bookings: []*domain.Booking{
				{
					BookingDate: testDate.AddDate(0, 0, 1),
					Status:      domain.StatusPending,
					StartTime:   timePtr("09:00 AM"),
				},
			},
			slot: "09:00 AM",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isSlotTaken(testDate, tt.slot, tt.bookings))
		})
	}
}

func timePtr(s string) *types.TimeString {
	ts := types.TimeString(s)
	return &ts
}

func TestIsDayFullyBooked(t *testing.T) {
	catalog := testCatalog()

	t.Run("empty day is not full", func(t *testing.T) {
		assert.False(t, isDayFullyBooked(testDate, nil, catalog))
	})

	t.Run("nine of ten slots booked is not full", func(t *testing.T) {
		bookings := make([]*domain.Booking, 0, 9)
		for _, s := range domain.DefaultSlotCatalog[:9] {
			bookings = append(bookings, booking(domain.StatusConfirmed, s))
		}
		assert.False(t, isDayFullyBooked(testDate, bookings, catalog))
	})

	t.Run("ten active bookings make the day full", func(t *testing.T) {
		bookings := make([]*domain.Booking, 0, 10)
		for _, s := range domain.DefaultSlotCatalog {
			bookings = append(bookings, booking(domain.StatusConfirmed, s))
		}
		assert.True(t, isDayFullyBooked(testDate, bookings, catalog))
	})

	t.Run("cancelled bookings do not count toward capacity", func(t *testing.T) {
		bookings := make([]*domain.Booking, 0, 10)
		for _, s := range domain.DefaultSlotCatalog {
			bookings = append(bookings, booking(domain.StatusCancelled, s))
		}
		assert.False(t, isDayFullyBooked(testDate, bookings, catalog))
	})

	t.Run("off-catalog bookings count toward the threshold", func(t *testing.T) {
		// ten unscheduled bookings exhaust the count even though every
		// catalog slot is literally free
		bookings := make([]*domain.Booking, 0, 10)
		for i := 0; i < 10; i++ {
			bookings = append(bookings, booking(domain.StatusConfirmed, ""))
		}
		assert.True(t, isDayFullyBooked(testDate, bookings, catalog))
		assert.False(t, isDayFullyBookedStrict(testDate, bookings, catalog))
	})

	t.Run("empty catalog is never full", func(t *testing.T) {
		assert.False(t, isDayFullyBooked(testDate, nil, nil))
		assert.False(t, isDayFullyBookedStrict(testDate, nil, nil))
	})
}

func TestIsDayFullyBookedStrict(t *testing.T) {
	catalog := testCatalog()

	bookings := make([]*domain.Booking, 0, len(catalog))
	for _, s := range domain.DefaultSlotCatalog {
		bookings = append(bookings, booking(domain.StatusConfirmed, s))
	}
	assert.True(t, isDayFullyBookedStrict(testDate, bookings, catalog))

	// free one slot
	bookings[3].Status = domain.StatusCancelled
	assert.False(t, isDayFullyBookedStrict(testDate, bookings, catalog))
}

func TestBuildSlots(t *testing.T) {
	catalog := testCatalog()
	bookings := []*domain.Booking{
		booking(domain.StatusConfirmed, "10:00 AM"),
		booking(domain.StatusCancelled, "11:00 AM"),
	}

	slots := buildSlots(testDate, bookings, catalog)
	assert.Len(t, slots, len(catalog))

	// catalog order is preserved
	for i, slot := range slots {
		assert.Equal(t, catalog[i], slot.StartTime)
	}

	assert.False(t, slots[0].Taken) // 09:00 AM
	assert.True(t, slots[1].Taken)  // 10:00 AM
	assert.False(t, slots[2].Taken) // 11:00 AM, cancelled frees the slot
}

func TestIsDayBlocked(t *testing.T) {
	clientID := int64(7)
	otherID := int64(8)

	globalClosed := &domain.BlockedDay{Date: testDate, Status: domain.DayClosed}
	clientClosed := &domain.BlockedDay{Date: testDate, ClientID: &clientID, Status: domain.DayClosed}
	otherClosed := &domain.BlockedDay{Date: testDate, ClientID: &otherID, Status: domain.DayClosed}
	globalOpen := &domain.BlockedDay{Date: testDate, Status: domain.DayOpen}

	assert.True(t, isDayBlocked([]*domain.BlockedDay{globalClosed}, clientID))
	assert.True(t, isDayBlocked([]*domain.BlockedDay{clientClosed}, clientID))
	assert.False(t, isDayBlocked([]*domain.BlockedDay{otherClosed}, clientID))
	assert.False(t, isDayBlocked([]*domain.BlockedDay{globalOpen}, clientID))
	assert.False(t, isDayBlocked(nil, clientID))
}

func TestIsDateInPast(t *testing.T) {
	now := time.Date(2026, 9, 15, 13, 45, 0, 0, time.UTC)

	assert.True(t, isDateInPast(time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC), now))
	// same calendar date is not past, regardless of the clock
	assert.False(t, isDateInPast(time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), now))
	assert.False(t, isDateInPast(time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC), now))
}
