package domain

// Default configuration values
const (
	DefaultEditWindowHours = 24
)

// Business validation constants
const (
	MaxTaskTextLength           = 1000
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DefaultSlotCatalog is the fixed daily catalog of ten one-hour visit slots.
// The effective catalog is configurable ([booking].slot_catalog); this is the
// fallback when the config omits it.
var DefaultSlotCatalog = []string{
	"09:00 AM",
	"10:00 AM",
	"11:00 AM",
	"12:00 PM",
	"01:00 PM",
	"02:00 PM",
	"03:00 PM",
	"04:00 PM",
	"05:00 PM",
	"06:00 PM",
}

// KnownBookingStatuses statuses this service writes. Reads tolerate other
// values (see Booking.IsCancelled).
var KnownBookingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
	StatusCompleted,
}

// KnownTaskStatuses statuses the task status machine accepts
var KnownTaskStatuses = []TaskStatus{
	TaskStatusPending,
	TaskStatusCompleted,
	TaskStatusPostponed,
	TaskStatusCancelled,
}
