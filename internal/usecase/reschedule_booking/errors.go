package reschedule_booking

import "errors"

var (
	// ErrInvalidInput is returned on invalid request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDate is returned for dates in the past
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied is returned when the requester may not touch the booking
	ErrAccessDenied = errors.New("access denied")

	// ErrEditWindowClosed is returned when the appointment is less than the
	// edit window away and the requester is not an admin
	ErrEditWindowClosed = errors.New("edit window closed")

	// ErrCannotReschedule is returned for bookings in a terminal state
	ErrCannotReschedule = errors.New("booking cannot be rescheduled")

	// ErrDayBlocked is returned when the new date is closed by an admin block
	ErrDayBlocked = errors.New("day is blocked for booking")

	// ErrSlotTaken is returned when the requested slot is already occupied
	ErrSlotTaken = errors.New("slot is already booked")

	// ErrSlotNotInCatalog is returned when the requested time is not one of
	// the configured daily slots
	ErrSlotNotInCatalog = errors.New("time is not a bookable slot")

	// ErrInternal is returned on internal usecase errors
	ErrInternal = errors.New("usecase: internal error")
)
