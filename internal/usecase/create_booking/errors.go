package create_booking

import "errors"

var (
	// ErrInvalidInput is returned on invalid request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDate is returned for dates in the past
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrClientNotFound is returned when the client record does not exist
	ErrClientNotFound = errors.New("client not found")

	// ErrClientInactive is returned when the client record is deactivated
	ErrClientInactive = errors.New("client is inactive")

	// ErrDayBlocked is returned when the date is closed by an admin block
	ErrDayBlocked = errors.New("day is blocked for booking")

	// ErrSlotTaken is returned when the requested slot is already occupied
	ErrSlotTaken = errors.New("slot is already booked")

	// ErrDayFullyBooked is returned when the date has no free capacity left
	ErrDayFullyBooked = errors.New("day is fully booked")

	// ErrSlotNotInCatalog is returned when the requested time is not one of
	// the configured daily slots
	ErrSlotNotInCatalog = errors.New("time is not a bookable slot")

	// ErrInternal is returned on internal usecase errors
	ErrInternal = errors.New("usecase: internal error")
)
