package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied is returned when the requester may not touch the booking
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel is returned for bookings in a non-cancellable state
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrEditWindowClosed is returned when the appointment is less than the
	// edit window away and the requester is not an admin
	ErrEditWindowClosed = errors.New("edit window closed")

	// ErrInvalidInput is returned on invalid request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("service: internal error")
)
