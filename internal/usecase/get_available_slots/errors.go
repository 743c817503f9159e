package get_available_slots

import "errors"

var (
	// ErrInvalidInput is returned on invalid request data
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDate is returned for dates in the past
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrInternal is returned on internal usecase errors
	ErrInternal = errors.New("usecase: internal error")
)
