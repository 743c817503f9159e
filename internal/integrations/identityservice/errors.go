package identityservice

import "errors"

var (
	// ErrStaffNotFound is returned when the identity service knows no staff
	// record for the user
	ErrStaffNotFound = errors.New("identityservice client: staff not found")

	// ErrInternal is returned on internal client errors
	ErrInternal = errors.New("identityservice client: internal error")

	// ErrInvalidResponse is returned on an unexpected response from the service
	ErrInvalidResponse = errors.New("identityservice client: invalid response")
)
