package blockeddays

import "errors"

var (
	// ErrAccessDenied only admins may change calendar availability
	ErrAccessDenied = errors.New("blockeddays.service: access denied")
	// ErrInvalidInput invalid input data
	ErrInvalidInput = errors.New("blockeddays.service: invalid input data")
	// ErrInternal internal service error
	ErrInternal = errors.New("blockeddays.service: internal error")
)
