package clients

import "errors"

var (
	// ErrClientNotFound client not found
	ErrClientNotFound = errors.New("clients.service: client not found")
	// ErrAccessDenied only admins may manage client records
	ErrAccessDenied = errors.New("clients.service: access denied")
	// ErrInvalidInput invalid input data
	ErrInvalidInput = errors.New("clients.service: invalid input data")
	// ErrInternal internal service error
	ErrInternal = errors.New("clients.service: internal error")
)
