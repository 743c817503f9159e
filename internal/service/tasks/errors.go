package tasks

import "errors"

var (
	// ErrTaskNotFound task not found
	ErrTaskNotFound = errors.New("tasks.service: task not found")
	// ErrBookingNotFound linked booking not found
	ErrBookingNotFound = errors.New("tasks.service: booking not found")
	// ErrBookingMismatch linked booking belongs to another client
	ErrBookingMismatch = errors.New("tasks.service: booking belongs to another client")
	// ErrInvalidTransition status transition is not allowed
	ErrInvalidTransition = errors.New("tasks.service: invalid status transition")
	// ErrAccessDenied user has no rights for the task
	ErrAccessDenied = errors.New("tasks.service: access denied")
	// ErrInvalidInput invalid input data
	ErrInvalidInput = errors.New("tasks.service: invalid input data")
	// ErrInternal internal service error
	ErrInternal = errors.New("tasks.service: internal error")
)
