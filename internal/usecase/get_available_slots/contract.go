package get_available_slots

import (
	"context"
	"time"

	"github.com/tadbeer-it/TDB-FieldService/internal/domain"
)

// BookingRepository booking repository interface
type BookingRepository interface {
	// GetByDate fetches every booking on the calendar date, cancelled included
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
}

// BlockedDayRepository blocked day repository interface
type BlockedDayRepository interface {
	GetForDate(ctx context.Context, date time.Time, clientID *int64) ([]*domain.BlockedDay, error)
}

// TimeProvider interface for obtaining the current time (for testing)
type TimeProvider interface {
	Now() time.Time
}

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider production time provider
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
