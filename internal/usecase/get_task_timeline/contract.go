package get_task_timeline

import (
	"context"
	"time"

	"github.com/tadbeer-it/TDB-FieldService/internal/domain"
)

// BookingRepository booking repository interface
type BookingRepository interface {
	GetByClientWithFilter(ctx context.Context, filter domain.ClientBookingsFilter) ([]*domain.Booking, error)
}

// TaskRepository visit task repository interface
type TaskRepository interface {
	GetByClientID(ctx context.Context, clientID int64) ([]*domain.VisitTask, error)
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
