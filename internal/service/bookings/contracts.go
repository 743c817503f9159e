package bookings

import (
	"context"
	"time"

	"github.com/tadbeer-it/TDB-FieldService/internal/domain"
)

// BookingRepository booking repository interface
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByClientWithFilter(ctx context.Context, filter domain.ClientBookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Cancel(ctx context.Context, id int64, reason string) error
}

// IdentityClient resolves admin rights through the identity service
type IdentityClient interface {
	IsAdmin(ctx context.Context, userID int64) bool
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
