package reschedule_booking

import (
	"context"
	"time"

	"github.com/tadbeer-it/TDB-FieldService/internal/domain"
	"github.com/tadbeer-it/TDB-FieldService/pkg/types"
)

// BookingRepository booking repository interface
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
	UpdateSchedule(ctx context.Context, id int64, date time.Time, start *types.TimeString) error
}

// BlockedDayRepository blocked day repository interface
type BlockedDayRepository interface {
	GetForDate(ctx context.Context, date time.Time, clientID *int64) ([]*domain.BlockedDay, error)
}

// IdentityClient resolves admin rights through the identity service
type IdentityClient interface {
	IsAdmin(ctx context.Context, userID int64) bool
}

// TransactionManager interface for transaction control
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
