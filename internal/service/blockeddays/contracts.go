package blockeddays

import (
	"context"
	"time"

	"github.com/tadbeer-it/TDB-FieldService/internal/domain"
)

// BlockedDayRepository blocked day repository interface
type BlockedDayRepository interface {
	Upsert(ctx context.Context, d *domain.BlockedDay) (*domain.BlockedDay, error)
	GetForDate(ctx context.Context, date time.Time, clientID *int64) ([]*domain.BlockedDay, error)
	List(ctx context.Context) ([]*domain.BlockedDay, error)
}

// IdentityClient resolves admin rights through the identity service
type IdentityClient interface {
	IsAdmin(ctx context.Context, userID int64) bool
}

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
