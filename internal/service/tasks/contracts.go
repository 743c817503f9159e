package tasks

import (
	"context"

	"github.com/tadbeer-it/TDB-FieldService/internal/domain"
)

// TaskRepository visit task repository interface
type TaskRepository interface {
	Create(ctx context.Context, t *domain.VisitTask) (*domain.VisitTask, error)
	GetByID(ctx context.Context, id int64) (*domain.VisitTask, error)
	UpdateStatus(ctx context.Context, id int64, status domain.TaskStatus) error
	SoftDelete(ctx context.Context, id int64) error
}

// BookingRepository booking repository interface
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
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
