package clients

import (
	"context"

	"github.com/tadbeer-it/TDB-FieldService/internal/domain"
)

// ClientRepository client repository interface
type ClientRepository interface {
	Create(ctx context.Context, c *domain.Client) (*domain.Client, error)
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
	SoftDelete(ctx context.Context, id int64) error
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
