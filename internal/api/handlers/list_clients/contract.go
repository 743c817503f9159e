package list_clients

import (
	"context"

	"github.com/tadbeer-it/TDB-FieldService/internal/service/clients/models"
)

type ClientService interface {
	List(ctx context.Context, userID int64) (*models.ClientListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
