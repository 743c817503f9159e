package get_blocked_days

import (
	"context"

	"github.com/tadbeer-it/TDB-FieldService/internal/service/blockeddays/models"
)

type BlockedDayService interface {
	List(ctx context.Context, userID int64) (*models.BlockedDayListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
