package set_blocked_day

import (
	"context"

	"github.com/tadbeer-it/TDB-FieldService/internal/service/blockeddays/models"
)

type BlockedDayService interface {
	Set(ctx context.Context, req *models.SetBlockedDayRequest) (*models.BlockedDayResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
