package delete_task

import (
	"context"

	"github.com/tadbeer-it/TDB-FieldService/internal/service/tasks/models"
)

type TaskService interface {
	Delete(ctx context.Context, req *models.DeleteTaskRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
