package update_task_status

import (
	"context"

	"github.com/tadbeer-it/TDB-FieldService/internal/service/tasks/models"
)

type TaskService interface {
	UpdateStatus(ctx context.Context, req *models.UpdateTaskStatusRequest) (*models.TaskResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
