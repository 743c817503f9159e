package create_task

import (
	"context"

	"github.com/tadbeer-it/TDB-FieldService/internal/service/tasks/models"
)

type TaskService interface {
	Create(ctx context.Context, req *models.CreateTaskRequest) (*models.TaskResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
