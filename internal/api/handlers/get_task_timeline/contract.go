package get_task_timeline

import (
	"context"

	getTaskTimeline "github.com/tadbeer-it/TDB-FieldService/internal/usecase/get_task_timeline"
)

type GetTaskTimelineUseCase interface {
	Execute(ctx context.Context, req *getTaskTimeline.Request) (*getTaskTimeline.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
