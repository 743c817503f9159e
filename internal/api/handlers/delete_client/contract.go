package delete_client

import "context"

type ClientService interface {
	Delete(ctx context.Context, userID, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
