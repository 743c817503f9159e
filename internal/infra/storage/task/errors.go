package task

import "errors"

var (
	// ErrTaskNotFound is returned when no visit task matches the query
	ErrTaskNotFound = errors.New("task.repository: visit task not found")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("task.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("task.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("task.repository: failed to scan row")
)
