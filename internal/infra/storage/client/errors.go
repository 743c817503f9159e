package client

import "errors"

var (
	// ErrClientNotFound is returned when no client matches the query
	ErrClientNotFound = errors.New("client.repository: client not found")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("client.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("client.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("client.repository: failed to scan row")
)
