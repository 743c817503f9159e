package blockedday

import "errors"

var (
	// ErrBlockedDayNotFound is returned when no blocked day matches the query
	ErrBlockedDayNotFound = errors.New("blockedday.repository: blocked day not found")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("blockedday.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("blockedday.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("blockedday.repository: failed to scan row")
)
