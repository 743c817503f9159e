package create_booking

import (
	"time"

	"github.com/tadbeer-it/TDB-FieldService/pkg/types"
)

// Request request to create a booking
type Request struct {
	UserID     int64
	ClientID   int64
	Date       time.Time
	StartTime  *types.TimeString // nil = visit without a fixed slot
	BranchID   *int64
	BranchName *string
	Notes      *string
}

// Response created booking
type Response struct {
	ID         int64
	ClientID   int64
	UserID     int64
	Date       time.Time
	StartTime  *types.TimeString
	Status     string
	BranchID   *int64
	BranchName *string
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
