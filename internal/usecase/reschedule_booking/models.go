package reschedule_booking

import (
	"time"

	"github.com/tadbeer-it/TDB-FieldService/pkg/types"
)

// Request request to move a booking to a new date and slot
type Request struct {
	BookingID int64
	UserID    int64
	Date      time.Time
	StartTime *types.TimeString // nil = keep the visit unscheduled within the day
}

// Response rescheduled booking
type Response struct {
	ID        int64
	ClientID  *int64
	Date      time.Time
	StartTime *types.TimeString
	Status    string
}
