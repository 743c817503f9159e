package get_available_slots

import (
	"time"

	"github.com/tadbeer-it/TDB-FieldService/pkg/types"
)

// Request request for a day's slot availability
type Request struct {
	UserID   int64     // requesting account (for logging only)
	ClientID int64     // client the visit would be for
	Date     time.Time // calendar date, no time component
}

// Response a day's slot availability
type Response struct {
	Date        time.Time
	ClientID    int64
	DayBlocked  bool   // admin closed the date (globally or for this client)
	FullyBooked bool   // all catalog slots are considered occupied
	Slots       []Slot // one entry per catalog slot, in catalog order
}

// Slot availability of one catalog slot
type Slot struct {
	StartTime types.TimeString
	Taken     bool
}
