package get_task_timeline

import (
	"time"

	"github.com/tadbeer-it/TDB-FieldService/internal/domain"
)

// Request request for a client's task timeline
type Request struct {
	UserID   int64 // requesting account (for logging only)
	ClientID int64
}

// Response ordered task timeline
type Response struct {
	ClientID int64
	Groups   []TimelineGroup
}

// TimelineGroup one card in the client's timeline: either the general bucket
// of unscheduled open tasks or the tasks of one scheduled visit
type TimelineGroup struct {
	ID        string // "general" or "booking-<id>"
	Title     string // Arabic, what the client app shows
	Subtitle  string
	IsGeneral bool
	SortDate  *time.Time // nil for the general group
	Tasks     []*domain.VisitTask
}
