package domain

import "time"

// TaskStatus represents the lifecycle status of a visit task
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
	TaskStatusPostponed TaskStatus = "postponed"
	TaskStatusCancelled TaskStatus = "cancelled"
)

// TaskType distinguishes admin-planned work from ad-hoc client requests
type TaskType string

const (
	TaskTypeStandard      TaskType = "standard"
	TaskTypeClientRequest TaskType = "client_request"
)

// VisitTask represents a unit of work for a client, either attached to a
// scheduled booking or kept general/unscheduled (BookingID == nil)
type VisitTask struct {
	ID          int64
	BookingID   *int64
	ClientID    int64
	CreatedByID int64

	Text        string
	IsCompleted bool
	Status      TaskStatus
	Type        TaskType

	DeletedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsGeneral reports whether the task is not linked to any booking
func (t *VisitTask) IsGeneral() bool {
	return t.BookingID == nil
}

// IsOpen reports whether the task still needs attention (pending or postponed).
// Unknown status strings deliberately count as open, so legacy records are
// never silently treated as done.
func (t *VisitTask) IsOpen() bool {
	return t.Status != TaskStatusCompleted && t.Status != TaskStatusCancelled
}

// CanTransitionTo reports whether the status machine allows moving the task
// to next. completed and cancelled are terminal for this service; external
// writers may still change them directly in the store.
func (t *VisitTask) CanTransitionTo(next TaskStatus) bool {
	switch t.Status {
	case TaskStatusPending:
		return next == TaskStatusCompleted || next == TaskStatusPostponed || next == TaskStatusCancelled
	case TaskStatusPostponed:
		return next == TaskStatusPending || next == TaskStatusCompleted || next == TaskStatusCancelled
	default:
		return false
	}
}
