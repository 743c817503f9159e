package models

import (
	"time"

	"github.com/tadbeer-it/TDB-FieldService/internal/domain"
)

// CreateTaskRequest request to create a visit task
type CreateTaskRequest struct {
	UserID    int64
	ClientID  int64
	BookingID *int64
	Text      string
	Type      string
}

// UpdateTaskStatusRequest request to move a task to a new status
type UpdateTaskStatusRequest struct {
	UserID int64
	TaskID int64
	Status string
}

// DeleteTaskRequest request to soft delete a task
type DeleteTaskRequest struct {
	UserID int64
	TaskID int64
}

// TaskResponse visit task representation returned to callers
type TaskResponse struct {
	ID          int64     `json:"id"`
	ClientID    int64     `json:"client_id"`
	BookingID   *int64    `json:"booking_id,omitempty"`
	Text        string    `json:"text"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	IsCompleted bool      `json:"is_completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FromDomainTask converts a domain task to the response model
func FromDomainTask(t *domain.VisitTask) *TaskResponse {
	if t == nil {
		return nil
	}

	return &TaskResponse{
		ID:          t.ID,
		ClientID:    t.ClientID,
		BookingID:   t.BookingID,
		Text:        t.Text,
		Type:        string(t.Type),
		Status:      string(t.Status),
		IsCompleted: t.IsCompleted,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// ToDomainTask converts a create request to a domain task
func (r *CreateTaskRequest) ToDomainTask() *domain.VisitTask {
	return &domain.VisitTask{
		ClientID:    r.ClientID,
		BookingID:   r.BookingID,
		CreatedByID: r.UserID,
		Text:        r.Text,
		Type:        domain.TaskType(r.Type),
		Status:      domain.TaskStatusPending,
	}
}
