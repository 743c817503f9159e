package create_task

import "github.com/tadbeer-it/TDB-FieldService/internal/service/tasks/models"

// CreateTaskRequest HTTP request model
type CreateTaskRequest struct {
	ClientID  int64  `json:"clientId"`
	BookingID *int64 `json:"bookingId,omitempty"` // omit for a general task
	Text      string `json:"text"`
	Type      string `json:"type"` // "standard" or "client_request"
}

// ToServiceRequest converts the HTTP request to the service model
func (r *CreateTaskRequest) ToServiceRequest(userID int64) *models.CreateTaskRequest {
	return &models.CreateTaskRequest{
		UserID:    userID,
		ClientID:  r.ClientID,
		BookingID: r.BookingID,
		Text:      r.Text,
		Type:      r.Type,
	}
}
