package set_blocked_day

import "github.com/tadbeer-it/TDB-FieldService/internal/service/blockeddays/models"

// SetBlockedDayRequest HTTP request model
type SetBlockedDayRequest struct {
	Date     string `json:"date"`               // "2026-09-15"
	ClientID *int64 `json:"clientId,omitempty"` // omit for a global block
	Status   string `json:"status"`             // "open" or "closed"
}

// ToServiceRequest converts the HTTP request to the service model
func (r *SetBlockedDayRequest) ToServiceRequest(userID int64) *models.SetBlockedDayRequest {
	return &models.SetBlockedDayRequest{
		UserID:   userID,
		Date:     r.Date,
		ClientID: r.ClientID,
		Status:   r.Status,
	}
}
