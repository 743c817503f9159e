package create_client

import "github.com/tadbeer-it/TDB-FieldService/internal/service/clients/models"

// CreateClientRequest HTTP request model
type CreateClientRequest struct {
	NameAr string  `json:"nameAr"`
	NameEn string  `json:"nameEn"`
	Phone  string  `json:"phone"`
	Email  *string `json:"email,omitempty"`
}

// ToServiceRequest converts the HTTP request to the service model
func (r *CreateClientRequest) ToServiceRequest(userID int64) *models.CreateClientRequest {
	return &models.CreateClientRequest{
		UserID: userID,
		NameAr: r.NameAr,
		NameEn: r.NameEn,
		Phone:  r.Phone,
		Email:  r.Email,
	}
}
