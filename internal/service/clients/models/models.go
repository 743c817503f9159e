package models

import (
	"time"

	"github.com/tadbeer-it/TDB-FieldService/internal/domain"
)

// CreateClientRequest request to register a client
type CreateClientRequest struct {
	UserID int64
	NameAr string
	NameEn string
	Phone  string
	Email  *string
}

// ClientResponse client representation returned to callers
type ClientResponse struct {
	ID        int64     `json:"id"`
	NameAr    string    `json:"name_ar"`
	NameEn    string    `json:"name_en"`
	Phone     string    `json:"phone"`
	Email     *string   `json:"email,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// ClientListResponse list of clients
type ClientListResponse struct {
	Clients []*ClientResponse `json:"clients"`
	Total   int               `json:"total"`
}

// ToDomainClient converts the create request to a domain client.
// New clients start active.
func (r *CreateClientRequest) ToDomainClient() *domain.Client {
	return &domain.Client{
		NameAr:   r.NameAr,
		NameEn:   r.NameEn,
		Phone:    r.Phone,
		Email:    r.Email,
		IsActive: true,
	}
}

// FromDomainClient converts a domain client to the response model
func FromDomainClient(c *domain.Client) *ClientResponse {
	if c == nil {
		return nil
	}

	return &ClientResponse{
		ID:        c.ID,
		NameAr:    c.NameAr,
		NameEn:    c.NameEn,
		Phone:     c.Phone,
		Email:     c.Email,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
	}
}

// FromDomainClientList converts a list of domain clients
func FromDomainClientList(clients []*domain.Client) *ClientListResponse {
	result := make([]*ClientResponse, 0, len(clients))
	for _, c := range clients {
		result = append(result, FromDomainClient(c))
	}

	return &ClientListResponse{
		Clients: result,
		Total:   len(result),
	}
}
