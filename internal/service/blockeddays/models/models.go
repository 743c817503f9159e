package models

import (
	"time"

	"github.com/tadbeer-it/TDB-FieldService/internal/domain"
)

// SetBlockedDayRequest request to open or close a calendar date
type SetBlockedDayRequest struct {
	UserID   int64
	Date     string
	ClientID *int64
	Status   string
}

// BlockedDayResponse blocked day representation returned to callers
type BlockedDayResponse struct {
	ID       int64  `json:"id"`
	Date     string `json:"date"`
	ClientID *int64 `json:"client_id,omitempty"`
	Status   string `json:"status"`
}

// BlockedDayListResponse list of blocked days
type BlockedDayListResponse struct {
	Days  []*BlockedDayResponse `json:"days"`
	Total int                   `json:"total"`
}

// ToDomainBlockedDay converts the request to a domain blocked day
func (r *SetBlockedDayRequest) ToDomainBlockedDay() (*domain.BlockedDay, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &domain.BlockedDay{
		Date:     date,
		ClientID: r.ClientID,
		Status:   domain.BlockedDayStatus(r.Status),
	}, nil
}

// FromDomainBlockedDay converts a domain blocked day to the response model
func FromDomainBlockedDay(d *domain.BlockedDay) *BlockedDayResponse {
	if d == nil {
		return nil
	}

	return &BlockedDayResponse{
		ID:       d.ID,
		Date:     d.Date.Format(domain.DateFormat),
		ClientID: d.ClientID,
		Status:   string(d.Status),
	}
}

// FromDomainBlockedDayList converts a list of domain blocked days
func FromDomainBlockedDayList(days []*domain.BlockedDay) *BlockedDayListResponse {
	result := make([]*BlockedDayResponse, 0, len(days))
	for _, d := range days {
		result = append(result, FromDomainBlockedDay(d))
	}

	return &BlockedDayListResponse{
		Days:  result,
		Total: len(result),
	}
}
