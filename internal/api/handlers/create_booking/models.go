package create_booking

import (
	"time"

	"github.com/tadbeer-it/TDB-FieldService/internal/domain"
	createBooking "github.com/tadbeer-it/TDB-FieldService/internal/usecase/create_booking"
	"github.com/tadbeer-it/TDB-FieldService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ClientID    int64   `json:"clientId"`
	BookingDate string  `json:"bookingDate"`         // "2026-09-15"
	StartTime   *string `json:"startTime,omitempty"` // "09:00 AM", omit for an unscheduled visit
	BranchID    *int64  `json:"branchId,omitempty"`
	BranchName  *string `json:"branchName,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64   `json:"id"`
	ClientID    int64   `json:"clientId"`
	UserID      int64   `json:"userId"`
	BookingDate string  `json:"bookingDate"`
	StartTime   *string `json:"startTime,omitempty"`
	Status      string  `json:"status"`
	BranchID    *int64  `json:"branchId,omitempty"`
	BranchName  *string `json:"branchName,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// ToUseCaseRequest builds the use case request, parsing date and time
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	var startTime *types.TimeString
	if r.StartTime != nil {
		ts := types.TimeString(*r.StartTime)
		if _, _, err := ts.Clock(); err != nil {
			return nil, err
		}
		startTime = &ts
	}

	return &createBooking.Request{
		UserID:     userID,
		ClientID:   r.ClientID,
		Date:       bookingDate,
		StartTime:  startTime,
		BranchID:   r.BranchID,
		BranchName: r.BranchName,
		Notes:      r.Notes,
	}, nil
}

// FromUseCaseResponse converts the use case response to the HTTP model
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	result := &BookingResponse{
		ID:          resp.ID,
		ClientID:    resp.ClientID,
		UserID:      resp.UserID,
		BookingDate: resp.Date.Format(domain.DateFormat),
		Status:      resp.Status,
		BranchID:    resp.BranchID,
		BranchName:  resp.BranchName,
		Notes:       resp.Notes,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}

	if resp.StartTime != nil {
		s := resp.StartTime.String()
		result.StartTime = &s
	}

	return result
}
