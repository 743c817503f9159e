package reschedule_booking

import (
	"time"

	"github.com/tadbeer-it/TDB-FieldService/internal/domain"
	rescheduleBooking "github.com/tadbeer-it/TDB-FieldService/internal/usecase/reschedule_booking"
	"github.com/tadbeer-it/TDB-FieldService/pkg/types"
)

// RescheduleBookingRequest HTTP request model
type RescheduleBookingRequest struct {
	BookingDate string  `json:"bookingDate"`         // "2026-09-15"
	StartTime   *string `json:"startTime,omitempty"` // "09:00 AM", omit to keep the visit unscheduled
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64   `json:"id"`
	ClientID    *int64  `json:"clientId,omitempty"`
	BookingDate string  `json:"bookingDate"`
	StartTime   *string `json:"startTime,omitempty"`
	Status      string  `json:"status"`
}

// ToUseCaseRequest builds the use case request, parsing date and time
func (r *RescheduleBookingRequest) ToUseCaseRequest(bookingID, userID int64) (*rescheduleBooking.Request, error) {
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

	return &rescheduleBooking.Request{
		BookingID: bookingID,
		UserID:    userID,
		Date:      bookingDate,
		StartTime: startTime,
	}, nil
}

// FromUseCaseResponse converts the use case response to the HTTP model
func FromUseCaseResponse(resp *rescheduleBooking.Response) *BookingResponse {
	result := &BookingResponse{
		ID:          resp.ID,
		ClientID:    resp.ClientID,
		BookingDate: resp.Date.Format(domain.DateFormat),
		Status:      resp.Status,
	}

	if resp.StartTime != nil {
		s := resp.StartTime.String()
		result.StartTime = &s
	}

	return result
}
