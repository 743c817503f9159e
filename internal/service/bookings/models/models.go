package models

import (
	"errors"
	"time"

	"github.com/tadbeer-it/TDB-FieldService/internal/domain"
)

var (
	// ErrInvalidStatus is returned for unrecognised status strings
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request models

// CancelBookingRequest request to cancel a booking
type CancelBookingRequest struct {
	UserID             int64  `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
}

// GetClientBookingsRequest request to list a client's bookings
type GetClientBookingsRequest struct {
	UserID           int64   `json:"userId"`
	ClientID         int64   `json:"clientId"`
	Status           *string `json:"status,omitempty"`
	IncludeCancelled bool    `json:"includeCancelled,omitempty"`
}

// ToDomainFilter converts the request into a domain filter
func (r *GetClientBookingsRequest) ToDomainFilter() (domain.ClientBookingsFilter, error) {
	filter := domain.ClientBookingsFilter{
		ClientID:         r.ClientID,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response models

// BookingResponse booking DTO
type BookingResponse struct {
	ID          int64   `json:"id"`
	ClientID    *int64  `json:"clientId,omitempty"`
	UserID      int64   `json:"userId"`
	BookingDate string  `json:"bookingDate"`         // "2026-09-15"
	StartTime   *string `json:"startTime,omitempty"` // "09:00 AM"
	Status      string  `json:"status"`
	BranchID    *int64  `json:"branchId,omitempty"`
	BranchName  *string `json:"branchName,omitempty"`
	Notes       *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse list of bookings
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Conversion helpers

// FromDomainBooking converts a domain booking into a DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		ClientID:           b.ClientID,
		UserID:             b.UserID,
		BookingDate:        b.BookingDate.Format(domain.DateFormat),
		Status:             string(b.Status),
		BranchID:           b.BranchID,
		BranchName:         b.BranchName,
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.StartTime != nil {
		s := b.StartTime.String()
		resp.StartTime = &s
	}
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList converts a list of domain bookings into DTOs
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, b := range bookings {
		if dto := FromDomainBooking(b); dto != nil {
			resp.Bookings = append(resp.Bookings, *dto)
		}
	}

	return resp
}

// ToDomainBookingStatus converts and validates a status string
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	for _, valid := range domain.KnownBookingStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
