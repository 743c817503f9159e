package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/tadbeer-it/TDB-FieldService/internal/domain"
	bookingRepo "github.com/tadbeer-it/TDB-FieldService/internal/infra/storage/booking"
	"github.com/tadbeer-it/TDB-FieldService/internal/service/bookings/models"
)

// Service service for reading and cancelling bookings. Creation and
// rescheduling live in their own use cases because they need availability
// checks inside a transaction.
type Service struct {
	bookingRepo     BookingRepository
	identityClient  IdentityClient
	editWindowHours int
	timeProvider    TimeProvider
	logger          Logger
}

// NewService creates a booking service
func NewService(
	bookingRepo BookingRepository,
	identityClient IdentityClient,
	editWindowHours int,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:     bookingRepo,
		identityClient:  identityClient,
		editWindowHours: editWindowHours,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// GetByID fetches a booking. Visible to its creator and to admins.
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != userID && !s.identityClient.IsAdmin(ctx, userID) {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetClientBookings lists a client's bookings with optional status filter
func (s *Service) GetClientBookings(ctx context.Context, req *models.GetClientBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetClientBookings: client=%d, user=%d, status=%v, includeCancelled=%t",
		req.ClientID, req.UserID, req.Status, req.IncludeCancelled)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetClientBookings: invalid filter for client=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByClientWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetClientBookings: repository error for client=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: GetClientBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClientBookings: fetched %d bookings for client=%d", len(bookings), req.ClientID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel cancels a booking. The creator may cancel while the appointment is
// still at least the edit window away; admins may cancel at any time.
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason too long", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if !s.identityClient.IsAdmin(ctx, req.UserID) {
		if booking.UserID != req.UserID {
			s.logger.Warn("Cancel: access denied for user=%d to booking id=%d", req.UserID, bookingID)
			return ErrAccessDenied
		}

		editable, err := booking.EditableAt(s.timeProvider.Now(), s.editWindowHours)
		if err != nil {
			s.logger.Error("Cancel: booking id=%d has malformed start time: %v", bookingID, err)
			return fmt.Errorf("%w: malformed start time: %v", ErrInternal, err)
		}
		if !editable {
			s.logger.Warn("Cancel: edit window closed for booking id=%d", bookingID)
			return ErrEditWindowClosed
		}
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: booking id=%d cancelled", bookingID)
	return nil
}
