package reschedule_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tadbeer-it/TDB-FieldService/internal/domain"
	bookingRepo "github.com/tadbeer-it/TDB-FieldService/internal/infra/storage/booking"
	"github.com/tadbeer-it/TDB-FieldService/pkg/types"
)

// UseCase use case for rescheduling a booking
type UseCase struct {
	bookingRepo     BookingRepository
	blockedDayRepo  BlockedDayRepository
	identityClient  IdentityClient
	txManager       TransactionManager
	catalog         []types.TimeString
	editWindowHours int
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the use case
func NewUseCase(
	bookingRepo BookingRepository,
	blockedDayRepo BlockedDayRepository,
	identityClient IdentityClient,
	txManager TransactionManager,
	catalog []types.TimeString,
	editWindowHours int,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:     bookingRepo,
		blockedDayRepo:  blockedDayRepo,
		identityClient:  identityClient,
		txManager:       txManager,
		catalog:         catalog,
		editWindowHours: editWindowHours,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute moves a booking to a new date/slot. Clients may only move their own
// bookings and only while the appointment is at least the edit window away;
// admins bypass both restrictions.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleBooking: booking=%d, user=%d, date=%s",
		req.BookingID, req.UserID, req.Date.Format(domain.DateFormat))

	if err := uc.validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleBooking: validation failed: %v", err)
		return nil, err
	}

	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("RescheduleBooking: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("RescheduleBooking: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if !booking.CanBeRescheduled() {
		uc.logger.Warn("RescheduleBooking: booking id=%d has status=%s", req.BookingID, booking.Status)
		return nil, ErrCannotReschedule
	}

	now := uc.timeProvider.Now()

	isAdmin := uc.identityClient.IsAdmin(ctx, req.UserID)
	if !isAdmin {
		if booking.UserID != req.UserID {
			uc.logger.Warn("RescheduleBooking: user=%d does not own booking id=%d", req.UserID, req.BookingID)
			return nil, ErrAccessDenied
		}

		editable, err := booking.EditableAt(now, uc.editWindowHours)
		if err != nil {
			// Stored time string is unreadable; refuse rather than misparse
			uc.logger.Error("RescheduleBooking: booking id=%d has malformed start time: %v", req.BookingID, err)
			return nil, fmt.Errorf("%w: malformed start time: %v", ErrInternal, err)
		}
		if !editable {
			uc.logger.Warn("RescheduleBooking: edit window closed for booking id=%d", req.BookingID)
			return nil, ErrEditWindowClosed
		}
	}

	if isDateInPast(req.Date, now) {
		uc.logger.Warn("RescheduleBooking: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	blockedDays, err := uc.blockedDayRepo.GetForDate(ctx, req.Date, booking.ClientID)
	if err != nil {
		uc.logger.Error("RescheduleBooking: failed to get blocked days: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocked days: %v", ErrInternal, err)
	}
	if booking.ClientID != nil && isDayBlocked(blockedDays, *booking.ClientID) {
		uc.logger.Warn("RescheduleBooking: date %s is blocked for client=%d",
			req.Date.Format(domain.DateFormat), *booking.ClientID)
		return nil, ErrDayBlocked
	}

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		dayBookings, err := uc.bookingRepo.GetByDate(txCtx, req.Date)
		if err != nil {
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		if req.StartTime != nil && slotTakenByOther(req.Date, *req.StartTime, dayBookings, booking.ID) {
			return ErrSlotTaken
		}

		if err := uc.bookingRepo.UpdateSchedule(txCtx, booking.ID, req.Date, req.StartTime); err != nil {
			if errors.Is(err, bookingRepo.ErrSlotConflict) {
				return ErrSlotTaken
			}
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to update schedule: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotTaken) {
			uc.logger.Warn("RescheduleBooking: slot on %s already taken", req.Date.Format(domain.DateFormat))
		} else if !errors.Is(err, ErrBookingNotFound) {
			uc.logger.Error("RescheduleBooking: transaction failed: %v", err)
		}
		return nil, err
	}

	uc.logger.Info("RescheduleBooking: booking id=%d moved to %s", booking.ID, req.Date.Format(domain.DateFormat))

	return &Response{
		ID:        booking.ID,
		ClientID:  booking.ClientID,
		Date:      req.Date,
		StartTime: req.StartTime,
		Status:    string(booking.Status),
	}, nil
}

func (uc *UseCase) validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.StartTime != nil {
		if err := req.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
		}
		if !slotInCatalog(*req.StartTime, uc.catalog) {
			return ErrSlotNotInCatalog
		}
	}
	return nil
}

// slotInCatalog reports whether t is one of the configured daily slots
func slotInCatalog(t types.TimeString, catalog []types.TimeString) bool {
	for _, slot := range catalog {
		if slot.Equal(t) {
			return true
		}
	}
	return false
}

// slotTakenByOther reports whether a non-cancelled booking other than selfID
// occupies (date, slot)
func slotTakenByOther(date time.Time, slot types.TimeString, bookings []*domain.Booking, selfID int64) bool {
	for _, b := range bookings {
		if b.ID == selfID {
			continue
		}
		if !b.OccupiesSlot() || !b.IsOnDate(date) || b.StartTime == nil {
			continue
		}
		if b.StartTime.Equal(slot) {
			return true
		}
	}
	return false
}

// isDayBlocked reports whether an applicable blocked-day row closes the date
func isDayBlocked(days []*domain.BlockedDay, clientID int64) bool {
	for _, d := range days {
		if d.IsClosed() && d.AppliesTo(clientID) {
			return true
		}
	}
	return false
}

// isDateInPast reports whether the date is before today (local dates only)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
