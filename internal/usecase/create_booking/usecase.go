package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/tadbeer-it/TDB-FieldService/internal/domain"
	bookingRepo "github.com/tadbeer-it/TDB-FieldService/internal/infra/storage/booking"
	clientRepo "github.com/tadbeer-it/TDB-FieldService/internal/infra/storage/client"
	"github.com/tadbeer-it/TDB-FieldService/pkg/ptr"
	"github.com/tadbeer-it/TDB-FieldService/pkg/types"
)

// UseCase use case for creating a booking
type UseCase struct {
	bookingRepo    BookingRepository
	blockedDayRepo BlockedDayRepository
	clientRepo     ClientRepository
	txManager      TransactionManager
	catalog        []types.TimeString
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase creates the use case
func NewUseCase(
	bookingRepo BookingRepository,
	blockedDayRepo BlockedDayRepository,
	clientRepo ClientRepository,
	txManager TransactionManager,
	catalog []types.TimeString,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		blockedDayRepo: blockedDayRepo,
		clientRepo:     clientRepo,
		txManager:      txManager,
		catalog:        catalog,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute creates a booking. The availability check and the insert run inside
// one serializable transaction with the day's rows locked, so two concurrent
// requests for the same slot cannot both pass the check; the partial unique
// index on (booking_date, start_time) backs this up at the store level.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	startTimeLog := "none"
	if req.StartTime != nil {
		startTimeLog = req.StartTime.String()
	}
	uc.logger.Info("CreateBooking: user=%d, client=%d, date=%s, time=%s",
		req.UserID, req.ClientID, req.Date.Format(domain.DateFormat), startTimeLog)

	if err := validateRequest(req, uc.catalog); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("CreateBooking: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	client, err := uc.clientRepo.GetByID(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			uc.logger.Warn("CreateBooking: client id=%d not found", req.ClientID)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("CreateBooking: failed to get client id=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}
	if !client.IsActive {
		uc.logger.Warn("CreateBooking: client id=%d is inactive", req.ClientID)
		return nil, ErrClientInactive
	}

	blockedDays, err := uc.blockedDayRepo.GetForDate(ctx, req.Date, ptr.Ptr(req.ClientID))
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get blocked days: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocked days: %v", ErrInternal, err)
	}
	if isDayBlocked(blockedDays, req.ClientID) {
		uc.logger.Warn("CreateBooking: date %s is blocked for client=%d",
			req.Date.Format(domain.DateFormat), req.ClientID)
		return nil, ErrDayBlocked
	}

	var created *domain.Booking

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Locks the day's rows (FOR UPDATE) inside the transaction
		dayBookings, err := uc.bookingRepo.GetByDate(txCtx, req.Date)
		if err != nil {
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		if req.StartTime != nil && isSlotTaken(req.Date, *req.StartTime, dayBookings) {
			return ErrSlotTaken
		}
		if isDayFullyBooked(req.Date, dayBookings, uc.catalog) {
			return ErrDayFullyBooked
		}

		created, err = uc.bookingRepo.Create(txCtx, &domain.Booking{
			ClientID:    ptr.Ptr(req.ClientID),
			UserID:      req.UserID,
			BookingDate: req.Date,
			StartTime:   req.StartTime,
			Status:      domain.StatusPending,
			BranchID:    req.BranchID,
			BranchName:  req.BranchName,
			Notes:       req.Notes,
		})
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotConflict) {
				return ErrSlotTaken
			}
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrSlotTaken):
			uc.logger.Warn("CreateBooking: slot %s on %s already taken",
				startTimeLog, req.Date.Format(domain.DateFormat))
		case errors.Is(err, ErrDayFullyBooked):
			uc.logger.Warn("CreateBooking: date %s fully booked", req.Date.Format(domain.DateFormat))
		default:
			uc.logger.Error("CreateBooking: transaction failed: %v", err)
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking id=%d for client=%d", created.ID, req.ClientID)

	return &Response{
		ID:         created.ID,
		ClientID:   req.ClientID,
		UserID:     created.UserID,
		Date:       created.BookingDate,
		StartTime:  created.StartTime,
		Status:     string(created.Status),
		BranchID:   created.BranchID,
		BranchName: created.BranchName,
		Notes:      created.Notes,
		CreatedAt:  created.CreatedAt,
		UpdatedAt:  created.UpdatedAt,
	}, nil
}
