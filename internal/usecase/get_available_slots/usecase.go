package get_available_slots

import (
	"context"
	"fmt"

	"github.com/tadbeer-it/TDB-FieldService/internal/domain"
	"github.com/tadbeer-it/TDB-FieldService/pkg/ptr"
	"github.com/tadbeer-it/TDB-FieldService/pkg/types"
)

// UseCase use case for reporting a day's slot availability
type UseCase struct {
	bookingRepo    BookingRepository
	blockedDayRepo BlockedDayRepository
	catalog        []types.TimeString
	strictFullDay  bool
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase creates the use case. catalog is the configured daily slot list;
// strictFullDay selects the exact full-day computation over the count-based one.
func NewUseCase(
	bookingRepo BookingRepository,
	blockedDayRepo BlockedDayRepository,
	catalog []types.TimeString,
	strictFullDay bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		blockedDayRepo: blockedDayRepo,
		catalog:        catalog,
		strictFullDay:  strictFullDay,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute computes the availability of every catalog slot on the requested date
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: user=%d, client=%d, date=%s",
		req.UserID, req.ClientID, req.Date.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	blockedDays, err := uc.blockedDayRepo.GetForDate(ctx, req.Date, ptr.Ptr(req.ClientID))
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get blocked days: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocked days: %v", ErrInternal, err)
	}

	bookings, err := uc.bookingRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	fullyBooked := isDayFullyBooked(req.Date, bookings, uc.catalog)
	if uc.strictFullDay {
		fullyBooked = isDayFullyBookedStrict(req.Date, bookings, uc.catalog)
	}

	resp := &Response{
		Date:        req.Date,
		ClientID:    req.ClientID,
		DayBlocked:  isDayBlocked(blockedDays, req.ClientID),
		FullyBooked: fullyBooked,
		Slots:       buildSlots(req.Date, bookings, uc.catalog),
	}

	uc.logger.Info("GetAvailableSlots: date=%s, blocked=%t, fully_booked=%t, slots=%d",
		req.Date.Format(domain.DateFormat), resp.DayBlocked, resp.FullyBooked, len(resp.Slots))

	return resp, nil
}
