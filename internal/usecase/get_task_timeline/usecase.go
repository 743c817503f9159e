package get_task_timeline

import (
	"context"
	"fmt"

	"github.com/tadbeer-it/TDB-FieldService/internal/domain"
)

// UseCase use case for building a client's task timeline
type UseCase struct {
	bookingRepo  BookingRepository
	taskRepo     TaskRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the use case
func NewUseCase(
	bookingRepo BookingRepository,
	taskRepo TaskRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		taskRepo:     taskRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute fetches the client's bookings and tasks and builds the timeline
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetTaskTimeline: user=%d, client=%d", req.UserID, req.ClientID)

	if req.ClientID <= 0 {
		uc.logger.Warn("GetTaskTimeline: invalid client id=%d", req.ClientID)
		return nil, fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	// Cancelled bookings are filtered out repository-side
	bookings, err := uc.bookingRepo.GetByClientWithFilter(ctx, domain.ClientBookingsFilter{
		ClientID: req.ClientID,
	})
	if err != nil {
		uc.logger.Error("GetTaskTimeline: failed to get bookings for client=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	tasks, err := uc.taskRepo.GetByClientID(ctx, req.ClientID)
	if err != nil {
		uc.logger.Error("GetTaskTimeline: failed to get tasks for client=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get tasks: %v", ErrInternal, err)
	}

	groups := buildTimeline(req.ClientID, bookings, tasks, uc.timeProvider.Now())

	uc.logger.Info("GetTaskTimeline: client=%d, groups=%d", req.ClientID, len(groups))

	return &Response{
		ClientID: req.ClientID,
		Groups:   groups,
	}, nil
}
