package tasks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tadbeer-it/TDB-FieldService/internal/domain"
	bookingRepo "github.com/tadbeer-it/TDB-FieldService/internal/infra/storage/booking"
	taskRepo "github.com/tadbeer-it/TDB-FieldService/internal/infra/storage/task"
	"github.com/tadbeer-it/TDB-FieldService/internal/service/tasks/models"
)

// Service service for managing visit tasks
type Service struct {
	taskRepo       TaskRepository
	bookingRepo    BookingRepository
	identityClient IdentityClient
	logger         Logger
}

// NewService creates a visit task service
func NewService(
	taskRepo TaskRepository,
	bookingRepo BookingRepository,
	identityClient IdentityClient,
	logger Logger,
) *Service {
	return &Service{
		taskRepo:       taskRepo,
		bookingRepo:    bookingRepo,
		identityClient: identityClient,
		logger:         logger,
	}
}

// Create creates a visit task. When BookingID is set, the booking must exist
// and belong to the task's client.
func (s *Service) Create(ctx context.Context, req *models.CreateTaskRequest) (*models.TaskResponse, error) {
	s.logger.Info("Create: creating task for client=%d by user=%d", req.ClientID, req.UserID)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: invalid request for client=%d: %v", req.ClientID, err)
		return nil, err
	}

	if req.BookingID != nil {
		booking, err := s.bookingRepo.GetByID(ctx, *req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				s.logger.Warn("Create: booking id=%d not found", *req.BookingID)
				return nil, ErrBookingNotFound
			}
			s.logger.Error("Create: repository error for booking id=%d: %v", *req.BookingID, err)
			return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
		}

		if !booking.BelongsTo(req.ClientID) {
			s.logger.Warn("Create: booking id=%d does not belong to client=%d", *req.BookingID, req.ClientID)
			return nil, ErrBookingMismatch
		}
	}

	task, err := s.taskRepo.Create(ctx, req.ToDomainTask())
	if err != nil {
		s.logger.Error("Create: repository error for client=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: task id=%d created for client=%d", task.ID, task.ClientID)
	return models.FromDomainTask(task), nil
}

// UpdateStatus moves a task to a new status. Transitions are restricted to
// the status machine: pending and postponed tasks may move, completed and
// cancelled tasks are terminal.
func (s *Service) UpdateStatus(ctx context.Context, req *models.UpdateTaskStatusRequest) (*models.TaskResponse, error) {
	s.logger.Info("UpdateStatus: task id=%d -> %s by user=%d", req.TaskID, req.Status, req.UserID)

	next := domain.TaskStatus(req.Status)
	if !isKnownTaskStatus(next) {
		s.logger.Warn("UpdateStatus: unknown status %q for task id=%d", req.Status, req.TaskID)
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}

	task, err := s.taskRepo.GetByID(ctx, req.TaskID)
	if err != nil {
		if errors.Is(err, taskRepo.ErrTaskNotFound) {
			s.logger.Warn("UpdateStatus: task id=%d not found", req.TaskID)
			return nil, ErrTaskNotFound
		}
		s.logger.Error("UpdateStatus: repository error for task id=%d: %v", req.TaskID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if err := s.checkAccess(ctx, task, req.UserID); err != nil {
		s.logger.Warn("UpdateStatus: access denied for user=%d to task id=%d", req.UserID, req.TaskID)
		return nil, err
	}

	if !task.CanTransitionTo(next) {
		s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for task id=%d", task.Status, next, req.TaskID)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, task.Status, next)
	}

	if err := s.taskRepo.UpdateStatus(ctx, req.TaskID, next); err != nil {
		if errors.Is(err, taskRepo.ErrTaskNotFound) {
			return nil, ErrTaskNotFound
		}
		s.logger.Error("UpdateStatus: repository error for task id=%d: %v", req.TaskID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	task.Status = next
	task.IsCompleted = next == domain.TaskStatusCompleted

	s.logger.Info("UpdateStatus: task id=%d moved to %s", req.TaskID, next)
	return models.FromDomainTask(task), nil
}

// Delete soft deletes a task. Allowed for the task's creator and for admins.
func (s *Service) Delete(ctx context.Context, req *models.DeleteTaskRequest) error {
	s.logger.Info("Delete: deleting task id=%d by user=%d", req.TaskID, req.UserID)

	task, err := s.taskRepo.GetByID(ctx, req.TaskID)
	if err != nil {
		if errors.Is(err, taskRepo.ErrTaskNotFound) {
			s.logger.Warn("Delete: task id=%d not found", req.TaskID)
			return ErrTaskNotFound
		}
		s.logger.Error("Delete: repository error for task id=%d: %v", req.TaskID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if err := s.checkAccess(ctx, task, req.UserID); err != nil {
		s.logger.Warn("Delete: access denied for user=%d to task id=%d", req.UserID, req.TaskID)
		return err
	}

	if err := s.taskRepo.SoftDelete(ctx, req.TaskID); err != nil {
		if errors.Is(err, taskRepo.ErrTaskNotFound) {
			return ErrTaskNotFound
		}
		s.logger.Error("Delete: repository error for task id=%d: %v", req.TaskID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: task id=%d deleted", req.TaskID)
	return nil
}

// checkAccess allows the task's creator and admins to mutate the task
func (s *Service) checkAccess(ctx context.Context, task *domain.VisitTask, userID int64) error {
	if task.CreatedByID == userID {
		return nil
	}
	if s.identityClient.IsAdmin(ctx, userID) {
		return nil
	}
	return ErrAccessDenied
}

func validateCreateRequest(req *models.CreateTaskRequest) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: client id must be positive", ErrInvalidInput)
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		return fmt.Errorf("%w: task text is required", ErrInvalidInput)
	}
	if len(req.Text) > domain.MaxTaskTextLength {
		return fmt.Errorf("%w: task text too long", ErrInvalidInput)
	}

	switch domain.TaskType(req.Type) {
	case domain.TaskTypeStandard, domain.TaskTypeClientRequest:
	default:
		return fmt.Errorf("%w: unknown task type %q", ErrInvalidInput, req.Type)
	}

	if req.BookingID != nil && *req.BookingID <= 0 {
		return fmt.Errorf("%w: booking id must be positive", ErrInvalidInput)
	}

	return nil
}

func isKnownTaskStatus(status domain.TaskStatus) bool {
	for _, known := range domain.KnownTaskStatuses {
		if status == known {
			return true
		}
	}
	return false
}
