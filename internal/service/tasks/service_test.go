package tasks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tadbeer-it/TDB-FieldService/internal/domain"
	bookingRepo "github.com/tadbeer-it/TDB-FieldService/internal/infra/storage/booking"
	"github.com/tadbeer-it/TDB-FieldService/internal/service/tasks/models"
	"github.com/tadbeer-it/TDB-FieldService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeTaskRepo struct {
	task          *domain.VisitTask
	created       *domain.VisitTask
	updatedStatus domain.TaskStatus
	deleted       bool
}

func (f *fakeTaskRepo) Create(_ context.Context, t *domain.VisitTask) (*domain.VisitTask, error) {
	t.ID = 11
	f.created = t
	return t, nil
}

func (f *fakeTaskRepo) GetByID(_ context.Context, _ int64) (*domain.VisitTask, error) {
	return f.task, nil
}

func (f *fakeTaskRepo) UpdateStatus(_ context.Context, _ int64, status domain.TaskStatus) error {
	f.updatedStatus = status
	return nil
}

func (f *fakeTaskRepo) SoftDelete(_ context.Context, _ int64) error {
	f.deleted = true
	return nil
}

type fakeBookingRepo struct {
	booking *domain.Booking
	err     error
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.booking, nil
}

type fakeIdentity struct{ admin bool }

func (f *fakeIdentity) IsAdmin(_ context.Context, _ int64) bool { return f.admin }

func newTestService(taskRepo *fakeTaskRepo, bookings *fakeBookingRepo, admin bool) *Service {
	return NewService(taskRepo, bookings, &fakeIdentity{admin: admin}, nopLogger{})
}

func pendingTask() *domain.VisitTask {
	return &domain.VisitTask{
		ID:          3,
		ClientID:    7,
		CreatedByID: 1,
		Text:        "تحديث برامج الحماية",
		Status:      domain.TaskStatusPending,
		Type:        domain.TaskTypeStandard,
	}
}

func TestCreate(t *testing.T) {
	t.Run("general task", func(t *testing.T) {
		repo := &fakeTaskRepo{}
		s := newTestService(repo, &fakeBookingRepo{}, false)

		resp, err := s.Create(context.Background(), &models.CreateTaskRequest{
			UserID:   1,
			ClientID: 7,
			Text:     "جرد الأجهزة",
			Type:     "standard",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(11), resp.ID)
		assert.Equal(t, "pending", resp.Status)
		require.NotNil(t, repo.created)
		assert.Nil(t, repo.created.BookingID)
		assert.Equal(t, int64(1), repo.created.CreatedByID)
	})

	t.Run("task linked to a booking of the same client", func(t *testing.T) {
		booking := &domain.Booking{ID: 5, ClientID: ptr.Ptr(int64(7))}
		s := newTestService(&fakeTaskRepo{}, &fakeBookingRepo{booking: booking}, false)

		resp, err := s.Create(context.Background(), &models.CreateTaskRequest{
			UserID:    1,
			ClientID:  7,
			BookingID: ptr.Ptr(int64(5)),
			Text:      "صيانة الطابعات",
			Type:      "client_request",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(5), *resp.BookingID)
	})

	t.Run("booking of another client is rejected", func(t *testing.T) {
		booking := &domain.Booking{ID: 5, ClientID: ptr.Ptr(int64(99))}
		s := newTestService(&fakeTaskRepo{}, &fakeBookingRepo{booking: booking}, false)

		_, err := s.Create(context.Background(), &models.CreateTaskRequest{
			UserID:    1,
			ClientID:  7,
			BookingID: ptr.Ptr(int64(5)),
			Text:      "صيانة الطابعات",
			Type:      "standard",
		})
		assert.ErrorIs(t, err, ErrBookingMismatch)
	})

	t.Run("missing booking is rejected", func(t *testing.T) {
		s := newTestService(&fakeTaskRepo{}, &fakeBookingRepo{err: bookingRepo.ErrBookingNotFound}, false)

		_, err := s.Create(context.Background(), &models.CreateTaskRequest{
			UserID:    1,
			ClientID:  7,
			BookingID: ptr.Ptr(int64(5)),
			Text:      "صيانة الطابعات",
			Type:      "standard",
		})
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("empty text is rejected", func(t *testing.T) {
		s := newTestService(&fakeTaskRepo{}, &fakeBookingRepo{}, false)

		_, err := s.Create(context.Background(), &models.CreateTaskRequest{
			UserID:   1,
			ClientID: 7,
			Text:     "   ",
			Type:     "standard",
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown type is rejected", func(t *testing.T) {
		s := newTestService(&fakeTaskRepo{}, &fakeBookingRepo{}, false)

		_, err := s.Create(context.Background(), &models.CreateTaskRequest{
			UserID:   1,
			ClientID: 7,
			Text:     "جرد الأجهزة",
			Type:     "urgent",
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestUpdateStatus_TransitionMatrix(t *testing.T) {
	tests := []struct {
		from    domain.TaskStatus
		to      string
		allowed bool
	}{
		{domain.TaskStatusPending, "completed", true},
		{domain.TaskStatusPending, "postponed", true},
		{domain.TaskStatusPending, "cancelled", true},
		{domain.TaskStatusPostponed, "pending", true},
		{domain.TaskStatusPostponed, "completed", true},
		{domain.TaskStatusPostponed, "cancelled", true},
		{domain.TaskStatusCompleted, "pending", false},
		{domain.TaskStatusCompleted, "postponed", false},
		{domain.TaskStatusCompleted, "cancelled", false},
		{domain.TaskStatusCancelled, "pending", false},
		{domain.TaskStatusCancelled, "completed", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+" to "+tt.to, func(t *testing.T) {
			task := pendingTask()
			task.Status = tt.from
			repo := &fakeTaskRepo{task: task}
			s := newTestService(repo, &fakeBookingRepo{}, false)

			resp, err := s.UpdateStatus(context.Background(), &models.UpdateTaskStatusRequest{
				UserID: 1,
				TaskID: 3,
				Status: tt.to,
			})

			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, tt.to, resp.Status)
				assert.Equal(t, domain.TaskStatus(tt.to), repo.updatedStatus)
			} else {
				assert.ErrorIs(t, err, ErrInvalidTransition)
			}
		})
	}
}

func TestUpdateStatus(t *testing.T) {
	t.Run("completed flag follows status", func(t *testing.T) {
		repo := &fakeTaskRepo{task: pendingTask()}
		s := newTestService(repo, &fakeBookingRepo{}, false)

		resp, err := s.UpdateStatus(context.Background(), &models.UpdateTaskStatusRequest{
			UserID: 1,
			TaskID: 3,
			Status: "completed",
		})
		require.NoError(t, err)
		assert.True(t, resp.IsCompleted)
	})

	t.Run("unknown status string is rejected before any lookup", func(t *testing.T) {
		s := newTestService(&fakeTaskRepo{task: pendingTask()}, &fakeBookingRepo{}, false)

		_, err := s.UpdateStatus(context.Background(), &models.UpdateTaskStatusRequest{
			UserID: 1,
			TaskID: 3,
			Status: "done",
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("stranger is denied", func(t *testing.T) {
		s := newTestService(&fakeTaskRepo{task: pendingTask()}, &fakeBookingRepo{}, false)

		_, err := s.UpdateStatus(context.Background(), &models.UpdateTaskStatusRequest{
			UserID: 99,
			TaskID: 3,
			Status: "completed",
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("admin may mutate others' tasks", func(t *testing.T) {
		s := newTestService(&fakeTaskRepo{task: pendingTask()}, &fakeBookingRepo{}, true)

		_, err := s.UpdateStatus(context.Background(), &models.UpdateTaskStatusRequest{
			UserID: 99,
			TaskID: 3,
			Status: "completed",
		})
		assert.NoError(t, err)
	})
}

func TestDelete(t *testing.T) {
	t.Run("creator deletes own task", func(t *testing.T) {
		repo := &fakeTaskRepo{task: pendingTask()}
		s := newTestService(repo, &fakeBookingRepo{}, false)

		err := s.Delete(context.Background(), &models.DeleteTaskRequest{UserID: 1, TaskID: 3})
		require.NoError(t, err)
		assert.True(t, repo.deleted)
	})

	t.Run("stranger is denied", func(t *testing.T) {
		repo := &fakeTaskRepo{task: pendingTask()}
		s := newTestService(repo, &fakeBookingRepo{}, false)

		err := s.Delete(context.Background(), &models.DeleteTaskRequest{UserID: 99, TaskID: 3})
		assert.ErrorIs(t, err, ErrAccessDenied)
		assert.False(t, repo.deleted)
	})
}
