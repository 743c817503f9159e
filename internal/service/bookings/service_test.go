package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tadbeer-it/TDB-FieldService/internal/domain"
	bookingRepo "github.com/tadbeer-it/TDB-FieldService/internal/infra/storage/booking"
	"github.com/tadbeer-it/TDB-FieldService/internal/service/bookings/models"
	"github.com/tadbeer-it/TDB-FieldService/pkg/ptr"
	"github.com/tadbeer-it/TDB-FieldService/pkg/types"
)

var fixedNow = time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC)

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBookingRepo struct {
	booking   *domain.Booking
	listed    []*domain.Booking
	getErr    error
	cancelled bool
	reason    string
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) GetByClientWithFilter(_ context.Context, _ domain.ClientBookingsFilter) ([]*domain.Booking, error) {
	return f.listed, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, _ int64, _ domain.BookingStatus) error {
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, _ int64, reason string) error {
	f.cancelled = true
	f.reason = reason
	return nil
}

type fakeIdentity struct{ admin bool }

func (f *fakeIdentity) IsAdmin(_ context.Context, _ int64) bool { return f.admin }

func timePtr(s string) *types.TimeString {
	ts := types.TimeString(s)
	return &ts
}

// pendingBooking is owned by user 1, scheduled five days out at 02:00 PM
func pendingBooking() *domain.Booking {
	return &domain.Booking{
		ID:          5,
		ClientID:    ptr.Ptr(int64(7)),
		UserID:      1,
		BookingDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:   timePtr("02:00 PM"),
		Status:      domain.StatusPending,
	}
}

func newTestService(repo *fakeBookingRepo, admin bool) *Service {
	s := NewService(repo, &fakeIdentity{admin: admin}, domain.DefaultEditWindowHours, nopLogger{})
	s.timeProvider = &fixedTime{now: fixedNow}
	return s
}

func TestGetByID(t *testing.T) {
	t.Run("owner can read the booking", func(t *testing.T) {
		s := newTestService(&fakeBookingRepo{booking: pendingBooking()}, false)

		resp, err := s.GetByID(context.Background(), 5, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(5), resp.ID)
	})

	t.Run("stranger is denied", func(t *testing.T) {
		s := newTestService(&fakeBookingRepo{booking: pendingBooking()}, false)

		_, err := s.GetByID(context.Background(), 5, 99)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("admin can read any booking", func(t *testing.T) {
		s := newTestService(&fakeBookingRepo{booking: pendingBooking()}, true)

		resp, err := s.GetByID(context.Background(), 5, 99)
		require.NoError(t, err)
		assert.Equal(t, int64(5), resp.ID)
	})

	t.Run("not found maps to sentinel", func(t *testing.T) {
		s := newTestService(&fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound}, false)

		_, err := s.GetByID(context.Background(), 5, 1)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestCancel(t *testing.T) {
	t.Run("owner cancels outside the window", func(t *testing.T) {
		repo := &fakeBookingRepo{booking: pendingBooking()}
		s := newTestService(repo, false)

		err := s.Cancel(context.Background(), 5, &models.CancelBookingRequest{UserID: 1, CancellationReason: "ظرف طارئ"})
		require.NoError(t, err)
		assert.True(t, repo.cancelled)
		assert.Equal(t, "ظرف طارئ", repo.reason)
	})

	t.Run("owner blocked inside the window", func(t *testing.T) {
		b := pendingBooking()
		b.BookingDate = time.Date(2026, 9, 11, 0, 0, 0, 0, time.UTC)
		repo := &fakeBookingRepo{booking: b}
		s := newTestService(repo, false)
		// one hour before the 02:00 PM appointment
		s.timeProvider = &fixedTime{now: time.Date(2026, 9, 11, 13, 0, 0, 0, time.UTC)}

		err := s.Cancel(context.Background(), 5, &models.CancelBookingRequest{UserID: 1})
		assert.ErrorIs(t, err, ErrEditWindowClosed)
		assert.False(t, repo.cancelled)
	})

	t.Run("exactly 24 hours before is still allowed", func(t *testing.T) {
		b := pendingBooking() // 2026-09-15 14:00
		repo := &fakeBookingRepo{booking: b}
		s := newTestService(repo, false)
		s.timeProvider = &fixedTime{now: time.Date(2026, 9, 14, 14, 0, 0, 0, time.UTC)}

		err := s.Cancel(context.Background(), 5, &models.CancelBookingRequest{UserID: 1})
		assert.NoError(t, err)
	})

	t.Run("admin bypasses the window", func(t *testing.T) {
		repo := &fakeBookingRepo{booking: pendingBooking()}
		s := newTestService(repo, true)
		s.timeProvider = &fixedTime{now: time.Date(2026, 9, 15, 13, 0, 0, 0, time.UTC)} // 1h before

		err := s.Cancel(context.Background(), 5, &models.CancelBookingRequest{UserID: 99})
		assert.NoError(t, err)
	})

	t.Run("stranger cannot cancel", func(t *testing.T) {
		repo := &fakeBookingRepo{booking: pendingBooking()}
		s := newTestService(repo, false)

		err := s.Cancel(context.Background(), 5, &models.CancelBookingRequest{UserID: 99})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("completed booking cannot be cancelled", func(t *testing.T) {
		b := pendingBooking()
		b.Status = domain.StatusCompleted
		s := newTestService(&fakeBookingRepo{booking: b}, true)

		err := s.Cancel(context.Background(), 5, &models.CancelBookingRequest{UserID: 99})
		assert.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("booking without start time uses midnight cutoff", func(t *testing.T) {
		b := pendingBooking() // date 2026-09-15
		b.StartTime = nil
		repo := &fakeBookingRepo{booking: b}
		s := newTestService(repo, false)

		// 2026-09-14 00:00 is exactly 24h before midnight of the 15th
		s.timeProvider = &fixedTime{now: time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)}
		err := s.Cancel(context.Background(), 5, &models.CancelBookingRequest{UserID: 1})
		assert.NoError(t, err)

		s.timeProvider = &fixedTime{now: time.Date(2026, 9, 14, 0, 0, 1, 0, time.UTC)}
		err = s.Cancel(context.Background(), 5, &models.CancelBookingRequest{UserID: 1})
		assert.ErrorIs(t, err, ErrEditWindowClosed)
	})

	t.Run("malformed stored start time is refused", func(t *testing.T) {
		b := pendingBooking()
		b.StartTime = timePtr("half past two")
		s := newTestService(&fakeBookingRepo{booking: b}, false)

		err := s.Cancel(context.Background(), 5, &models.CancelBookingRequest{UserID: 1})
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestGetClientBookings(t *testing.T) {
	listed := []*domain.Booking{pendingBooking()}
	s := newTestService(&fakeBookingRepo{listed: listed}, false)

	resp, err := s.GetClientBookings(context.Background(), &models.GetClientBookingsRequest{UserID: 1, ClientID: 7})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)

	t.Run("unknown status filter is rejected", func(t *testing.T) {
		status := "archived"
		_, err := s.GetClientBookings(context.Background(), &models.GetClientBookingsRequest{
			UserID:   1,
			ClientID: 7,
			Status:   &status,
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
