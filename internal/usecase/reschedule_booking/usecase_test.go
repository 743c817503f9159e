package reschedule_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tadbeer-it/TDB-FieldService/internal/domain"
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
	booking     *domain.Booking
	dayBookings []*domain.Booking
	moved       bool
	movedDate   time.Time
	movedStart  *types.TimeString
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	return f.booking, nil
}

func (f *fakeBookingRepo) GetByDate(_ context.Context, _ time.Time) ([]*domain.Booking, error) {
	return f.dayBookings, nil
}

func (f *fakeBookingRepo) UpdateSchedule(_ context.Context, _ int64, date time.Time, start *types.TimeString) error {
	f.moved = true
	f.movedDate = date
	f.movedStart = start
	return nil
}

type fakeBlockedDayRepo struct {
	days []*domain.BlockedDay
}

func (f *fakeBlockedDayRepo) GetForDate(_ context.Context, _ time.Time, _ *int64) ([]*domain.BlockedDay, error) {
	return f.days, nil
}

type fakeIdentity struct{ admin bool }

func (f *fakeIdentity) IsAdmin(_ context.Context, _ int64) bool { return f.admin }

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func timePtr(s string) *types.TimeString {
	ts := types.TimeString(s)
	return &ts
}

func catalog() []types.TimeString {
	result := make([]types.TimeString, len(domain.DefaultSlotCatalog))
	for i, s := range domain.DefaultSlotCatalog {
		result[i] = types.TimeString(s)
	}
	return result
}

// ownedBooking is owned by user 1, scheduled 2026-09-15 at 02:00 PM
func ownedBooking() *domain.Booking {
	return &domain.Booking{
		ID:          5,
		ClientID:    ptr.Ptr(int64(7)),
		UserID:      1,
		BookingDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:   timePtr("02:00 PM"),
		Status:      domain.StatusConfirmed,
	}
}

func newTestUseCase(repo *fakeBookingRepo, blocked *fakeBlockedDayRepo, admin bool) *UseCase {
	uc := NewUseCase(repo, blocked, &fakeIdentity{admin: admin}, passthroughTxManager{},
		catalog(), domain.DefaultEditWindowHours, nopLogger{})
	uc.timeProvider = &fixedTime{now: fixedNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		BookingID: 5,
		UserID:    1,
		Date:      time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC),
		StartTime: timePtr("10:00 AM"),
	}
}

func TestExecute_MovesBooking(t *testing.T) {
	repo := &fakeBookingRepo{booking: ownedBooking()}
	uc := newTestUseCase(repo, &fakeBlockedDayRepo{}, false)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, repo.moved)
	assert.Equal(t, time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC), repo.movedDate)
	assert.Equal(t, "10:00 AM", repo.movedStart.String())
	assert.Equal(t, int64(5), resp.ID)
}

func TestExecute_EditWindow(t *testing.T) {
	t.Run("owner blocked inside the window", func(t *testing.T) {
		repo := &fakeBookingRepo{booking: ownedBooking()}
		uc := newTestUseCase(repo, &fakeBlockedDayRepo{}, false)
		// appointment is 2026-09-15 14:00; one hour before
		uc.timeProvider = &fixedTime{now: time.Date(2026, 9, 15, 13, 0, 0, 0, time.UTC)}

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrEditWindowClosed)
		assert.False(t, repo.moved)
	})

	t.Run("exactly 24 hours before is still allowed", func(t *testing.T) {
		repo := &fakeBookingRepo{booking: ownedBooking()}
		uc := newTestUseCase(repo, &fakeBlockedDayRepo{}, false)
		uc.timeProvider = &fixedTime{now: time.Date(2026, 9, 14, 14, 0, 0, 0, time.UTC)}

		_, err := uc.Execute(context.Background(), validRequest())
		assert.NoError(t, err)
	})

	t.Run("admin bypasses the window", func(t *testing.T) {
		repo := &fakeBookingRepo{booking: ownedBooking()}
		uc := newTestUseCase(repo, &fakeBlockedDayRepo{}, true)
		uc.timeProvider = &fixedTime{now: time.Date(2026, 9, 15, 13, 0, 0, 0, time.UTC)}

		req := validRequest()
		req.UserID = 99

		_, err := uc.Execute(context.Background(), req)
		assert.NoError(t, err)
	})

	t.Run("malformed stored start time is refused", func(t *testing.T) {
		b := ownedBooking()
		b.StartTime = timePtr("around noon")
		uc := newTestUseCase(&fakeBookingRepo{booking: b}, &fakeBlockedDayRepo{}, false)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestExecute_Ownership(t *testing.T) {
	repo := &fakeBookingRepo{booking: ownedBooking()}
	uc := newTestUseCase(repo, &fakeBlockedDayRepo{}, false)

	req := validRequest()
	req.UserID = 99

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_TerminalStatus(t *testing.T) {
	b := ownedBooking()
	b.Status = domain.StatusCancelled
	uc := newTestUseCase(&fakeBookingRepo{booking: b}, &fakeBlockedDayRepo{}, false)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCannotReschedule)
}

func TestExecute_TargetSlotTakenByOther(t *testing.T) {
	other := &domain.Booking{
		ID:          6,
		BookingDate: time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC),
		StartTime:   timePtr("10:00 AM"),
		Status:      domain.StatusConfirmed,
	}
	repo := &fakeBookingRepo{booking: ownedBooking(), dayBookings: []*domain.Booking{other}}
	uc := newTestUseCase(repo, &fakeBlockedDayRepo{}, false)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_OwnSlotDoesNotConflict(t *testing.T) {
	// moving within the same day back onto its own slot
	self := ownedBooking()
	repo := &fakeBookingRepo{booking: self, dayBookings: []*domain.Booking{self}}
	uc := newTestUseCase(repo, &fakeBlockedDayRepo{}, false)

	req := validRequest()
	req.Date = self.BookingDate
	req.StartTime = timePtr("02:00 PM")

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_TargetDayBlocked(t *testing.T) {
	blocked := &fakeBlockedDayRepo{days: []*domain.BlockedDay{
		{Date: time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC), Status: domain.DayClosed},
	}}
	uc := newTestUseCase(&fakeBookingRepo{booking: ownedBooking()}, blocked, false)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDayBlocked)
}

func TestExecute_TargetDateInPast(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{booking: ownedBooking()}, &fakeBlockedDayRepo{}, false)

	req := validRequest()
	req.Date = fixedNow.AddDate(0, 0, -1)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_SlotNotInCatalog(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{booking: ownedBooking()}, &fakeBlockedDayRepo{}, false)

	req := validRequest()
	req.StartTime = timePtr("07:45 PM")

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotInCatalog)
}
