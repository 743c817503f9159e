package create_booking

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

var (
	fixedNow    = time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC)
	bookingDate = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
)

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBookingRepo struct {
	dayBookings []*domain.Booking
	created     *domain.Booking
	createErr   error
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	b.ID = 42
	b.CreatedAt = fixedNow
	b.UpdatedAt = fixedNow
	f.created = b
	return b, nil
}

func (f *fakeBookingRepo) GetByDate(_ context.Context, _ time.Time) ([]*domain.Booking, error) {
	return f.dayBookings, nil
}

type fakeBlockedDayRepo struct {
	days []*domain.BlockedDay
}

func (f *fakeBlockedDayRepo) GetForDate(_ context.Context, _ time.Time, _ *int64) ([]*domain.BlockedDay, error) {
	return f.days, nil
}

type fakeClientRepo struct {
	client *domain.Client
	err    error
}

func (f *fakeClientRepo) GetByID(_ context.Context, _ int64) (*domain.Client, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.client, nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func catalog() []types.TimeString {
	result := make([]types.TimeString, len(domain.DefaultSlotCatalog))
	for i, s := range domain.DefaultSlotCatalog {
		result[i] = types.TimeString(s)
	}
	return result
}

func newTestUseCase(bookings *fakeBookingRepo, blocked *fakeBlockedDayRepo, clients *fakeClientRepo) *UseCase {
	uc := NewUseCase(bookings, blocked, clients, passthroughTxManager{}, catalog(), nopLogger{})
	uc.timeProvider = &fixedTime{now: fixedNow}
	return uc
}

func validRequest() *Request {
	ts := types.TimeString("09:00 AM")
	return &Request{
		UserID:    1,
		ClientID:  7,
		Date:      bookingDate,
		StartTime: &ts,
	}
}

func activeClient() *fakeClientRepo {
	return &fakeClientRepo{client: &domain.Client{ID: 7, NameAr: "شركة النور", IsActive: true}}
}

func TestExecute_CreatesBooking(t *testing.T) {
	bookings := &fakeBookingRepo{}
	uc := newTestUseCase(bookings, &fakeBlockedDayRepo{}, activeClient())

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "pending", resp.Status)
	require.NotNil(t, bookings.created)
	assert.Equal(t, domain.StatusPending, bookings.created.Status)
	assert.Equal(t, int64(7), *bookings.created.ClientID)
}

func TestExecute_SlotTaken(t *testing.T) {
	occupied := &domain.Booking{
		BookingDate: bookingDate,
		StartTime:   timePtr("09:00 AM"),
		Status:      domain.StatusConfirmed,
	}
	uc := newTestUseCase(&fakeBookingRepo{dayBookings: []*domain.Booking{occupied}}, &fakeBlockedDayRepo{}, activeClient())

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_CancelledBookingFreesSlot(t *testing.T) {
	cancelled := &domain.Booking{
		BookingDate: bookingDate,
		StartTime:   timePtr("09:00 AM"),
		Status:      domain.StatusCancelled,
	}
	uc := newTestUseCase(&fakeBookingRepo{dayBookings: []*domain.Booking{cancelled}}, &fakeBlockedDayRepo{}, activeClient())

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_DayFullyBooked(t *testing.T) {
	day := make([]*domain.Booking, 0, 10)
	for _, s := range domain.DefaultSlotCatalog {
		if s == "09:00 AM" {
			continue // requested slot itself is free
		}
		day = append(day, &domain.Booking{
			BookingDate: bookingDate,
			StartTime:   timePtr(s),
			Status:      domain.StatusConfirmed,
		})
	}
	// an unscheduled booking pushes the count to the catalog size
	day = append(day, &domain.Booking{BookingDate: bookingDate, Status: domain.StatusConfirmed})

	uc := newTestUseCase(&fakeBookingRepo{dayBookings: day}, &fakeBlockedDayRepo{}, activeClient())

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDayFullyBooked)
}

func TestExecute_DayBlocked(t *testing.T) {
	blocked := &fakeBlockedDayRepo{days: []*domain.BlockedDay{
		{Date: bookingDate, Status: domain.DayClosed},
	}}
	uc := newTestUseCase(&fakeBookingRepo{}, blocked, activeClient())

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDayBlocked)
}

func TestExecute_BlockForOtherClientIgnored(t *testing.T) {
	blocked := &fakeBlockedDayRepo{days: []*domain.BlockedDay{
		{Date: bookingDate, ClientID: ptr.Ptr(int64(99)), Status: domain.DayClosed},
	}}
	uc := newTestUseCase(&fakeBookingRepo{}, blocked, activeClient())

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_DateInPast(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeBlockedDayRepo{}, activeClient())

	req := validRequest()
	req.Date = fixedNow.AddDate(0, 0, -1)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_SlotNotInCatalog(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeBlockedDayRepo{}, activeClient())

	req := validRequest()
	ts := types.TimeString("09:30 AM")
	req.StartTime = &ts

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotInCatalog)
}

func TestExecute_ClientInactive(t *testing.T) {
	inactive := &fakeClientRepo{client: &domain.Client{ID: 7, IsActive: false}}
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeBlockedDayRepo{}, inactive)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrClientInactive)
}

func TestExecute_UnscheduledVisitSkipsSlotCheck(t *testing.T) {
	occupied := &domain.Booking{
		BookingDate: bookingDate,
		StartTime:   timePtr("09:00 AM"),
		Status:      domain.StatusConfirmed,
	}
	uc := newTestUseCase(&fakeBookingRepo{dayBookings: []*domain.Booking{occupied}}, &fakeBlockedDayRepo{}, activeClient())

	req := validRequest()
	req.StartTime = nil

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func timePtr(s string) *types.TimeString {
	ts := types.TimeString(s)
	return &ts
}
