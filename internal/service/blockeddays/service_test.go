package blockeddays

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tadbeer-it/TDB-FieldService/internal/domain"
	"github.com/tadbeer-it/TDB-FieldService/internal/service/blockeddays/models"
	"github.com/tadbeer-it/TDB-FieldService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBlockedDayRepo struct {
	upserted *domain.BlockedDay
	listed   []*domain.BlockedDay
}

func (f *fakeBlockedDayRepo) Upsert(_ context.Context, d *domain.BlockedDay) (*domain.BlockedDay, error) {
	d.ID = 3
	f.upserted = d
	return d, nil
}

func (f *fakeBlockedDayRepo) GetForDate(_ context.Context, _ time.Time, _ *int64) ([]*domain.BlockedDay, error) {
	return nil, nil
}

func (f *fakeBlockedDayRepo) List(_ context.Context) ([]*domain.BlockedDay, error) {
	return f.listed, nil
}

type fakeIdentity struct{ admin bool }

func (f *fakeIdentity) IsAdmin(_ context.Context, _ int64) bool { return f.admin }

func TestSet(t *testing.T) {
	t.Run("admin closes a date globally", func(t *testing.T) {
		repo := &fakeBlockedDayRepo{}
		s := NewService(repo, &fakeIdentity{admin: true}, nopLogger{})

		resp, err := s.Set(context.Background(), &models.SetBlockedDayRequest{
			UserID: 1,
			Date:   "2026-09-20",
			Status: "closed",
		})
		require.NoError(t, err)
		assert.Equal(t, "closed", resp.Status)
		require.NotNil(t, repo.upserted)
		assert.Nil(t, repo.upserted.ClientID)
	})

	t.Run("admin closes a date for one client", func(t *testing.T) {
		repo := &fakeBlockedDayRepo{}
		s := NewService(repo, &fakeIdentity{admin: true}, nopLogger{})

		resp, err := s.Set(context.Background(), &models.SetBlockedDayRequest{
			UserID:   1,
			Date:     "2026-09-20",
			ClientID: ptr.Ptr(int64(7)),
			Status:   "closed",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(7), *resp.ClientID)
	})

	t.Run("non-admin is denied", func(t *testing.T) {
		s := NewService(&fakeBlockedDayRepo{}, &fakeIdentity{admin: false}, nopLogger{})

		_, err := s.Set(context.Background(), &models.SetBlockedDayRequest{
			UserID: 2,
			Date:   "2026-09-20",
			Status: "closed",
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		s := NewService(&fakeBlockedDayRepo{}, &fakeIdentity{admin: true}, nopLogger{})

		_, err := s.Set(context.Background(), &models.SetBlockedDayRequest{
			UserID: 1,
			Date:   "2026-09-20",
			Status: "maybe",
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("bad date is rejected", func(t *testing.T) {
		s := NewService(&fakeBlockedDayRepo{}, &fakeIdentity{admin: true}, nopLogger{})

		_, err := s.Set(context.Background(), &models.SetBlockedDayRequest{
			UserID: 1,
			Date:   "20/09/2026",
			Status: "closed",
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestList(t *testing.T) {
	repo := &fakeBlockedDayRepo{listed: []*domain.BlockedDay{
		{ID: 1, Date: time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC), Status: domain.DayClosed},
	}}

	t.Run("admin lists blocked days", func(t *testing.T) {
		s := NewService(repo, &fakeIdentity{admin: true}, nopLogger{})

		resp, err := s.List(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Total)
		assert.Equal(t, "2026-09-20", resp.Days[0].Date)
	})

	t.Run("non-admin is denied", func(t *testing.T) {
		s := NewService(repo, &fakeIdentity{admin: false}, nopLogger{})

		_, err := s.List(context.Background(), 2)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}
