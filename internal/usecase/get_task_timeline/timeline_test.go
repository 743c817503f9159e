package get_task_timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tadbeer-it/TDB-FieldService/internal/domain"
	"github.com/tadbeer-it/TDB-FieldService/pkg/types"
)

const clientID = int64(7)

var now = time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)

func visit(id int64, date time.Time) *domain.Booking {
	cid := clientID
	return &domain.Booking{
		ID:          id,
		ClientID:    &cid,
		BookingDate: date,
		Status:      domain.StatusConfirmed,
	}
}

func generalTask(id int64, status domain.TaskStatus) *domain.VisitTask {
	return &domain.VisitTask{
		ID:       id,
		ClientID: clientID,
		Status:   status,
		Text:     "فحص الخوادم",
	}
}

func visitTask(id, bookingID int64, status domain.TaskStatus) *domain.VisitTask {
	return &domain.VisitTask{
		ID:        id,
		BookingID: &bookingID,
		ClientID:  clientID,
		Status:    status,
		Text:      "تحديث أنظمة التشغيل",
	}
}

func TestBuildTimeline_GeneralGroup(t *testing.T) {
	t.Run("open unscheduled tasks form the general group", func(t *testing.T) {
		tasks := []*domain.VisitTask{
			generalTask(1, domain.TaskStatusPending),
			generalTask(2, domain.TaskStatusPostponed),
		}

		groups := buildTimeline(clientID, nil, tasks, now)
		require.Len(t, groups, 1)
		assert.True(t, groups[0].IsGeneral)
		assert.Equal(t, "general", groups[0].ID)
		assert.Nil(t, groups[0].SortDate)
		assert.Len(t, groups[0].Tasks, 2)
	})

	t.Run("no general group without open unscheduled tasks", func(t *testing.T) {
		tasks := []*domain.VisitTask{
			generalTask(1, domain.TaskStatusCompleted),
			generalTask(2, domain.TaskStatusCancelled),
		}

		groups := buildTimeline(clientID, nil, tasks, now)
		assert.Empty(t, groups)
	})

	t.Run("unknown status counts as open", func(t *testing.T) {
		tasks := []*domain.VisitTask{
			generalTask(1, domain.TaskStatus("imported")),
		}

		groups := buildTimeline(clientID, nil, tasks, now)
		require.Len(t, groups, 1)
		assert.True(t, groups[0].IsGeneral)
	})

	t.Run("other clients' tasks are excluded", func(t *testing.T) {
		task := generalTask(1, domain.TaskStatusPending)
		task.ClientID = clientID + 1

		groups := buildTimeline(clientID, nil, []*domain.VisitTask{task}, now)
		assert.Empty(t, groups)
	})
}

func TestBuildTimeline_BookingGroups(t *testing.T) {
	t.Run("upcoming visit appears even without tasks", func(t *testing.T) {
		bookings := []*domain.Booking{visit(10, now.AddDate(0, 0, 3))}

		groups := buildTimeline(clientID, bookings, nil, now)
		require.Len(t, groups, 1)
		assert.Equal(t, "booking-10", groups[0].ID)
		assert.Empty(t, groups[0].Tasks)
	})

	t.Run("today's visit appears even without tasks", func(t *testing.T) {
		bookings := []*domain.Booking{visit(10, now)}

		groups := buildTimeline(clientID, bookings, nil, now)
		assert.Len(t, groups, 1)
	})

	t.Run("past visit without tasks is dropped", func(t *testing.T) {
		bookings := []*domain.Booking{visit(10, now.AddDate(0, 0, -3))}

		groups := buildTimeline(clientID, bookings, nil, now)
		assert.Empty(t, groups)
	})

	t.Run("past visit with tasks is kept", func(t *testing.T) {
		bookings := []*domain.Booking{visit(10, now.AddDate(0, 0, -3))}
		tasks := []*domain.VisitTask{visitTask(1, 10, domain.TaskStatusCompleted)}

		groups := buildTimeline(clientID, bookings, tasks, now)
		require.Len(t, groups, 1)
		assert.Len(t, groups[0].Tasks, 1)
	})

	t.Run("cancelled visit is dropped", func(t *testing.T) {
		b := visit(10, now.AddDate(0, 0, 3))
		b.Status = domain.StatusCancelled
		tasks := []*domain.VisitTask{visitTask(1, 10, domain.TaskStatusPending)}

		groups := buildTimeline(clientID, []*domain.Booking{b}, tasks, now)
		assert.Empty(t, groups)
	})

	t.Run("subtitle reflects time and branch", func(t *testing.T) {
		b := visit(10, now.AddDate(0, 0, 1))
		ts := types.TimeString("09:00 AM")
		branch := "الفرع الرئيسي"
		b.StartTime = &ts
		b.BranchName = &branch

		groups := buildTimeline(clientID, []*domain.Booking{b}, nil, now)
		require.Len(t, groups, 1)
		assert.Equal(t, "09:00 AM - الفرع الرئيسي", groups[0].Subtitle)
	})
}

func TestBuildTimeline_Ordering(t *testing.T) {
	bookings := []*domain.Booking{
		visit(30, now.AddDate(0, 0, 9)),
		visit(10, now.AddDate(0, 0, 1)),
		visit(20, now.AddDate(0, 0, 4)),
	}
	tasks := []*domain.VisitTask{
		generalTask(1, domain.TaskStatusPending),
		visitTask(2, 30, domain.TaskStatusPending),
	}

	groups := buildTimeline(clientID, bookings, tasks, now)
	require.Len(t, groups, 4)

	// general first, then ascending by visit date
	assert.Equal(t, "general", groups[0].ID)
	assert.Equal(t, "booking-10", groups[1].ID)
	assert.Equal(t, "booking-20", groups[2].ID)
	assert.Equal(t, "booking-30", groups[3].ID)
}

func TestBuildTimeline_Deterministic(t *testing.T) {
	sameDay := now.AddDate(0, 0, 2)
	bookings := []*domain.Booking{
		visit(11, sameDay),
		visit(12, sameDay),
		visit(13, sameDay),
	}

	first := buildTimeline(clientID, bookings, nil, now)
	require.Len(t, first, 3)

	// stable sort keeps the input order for equal dates, on every run
	for i := 0; i < 10; i++ {
		again := buildTimeline(clientID, bookings, nil, now)
		require.Len(t, again, 3)
		assert.Equal(t, "booking-11", again[0].ID)
		assert.Equal(t, "booking-12", again[1].ID)
		assert.Equal(t, "booking-13", again[2].ID)
	}
}
