package get_task_timeline

import (
	"fmt"
	"sort"
	"time"

	"github.com/tadbeer-it/TDB-FieldService/internal/domain"
)

const (
	generalGroupID       = "general"
	generalGroupTitle    = "المهام العامة"
	generalGroupSubtitle = "مهام غير مرتبطة بزيارة"
	visitGroupTitle      = "زيارة %s"
)

// buildTimeline groups a client's visit tasks into the timeline the client
// application renders: one general bucket of open unscheduled tasks first,
// then one group per non-cancelled booking, soonest visit first.
//
// Inclusion rules:
//   - the general group appears only when it has at least one open
//     (pending or postponed) unscheduled task; closed unscheduled tasks are
//     simply not shown here
//   - a booking group appears when the booking has at least one associated
//     task, or when its date is today or later (an upcoming visit is shown
//     empty to invite task creation)
//
// Ordering is stable: groups with the same date keep the bookings' input
// order. Pure function, recomputed on every refresh.
func buildTimeline(clientID int64, bookings []*domain.Booking, tasks []*domain.VisitTask, now time.Time) []TimelineGroup {
	groups := make([]TimelineGroup, 0)

	generalTasks := make([]*domain.VisitTask, 0)
	for _, t := range tasks {
		if t.ClientID == clientID && t.IsGeneral() && t.IsOpen() {
			generalTasks = append(generalTasks, t)
		}
	}
	if len(generalTasks) > 0 {
		groups = append(groups, TimelineGroup{
			ID:        generalGroupID,
			Title:     generalGroupTitle,
			Subtitle:  generalGroupSubtitle,
			IsGeneral: true,
			SortDate:  nil,
			Tasks:     generalTasks,
		})
	}

	for _, b := range bookings {
		if !b.BelongsTo(clientID) || b.IsCancelled() {
			continue
		}

		bookingTasks := make([]*domain.VisitTask, 0)
		for _, t := range tasks {
			if t.BookingID != nil && *t.BookingID == b.ID {
				bookingTasks = append(bookingTasks, t)
			}
		}

		if len(bookingTasks) == 0 && isDatePast(b.BookingDate, now) {
			continue
		}

		sortDate := b.BookingDate
		groups = append(groups, TimelineGroup{
			ID:       fmt.Sprintf("booking-%d", b.ID),
			Title:    fmt.Sprintf(visitGroupTitle, b.BookingDate.Format(domain.DateFormat)),
			Subtitle: visitSubtitle(b),
			SortDate: &sortDate,
			Tasks:    bookingTasks,
		})
	}

	// General first, then soonest visit first; stable so equal dates keep
	// their input order
	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].SortDate == nil {
			return groups[j].SortDate != nil
		}
		if groups[j].SortDate == nil {
			return false
		}
		return groups[i].SortDate.Before(*groups[j].SortDate)
	})

	return groups
}

func visitSubtitle(b *domain.Booking) string {
	switch {
	case b.StartTime != nil && b.BranchName != nil:
		return fmt.Sprintf("%s - %s", b.StartTime.String(), *b.BranchName)
	case b.StartTime != nil:
		return b.StartTime.String()
	case b.BranchName != nil:
		return *b.BranchName
	default:
		return ""
	}
}

// isDatePast reports whether the date is before today (local dates only)
func isDatePast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
