package get_task_timeline

import (
	"github.com/tadbeer-it/TDB-FieldService/internal/domain"
	getTaskTimeline "github.com/tadbeer-it/TDB-FieldService/internal/usecase/get_task_timeline"
)

// TaskResponse one task inside a timeline group
type TaskResponse struct {
	ID          int64  `json:"id"`
	Text        string `json:"text"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	IsCompleted bool   `json:"isCompleted"`
}

// TimelineGroupResponse one card in the timeline
type TimelineGroupResponse struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Subtitle  string         `json:"subtitle,omitempty"`
	IsGeneral bool           `json:"isGeneral"`
	SortDate  *string        `json:"sortDate,omitempty"` // "2026-09-15"
	Tasks     []TaskResponse `json:"tasks"`
}

// TimelineResponse HTTP response model
type TimelineResponse struct {
	ClientID int64                   `json:"clientId"`
	Groups   []TimelineGroupResponse `json:"groups"`
}

// FromUseCaseResponse converts the use case response to the HTTP model
func FromUseCaseResponse(resp *getTaskTimeline.Response) *TimelineResponse {
	groups := make([]TimelineGroupResponse, 0, len(resp.Groups))

	for _, group := range resp.Groups {
		tasks := make([]TaskResponse, 0, len(group.Tasks))
		for _, task := range group.Tasks {
			tasks = append(tasks, TaskResponse{
				ID:          task.ID,
				Text:        task.Text,
				Type:        string(task.Type),
				Status:      string(task.Status),
				IsCompleted: task.IsCompleted,
			})
		}

		groupResp := TimelineGroupResponse{
			ID:        group.ID,
			Title:     group.Title,
			Subtitle:  group.Subtitle,
			IsGeneral: group.IsGeneral,
			Tasks:     tasks,
		}
		if group.SortDate != nil {
			s := group.SortDate.Format(domain.DateFormat)
			groupResp.SortDate = &s
		}

		groups = append(groups, groupResp)
	}

	return &TimelineResponse{
		ClientID: resp.ClientID,
		Groups:   groups,
	}
}
