package update_task_status

// UpdateTaskStatusRequest HTTP request model
type UpdateTaskStatusRequest struct {
	Status string `json:"status"` // "pending", "completed", "postponed" or "cancelled"
}
