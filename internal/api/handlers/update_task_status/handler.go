package update_task_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tadbeer-it/TDB-FieldService/internal/api/handlers"
	"github.com/tadbeer-it/TDB-FieldService/internal/api/middleware"
	"github.com/tadbeer-it/TDB-FieldService/internal/service/tasks"
	"github.com/tadbeer-it/TDB-FieldService/internal/service/tasks/models"
)

const (
	msgInvalidTaskID      = "معرّف المهمة غير صالح"
	msgMissingUserID      = "رأس X-User-ID مطلوب"
	msgInvalidRequestBody = "نص الطلب غير صالح"
	msgNotFound           = "المهمة غير موجودة"
	msgForbidden          = "لا تملك صلاحية تعديل هذه المهمة"
	msgInvalidTransition  = "لا يمكن نقل المهمة إلى هذه الحالة"
	msgInvalidStatus      = "حالة المهمة غير معروفة"
)

type Handler struct {
	service TaskService
	logger  Logger
}

func NewHandler(service TaskService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/tasks/{taskId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	taskIDStr := vars["taskId"]
	taskID, err := strconv.ParseInt(taskIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /tasks/{id}/status - Invalid task ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTaskID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /tasks/{id}/status - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateTaskStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /tasks/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq := &models.UpdateTaskStatusRequest{
		UserID: userID,
		TaskID: taskID,
		Status: req.Status,
	}

	result, err := h.service.UpdateStatus(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, tasks.ErrTaskNotFound):
			h.logger.Warn("PATCH /tasks/{id}/status - Task not found: task_id=%d", taskID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, tasks.ErrAccessDenied):
			h.logger.Warn("PATCH /tasks/{id}/status - Access denied: task_id=%d, user_id=%d", taskID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, tasks.ErrInvalidTransition):
			h.logger.Warn("PATCH /tasks/{id}/status - Invalid transition: task_id=%d, status=%s", taskID, req.Status)
			handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)

		case errors.Is(err, tasks.ErrInvalidInput):
			h.logger.Warn("PATCH /tasks/{id}/status - Invalid status: task_id=%d, status=%s", taskID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("PATCH /tasks/{id}/status - Failed to update status: task_id=%d, error=%v", taskID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /tasks/{id}/status - Task status updated: task_id=%d, status=%s, user_id=%d",
		taskID, req.Status, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
