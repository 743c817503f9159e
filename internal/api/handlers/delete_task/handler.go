package delete_task

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
	msgInvalidTaskID = "معرّف المهمة غير صالح"
	msgMissingUserID = "رأس X-User-ID مطلوب"
	msgNotFound      = "المهمة غير موجودة"
	msgForbidden     = "لا تملك صلاحية حذف هذه المهمة"
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

// Handle DELETE /api/v1/tasks/{taskId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	taskIDStr := vars["taskId"]
	taskID, err := strconv.ParseInt(taskIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /tasks/{id} - Invalid task ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTaskID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /tasks/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	serviceReq := &models.DeleteTaskRequest{
		UserID: userID,
		TaskID: taskID,
	}

	if err := h.service.Delete(r.Context(), serviceReq); err != nil {
		switch {
		case errors.Is(err, tasks.ErrTaskNotFound):
			h.logger.Warn("DELETE /tasks/{id} - Task not found: task_id=%d", taskID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, tasks.ErrAccessDenied):
			h.logger.Warn("DELETE /tasks/{id} - Access denied: task_id=%d, user_id=%d", taskID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /tasks/{id} - Failed to delete task: task_id=%d, error=%v", taskID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /tasks/{id} - Task deleted: task_id=%d, user_id=%d", taskID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
