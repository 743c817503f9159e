package create_task

import (
	"errors"
	"net/http"

	"github.com/tadbeer-it/TDB-FieldService/internal/api/handlers"
	"github.com/tadbeer-it/TDB-FieldService/internal/api/middleware"
	"github.com/tadbeer-it/TDB-FieldService/internal/service/tasks"
)

const (
	msgInvalidRequestBody = "نص الطلب غير صالح"
	msgMissingUserID      = "رأس X-User-ID مطلوب"
	msgBookingNotFound    = "الحجز غير موجود"
	msgBookingMismatch    = "الحجز لا يخص هذا العميل"
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

// Handle POST /api/v1/tasks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /tasks - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateTaskRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tasks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, tasks.ErrBookingNotFound):
			h.logger.Warn("POST /tasks - Booking not found: booking_id=%v, client_id=%d", req.BookingID, req.ClientID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, tasks.ErrBookingMismatch):
			h.logger.Warn("POST /tasks - Booking mismatch: booking_id=%v, client_id=%d", req.BookingID, req.ClientID)
			handlers.RespondBadRequest(w, msgBookingMismatch)

		case errors.Is(err, tasks.ErrInvalidInput):
			h.logger.Warn("POST /tasks - Invalid input: client_id=%d, error=%v", req.ClientID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /tasks - Failed to create task: client_id=%d, error=%v", req.ClientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /tasks - Task created: task_id=%d, client_id=%d, user_id=%d", result.ID, req.ClientID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
