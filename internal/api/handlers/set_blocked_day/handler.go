package set_blocked_day

import (
	"errors"
	"net/http"

	"github.com/tadbeer-it/TDB-FieldService/internal/api/handlers"
	"github.com/tadbeer-it/TDB-FieldService/internal/api/middleware"
	"github.com/tadbeer-it/TDB-FieldService/internal/service/blockeddays"
)

const (
	msgInvalidRequestBody = "نص الطلب غير صالح"
	msgMissingUserID      = "رأس X-User-ID مطلوب"
	msgForbidden          = "إدارة أيام الإغلاق متاحة للمشرفين فقط"
)

type Handler struct {
	service BlockedDayService
	logger  Logger
}

func NewHandler(service BlockedDayService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/blocked-days
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /blocked-days - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req SetBlockedDayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /blocked-days - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Set(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, blockeddays.ErrAccessDenied):
			h.logger.Warn("PUT /blocked-days - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, blockeddays.ErrInvalidInput):
			h.logger.Warn("PUT /blocked-days - Invalid input: date=%s, error=%v", req.Date, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /blocked-days - Failed to set blocked day: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /blocked-days - Blocked day saved: id=%d, date=%s, status=%s, user_id=%d",
		result.ID, req.Date, req.Status, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
