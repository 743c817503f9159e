package get_blocked_days

import (
	"errors"
	"net/http"

	"github.com/tadbeer-it/TDB-FieldService/internal/api/handlers"
	"github.com/tadbeer-it/TDB-FieldService/internal/api/middleware"
	"github.com/tadbeer-it/TDB-FieldService/internal/service/blockeddays"
)

const (
	msgMissingUserID = "رأس X-User-ID مطلوب"
	msgForbidden     = "إدارة أيام الإغلاق متاحة للمشرفين فقط"
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

// Handle GET /api/v1/blocked-days
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /blocked-days - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.List(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, blockeddays.ErrAccessDenied):
			h.logger.Warn("GET /blocked-days - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /blocked-days - Failed to list blocked days: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /blocked-days - Blocked days listed: count=%d, user_id=%d", result.Total, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
