package delete_client

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tadbeer-it/TDB-FieldService/internal/api/handlers"
	"github.com/tadbeer-it/TDB-FieldService/internal/api/middleware"
	"github.com/tadbeer-it/TDB-FieldService/internal/service/clients"
)

const (
	msgInvalidClientID = "معرّف العميل غير صالح"
	msgMissingUserID   = "رأس X-User-ID مطلوب"
	msgNotFound        = "العميل غير موجود"
	msgForbidden       = "لا تملك صلاحية حذف سجلات العملاء"
)

type Handler struct {
	service ClientService
	logger  Logger
}

func NewHandler(service ClientService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/clients/{clientId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	clientIDStr := vars["clientId"]
	clientID, err := strconv.ParseInt(clientIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /clients/{id} - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /clients/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Delete(r.Context(), userID, clientID); err != nil {
		switch {
		case errors.Is(err, clients.ErrClientNotFound):
			h.logger.Warn("DELETE /clients/{id} - Client not found: client_id=%d", clientID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, clients.ErrAccessDenied):
			h.logger.Warn("DELETE /clients/{id} - Access denied: client_id=%d, user_id=%d", clientID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /clients/{id} - Failed to delete client: client_id=%d, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /clients/{id} - Client deleted: client_id=%d, user_id=%d", clientID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
