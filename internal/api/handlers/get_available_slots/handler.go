package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tadbeer-it/TDB-FieldService/internal/api/handlers"
	getAvailableSlots "github.com/tadbeer-it/TDB-FieldService/internal/usecase/get_available_slots"
)

const (
	msgInvalidClientID = "معرّف العميل غير صالح"
	msgMissingDate     = "التاريخ مطلوب"
	msgInvalidDate     = "صيغة التاريخ غير صالحة، الصيغة المتوقعة YYYY-MM-DD"
	msgDateInPast      = "لا يمكن عرض المواعيد لتاريخ سابق"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/clients/{clientId}/available-slots
/// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	clientIDStr := vars["clientId"]
	clientID, err := strconv.ParseInt(clientIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /clients/{id}/available-slots - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /clients/{id}/available-slots - Missing date: client_id=%d", clientID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(0, clientID, dateStr)
	if err != nil {
		h.logger.Warn("GET /clients/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /clients/{id}/available-slots - Date in the past: client_id=%d, date=%s", clientID, dateStr)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /clients/{id}/available-slots - Invalid input: client_id=%d, error=%v", clientID, err)
			handlers.RespondBadRequest(w, msgInvalidClientID)

		default:
			h.logger.Error("GET /clients/{id}/available-slots - Failed to get slots: client_id=%d, date=%s, error=%v",
				clientID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /clients/{id}/available-slots - Slots retrieved: client_id=%d, date=%s, slots_count=%d",
		clientID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
