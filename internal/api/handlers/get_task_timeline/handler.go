package get_task_timeline

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tadbeer-it/TDB-FieldService/internal/api/handlers"
	getTaskTimeline "github.com/tadbeer-it/TDB-FieldService/internal/usecase/get_task_timeline"
)

const (
	msgInvalidClientID = "معرّف العميل غير صالح"
)

type Handler struct {
	useCase GetTaskTimelineUseCase
	logger  Logger
}

func NewHandler(useCase GetTaskTimelineUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/clients/{clientId}/timeline
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	clientIDStr := vars["clientId"]
	clientID, err := strconv.ParseInt(clientIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /clients/{id}/timeline - Invalid client ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClientID)
		return
	}

	useCaseReq := &getTaskTimeline.Request{
		ClientID: clientID,
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getTaskTimeline.ErrInvalidInput):
			h.logger.Warn("GET /clients/{id}/timeline - Invalid input: client_id=%d, error=%v", clientID, err)
			handlers.RespondBadRequest(w, msgInvalidClientID)

		default:
			h.logger.Error("GET /clients/{id}/timeline - Failed to build timeline: client_id=%d, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /clients/{id}/timeline - Timeline built: client_id=%d, groups=%d", clientID, len(result.Groups))
	handlers.RespondJSON(w, http.StatusOK, response)
}
