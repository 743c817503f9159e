package create_booking

import (
	"errors"
	"net/http"

	"github.com/tadbeer-it/TDB-FieldService/internal/api/handlers"
	"github.com/tadbeer-it/TDB-FieldService/internal/api/middleware"
	createBooking "github.com/tadbeer-it/TDB-FieldService/internal/usecase/create_booking"
	"github.com/tadbeer-it/TDB-FieldService/pkg/types"
)

const (
	msgInvalidRequestBody = "نص الطلب غير صالح"
	msgMissingUserID      = "رأس X-User-ID مطلوب"
	msgInvalidDate        = "صيغة التاريخ غير صالحة، الصيغة المتوقعة YYYY-MM-DD"
	msgInvalidTime        = "صيغة الوقت غير صالحة، الصيغة المتوقعة HH:MM AM/PM"
	msgDateInPast         = "لا يمكن الحجز في تاريخ سابق"
	msgClientNotFound     = "العميل غير موجود"
	msgClientInactive     = "حساب العميل غير نشط"
	msgDayBlocked         = "هذا اليوم مغلق للحجز"
	msgSlotTaken          = "هذا الموعد محجوز بالفعل"
	msgDayFullyBooked     = "لا توجد مواعيد متاحة في هذا اليوم"
	msgSlotNotInCatalog   = "الوقت المحدد ليس ضمن مواعيد العمل"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		if errors.Is(err, types.ErrInvalidTimeFormat) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: user_id=%d, client_id=%d", userID, req.ClientID)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createBooking.ErrDayFullyBooked):
			h.logger.Warn("POST /bookings - Day fully booked: user_id=%d, client_id=%d", userID, req.ClientID)
			handlers.RespondError(w, http.StatusConflict, msgDayFullyBooked)

		case errors.Is(err, createBooking.ErrClientNotFound):
			h.logger.Warn("POST /bookings - Client not found: client_id=%d", req.ClientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, createBooking.ErrClientInactive):
			h.logger.Warn("POST /bookings - Client inactive: client_id=%d", req.ClientID)
			handlers.RespondBadRequest(w, msgClientInactive)

		case errors.Is(err, createBooking.ErrDayBlocked):
			h.logger.Warn("POST /bookings - Day blocked: user_id=%d, client_id=%d, date=%s",
				userID, req.ClientID, req.BookingDate)
			handlers.RespondBadRequest(w, msgDayBlocked)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Date in the past: user_id=%d, client_id=%d, date=%s",
				userID, req.ClientID, req.BookingDate)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrSlotNotInCatalog):
			h.logger.Warn("POST /bookings - Time not in slot catalog: user_id=%d, client_id=%d", userID, req.ClientID)
			handlers.RespondBadRequest(w, msgSlotNotInCatalog)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, client_id=%d, error=%v", userID, req.ClientID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, client_id=%d, error=%v",
				userID, req.ClientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, user_id=%d, client_id=%d",
		result.ID, userID, req.ClientID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
