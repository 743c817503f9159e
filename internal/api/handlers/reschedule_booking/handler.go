package reschedule_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tadbeer-it/TDB-FieldService/internal/api/handlers"
	"github.com/tadbeer-it/TDB-FieldService/internal/api/middleware"
	rescheduleBooking "github.com/tadbeer-it/TDB-FieldService/internal/usecase/reschedule_booking"
	"github.com/tadbeer-it/TDB-FieldService/pkg/types"
)

const (
	msgInvalidBookingID   = "معرّف الحجز غير صالح"
	msgMissingUserID      = "رأس X-User-ID مطلوب"
	msgInvalidRequestBody = "نص الطلب غير صالح"
	msgInvalidDate        = "صيغة التاريخ غير صالحة، الصيغة المتوقعة YYYY-MM-DD"
	msgInvalidTime        = "صيغة الوقت غير صالحة، الصيغة المتوقعة HH:MM AM/PM"
	msgDateInPast         = "لا يمكن النقل إلى تاريخ سابق"
	msgNotFound           = "الحجز غير موجود"
	msgForbidden          = "لا تملك صلاحية تعديل هذا الحجز"
	msgEditWindowClosed   = "لا يمكن التعديل قبل أقل من 24 ساعة من الموعد"
	msgCannotReschedule   = "لا يمكن نقل هذا الحجز في حالته الحالية"
	msgDayBlocked         = "هذا اليوم مغلق للحجز"
	msgSlotTaken          = "هذا الموعد محجوز بالفعل"
	msgSlotNotInCatalog   = "الوقت المحدد ليس ضمن مواعيد العمل"
)

type Handler struct {
	useCase RescheduleBookingUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bookingIDStr := vars["bookingId"]
	bookingID, err := strconv.ParseInt(bookingIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/reschedule - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id}/reschedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req RescheduleBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID, userID)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/reschedule - Failed to parse request: %v", err)
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
		case errors.Is(err, rescheduleBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rescheduleBooking.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Access denied: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, rescheduleBooking.ErrEditWindowClosed):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Edit window closed: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondError(w, http.StatusConflict, msgEditWindowClosed)

		case errors.Is(err, rescheduleBooking.ErrCannotReschedule):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Cannot reschedule: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgCannotReschedule)

		case errors.Is(err, rescheduleBooking.ErrSlotTaken):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Slot taken: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, rescheduleBooking.ErrDayBlocked):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Day blocked: booking_id=%d, date=%s", bookingID, req.BookingDate)
			handlers.RespondBadRequest(w, msgDayBlocked)

		case errors.Is(err, rescheduleBooking.ErrInvalidDate):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Date in the past: booking_id=%d, date=%s", bookingID, req.BookingDate)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, rescheduleBooking.ErrSlotNotInCatalog):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Time not in slot catalog: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgSlotNotInCatalog)

		case errors.Is(err, rescheduleBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /bookings/{id}/reschedule - Failed to reschedule booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PATCH /bookings/{id}/reschedule - Booking rescheduled: booking_id=%d, user_id=%d, date=%s",
		bookingID, userID, req.BookingDate)
	handlers.RespondJSON(w, http.StatusOK, response)
}
