package reschedule_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/RestaurantBookingService/internal/api/handlers"
	rescheduleBooking "github.com/m04kA/RestaurantBookingService/internal/usecase/reschedule_booking"
)

const (
	msgInvalidRequestBody = "Richiesta non valida"
	msgInvalidDate        = "Data non valida"
	msgNotFound           = "Prenotazione non trovata"
	msgDateUnavailable    = "Data non disponibile"
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

// Handle PATCH /api/v1/admin/bookings/{bookingId}/date
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	var req RescheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id}/date - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &rescheduleBooking.Request{BookingID: bookingID, Date: req.Date})
	if err != nil {
		switch {
		case errors.Is(err, rescheduleBooking.ErrInvalidDate):
			h.logger.Warn("PATCH /admin/bookings/{id}/date - Invalid date: booking_id=%s, date=%s", bookingID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, rescheduleBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /admin/bookings/{id}/date - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rescheduleBooking.ErrDateUnavailable):
			h.logger.Warn("PATCH /admin/bookings/{id}/date - Date unavailable: booking_id=%s, date=%s", bookingID, req.Date)
			handlers.RespondConflict(w, msgDateUnavailable)

		default:
			h.logger.Error("PATCH /admin/bookings/{id}/date - Failed to reschedule: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/bookings/{id}/date - Booking rescheduled: booking_id=%s, day=%s", result.ID, result.Day)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
