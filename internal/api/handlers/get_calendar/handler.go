package get_calendar

import (
	"net/http"

	"github.com/m04kA/RestaurantBookingService/internal/api/handlers"
)

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	calendar, err := h.service.Calendar(r.Context())
	if err != nil {
		h.logger.Error("GET /calendar - Failed to build calendar: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceCalendar(calendar))
}
