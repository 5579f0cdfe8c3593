package list_disabled_days

import (
	"net/http"

	"github.com/m04kA/RestaurantBookingService/internal/api/handlers"
)

type Handler struct {
	service BlackoutService
	logger  Logger
}

func NewHandler(service BlackoutService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/disabled-days
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	days, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/disabled-days - Failed to list disabled days: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceList(days))
}
