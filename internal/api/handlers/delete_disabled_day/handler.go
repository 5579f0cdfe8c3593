package delete_disabled_day

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/RestaurantBookingService/internal/api/handlers"
	"github.com/m04kA/RestaurantBookingService/internal/domain"
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

// Handle DELETE /api/v1/admin/disabled-days/{dayId}
// Удаление отсутствующего дня отвечает 200
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dayID := mux.Vars(r)["dayId"]

	if !domain.IsValidID(dayID) {
		h.logger.Info("DELETE /admin/disabled-days/{id} - Unknown id format, nothing to delete: id=%s", dayID)
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"id": dayID})
		return
	}

	if err := h.service.Remove(r.Context(), dayID); err != nil {
		h.logger.Error("DELETE /admin/disabled-days/{id} - Failed to remove disabled day: id=%s, error=%v", dayID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/disabled-days/{id} - Disabled day removed: id=%s", dayID)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"id": dayID})
}
