package create_disabled_day

import (
	"errors"
	"net/http"

	"github.com/m04kA/RestaurantBookingService/internal/api/handlers"
	"github.com/m04kA/RestaurantBookingService/internal/service/blackout"
)

const (
	msgInvalidRequestBody = "Richiesta non valida"
	msgInvalidDay         = "Data non valida"
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

// Handle POST /api/v1/admin/disabled-days
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateDisabledDayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/disabled-days - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	day, err := h.service.Add(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, blackout.ErrInvalidInput):
			h.logger.Warn("POST /admin/disabled-days - Invalid input: day=%s, error=%v", req.Day, err)
			handlers.RespondBadRequest(w, msgInvalidDay)

		default:
			h.logger.Error("POST /admin/disabled-days - Failed to disable day: day=%s, error=%v", req.Day, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/disabled-days - Day disabled: id=%s, day=%s", day.ID, day.Day)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(day))
}
