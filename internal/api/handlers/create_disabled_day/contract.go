package create_disabled_day

import (
	"context"

	"github.com/m04kA/RestaurantBookingService/internal/service/blackout/models"
)

type BlackoutService interface {
	Add(ctx context.Context, req *models.AddRequest) (*models.DisabledDayResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
