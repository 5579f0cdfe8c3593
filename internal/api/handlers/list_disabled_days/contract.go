package list_disabled_days

import (
	"context"

	"github.com/m04kA/RestaurantBookingService/internal/service/blackout/models"
)

type BlackoutService interface {
	List(ctx context.Context) ([]*models.DisabledDayResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
