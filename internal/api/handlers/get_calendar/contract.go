package get_calendar

import (
	"context"

	"github.com/m04kA/RestaurantBookingService/internal/service/availability/models"
)

type CalendarService interface {
	Calendar(ctx context.Context) (*models.Calendar, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
