package availability

import (
	"context"
	"time"

	"github.com/m04kA/RestaurantBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	FindFirst(ctx context.Context, filter domain.BookingsFilter) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// DisabledDayRepository интерфейс репозитория закрытых дней
type DisabledDayRepository interface {
	List(ctx context.Context) ([]*domain.DisabledDay, error)
	ExistsOnDay(ctx context.Context, day time.Time) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
