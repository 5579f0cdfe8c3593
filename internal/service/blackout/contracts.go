package blackout

import (
	"context"

	"github.com/m04kA/RestaurantBookingService/internal/domain"
)

// DisabledDayRepository интерфейс репозитория закрытых дней
type DisabledDayRepository interface {
	Create(ctx context.Context, day *domain.DisabledDay) (*domain.DisabledDay, error)
	List(ctx context.Context) ([]*domain.DisabledDay, error)
	Delete(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
