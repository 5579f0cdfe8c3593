package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/RestaurantBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// AvailabilityChecker проверка занятости календарного дня
type AvailabilityChecker interface {
	CheckDate(ctx context.Context, candidate time.Time, excludeID *string) error
	Location() *time.Location
}

// Notifier уведомление персонала о новой брони
type Notifier interface {
	NotifyBookingCreated(ctx context.Context, booking *domain.Booking) error
}

// Metrics счетчик исходов бронирования
type Metrics interface {
	IncBookingOutcome(operation, outcome string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
