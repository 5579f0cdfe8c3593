package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/RestaurantBookingService/internal/domain"
	bookingRepo "github.com/m04kA/RestaurantBookingService/internal/infra/storage/booking"
	"github.com/m04kA/RestaurantBookingService/internal/service/availability"
	"github.com/m04kA/RestaurantBookingService/pkg/metrics"
)

const operation = "create"

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	availability AvailabilityChecker
	notifier     Notifier
	metrics      Metrics
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	availability AvailabilityChecker,
	notifier Notifier,
	metrics Metrics,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		availability: availability,
		notifier:     notifier,
		metrics:      metrics,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute создает бронирование в статусе PENDING
// Проверка дня и запись выполняются в одной сериализуемой транзакции,
// параллельные запросы на один вечер не могут оба пройти проверку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	normalizeRequest(req)
	uc.logger.Info("CreateBooking: date=%s, guests=%d, email=%s", req.Date, req.Guests, req.Email)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.metrics.IncBookingOutcome(operation, metrics.OutcomeInvalid)
		return nil, err
	}

	// 2. Разбираем дату в часовом поясе ресторана
	loc := uc.availability.Location()
	date, _, err := domain.ParseDate(req.Date, loc)
	if err != nil {
		uc.logger.Warn("CreateBooking: malformed date=%q: %v", req.Date, err)
		uc.metrics.IncBookingOutcome(operation, metrics.OutcomeInvalid)
		return nil, fmt.Errorf("%w: %w", ErrInvalidDate, err)
	}

	booking := &domain.Booking{
		Date:           date,
		Day:            domain.DayOf(date.In(loc)),
		Guests:         req.Guests,
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Allergies:      req.Allergies,
		Preferences:    req.Preferences,
		Notes:          req.Notes,
		SpecialEventID: req.SpecialEventID,
		Status:         domain.StatusPending,
	}

	// 3. Проверка дня и создание в сериализуемой транзакции
	var created *domain.Booking
	err = uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		if err := uc.availability.CheckDate(ctx, date, nil); err != nil {
			return err
		}

		// ID выдается заново на каждой попытке транзакции
		candidate := *booking
		var err error
		created, err = uc.bookingRepo.Create(ctx, &candidate)
		return err
	})
	if err != nil {
		return nil, uc.mapError(req, err)
	}

	uc.metrics.IncBookingOutcome(operation, metrics.OutcomeCreated)
	uc.logger.Info("CreateBooking: created booking id=%s for day=%s", created.ID, domain.DayKey(created.Day))

	// 4. Уведомление персонала после фиксации; ошибка не отменяет бронь
	if err := uc.notifier.NotifyBookingCreated(ctx, created); err != nil {
		uc.logger.Warn("CreateBooking: notification for booking id=%s failed: %v", created.ID, err)
	}

	return toResponse(created, loc), nil
}

func (uc *UseCase) mapError(req *Request, err error) error {
	switch {
	case errors.Is(err, availability.ErrDateUnavailable), errors.Is(err, bookingRepo.ErrDayTaken):
		uc.logger.Warn("CreateBooking: date=%s unavailable", req.Date)
		uc.metrics.IncBookingOutcome(operation, metrics.OutcomeConflict)
		return ErrDateUnavailable
	default:
		uc.logger.Error("CreateBooking: failed to create booking for date=%s: %v", req.Date, err)
		uc.metrics.IncBookingOutcome(operation, metrics.OutcomeError)
		return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
	}
}
