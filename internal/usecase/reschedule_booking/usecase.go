package reschedule_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/RestaurantBookingService/internal/domain"
	bookingRepo "github.com/m04kA/RestaurantBookingService/internal/infra/storage/booking"
	"github.com/m04kA/RestaurantBookingService/internal/service/availability"
	"github.com/m04kA/RestaurantBookingService/pkg/metrics"
)

const operation = "reschedule"

// UseCase use case для переноса бронирования на другую дату
type UseCase struct {
	bookingRepo  BookingRepository
	availability AvailabilityChecker
	metrics      Metrics
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	availability AvailabilityChecker,
	metrics Metrics,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		availability: availability,
		metrics:      metrics,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute переносит бронирование. Сама бронь не считается конфликтом,
// поэтому перенос на другое время того же вечера разрешен
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleBooking: booking id=%s, date=%s", req.BookingID, req.Date)

	if !domain.IsValidID(req.BookingID) {
		uc.logger.Warn("RescheduleBooking: malformed booking id=%s", req.BookingID)
		return nil, ErrBookingNotFound
	}

	loc := uc.availability.Location()
	newDate, hasTime, err := domain.ParseDate(req.Date, loc)
	if err != nil {
		uc.logger.Warn("RescheduleBooking: malformed date=%q: %v", req.Date, err)
		uc.metrics.IncBookingOutcome(operation, metrics.OutcomeInvalid)
		return nil, fmt.Errorf("%w: %w", ErrInvalidDate, err)
	}

	var updated *domain.Booking
	err = uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
		if err != nil {
			return err
		}

		target := newDate
		if !hasTime {
			target = domain.WithTimeOf(newDate, booking.Date, loc)
		}

		if err := uc.availability.CheckDate(ctx, target, &booking.ID); err != nil {
			return err
		}

		day := domain.DayOf(target.In(loc))
		if err := uc.bookingRepo.UpdateDate(ctx, booking.ID, target, day); err != nil {
			return err
		}

		booking.Date = target
		booking.Day = day
		updated = booking
		return nil
	})
	if err != nil {
		return nil, uc.mapError(req, err)
	}

	uc.metrics.IncBookingOutcome(operation, metrics.OutcomeRescheduled)
	uc.logger.Info("RescheduleBooking: booking id=%s moved to %s", updated.ID, domain.DayKey(updated.Day))

	return &Response{
		ID:     updated.ID,
		Date:   updated.Date.In(loc),
		Day:    domain.DayKey(updated.Day),
		Status: string(updated.Status),
	}, nil
}

func (uc *UseCase) mapError(req *Request, err error) error {
	switch {
	case errors.Is(err, bookingRepo.ErrBookingNotFound):
		uc.logger.Warn("RescheduleBooking: booking id=%s not found", req.BookingID)
		return ErrBookingNotFound
	case errors.Is(err, availability.ErrDateUnavailable), errors.Is(err, bookingRepo.ErrDayTaken):
		uc.logger.Warn("RescheduleBooking: date=%s unavailable for booking id=%s", req.Date, req.BookingID)
		uc.metrics.IncBookingOutcome(operation, metrics.OutcomeConflict)
		return ErrDateUnavailable
	default:
		uc.logger.Error("RescheduleBooking: failed to reschedule booking id=%s: %v", req.BookingID, err)
		uc.metrics.IncBookingOutcome(operation, metrics.OutcomeError)
		return fmt.Errorf("%w: failed to reschedule booking: %w", ErrInternal, err)
	}
}
