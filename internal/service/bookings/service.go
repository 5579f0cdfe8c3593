package bookings

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/m04kA/RestaurantBookingService/internal/domain"
	bookingRepo "github.com/m04kA/RestaurantBookingService/internal/infra/storage/booking"
	"github.com/m04kA/RestaurantBookingService/internal/service/availability"
	"github.com/m04kA/RestaurantBookingService/internal/service/bookings/models"
)

// Service сервис администрирования бронирований
type Service struct {
	bookingRepo  BookingRepository
	availability AvailabilityChecker
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	availability AvailabilityChecker,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		availability: availability,
		txManager:    txManager,
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	booking, err := s.load(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainBooking(booking, s.availability.Location()), nil
}

// List возвращает страницу бронирований по возрастанию даты и общее количество
// Page >= 1, Take в диапазоне [MinPageSize, MaxPageSize], иначе ErrInvalidInput
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	page, take := req.Page, req.Take
	if err := validatePaging(page, take); err != nil {
		s.logger.Warn("List: %v", err)
		return nil, err
	}
	s.logger.Info("List: page=%d, take=%d, status=%v", page, take, req.Status)

	filter := domain.BookingsFilter{}
	if req.Status != nil && *req.Status != "" {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("List: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status filter", ErrInvalidInput)
		}
		filter.Status = &status
	}

	var (
		items []*domain.Booking
		total int
	)
	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		var err error
		total, err = s.bookingRepo.Count(ctx, filter)
		if err != nil {
			return err
		}

		pageFilter := filter
		pageFilter.Limit = take
		pageFilter.Offset = (page - 1) * take
		items, err = s.bookingRepo.List(ctx, pageFilter)
		return err
	})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d of %d bookings", len(items), total)
	return &models.BookingListResponse{
		Items: models.FromDomainBookingList(items, s.availability.Location()),
		Total: total,
		Page:  page,
		Take:  take,
	}, nil
}

// UpdateStatus меняет статус бронирования
// Возврат отменённой брони в PENDING/CONFIRMED повторно проверяет занятость дня,
// проверка и запись выполняются в одной сериализуемой транзакции
func (s *Service) UpdateStatus(ctx context.Context, id string, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%s to status=%s", id, req.Status)

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%s", req.Status, id)
		return nil, ErrInvalidStatus
	}

	var updated *domain.Booking
	err = s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		booking, err := s.load(ctx, "UpdateStatus", id)
		if err != nil {
			return err
		}

		if newStatus.IsActive() && !booking.IsActive() {
			if err := s.availability.CheckDate(ctx, booking.Date, &booking.ID); err != nil {
				return s.mapAvailabilityError("UpdateStatus", id, err)
			}
		}

		if err := s.bookingRepo.UpdateStatus(ctx, id, newStatus); err != nil {
			return s.mapRepositoryError("UpdateStatus", id, err)
		}

		updated, err = s.load(ctx, "UpdateStatus", id)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateStatus: booking id=%s is now %s", id, newStatus)
	return models.FromDomainBooking(updated, s.availability.Location()), nil
}

// Delete удаляет бронирование безвозвратно
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting booking id=%s", id)

	if !domain.IsValidID(id) {
		s.logger.Warn("Delete: malformed booking id=%s", id)
		return ErrBookingNotFound
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		return s.mapRepositoryError("Delete", id, err)
	}

	s.logger.Info("Delete: booking id=%s deleted", id)
	return nil
}

func (s *Service) load(ctx context.Context, op string, id string) (*domain.Booking, error) {
	if !domain.IsValidID(id) {
		s.logger.Warn("%s: malformed booking id=%s", op, id)
		return nil, ErrBookingNotFound
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepositoryError(op, id, err)
	}
	return booking, nil
}

func (s *Service) mapRepositoryError(op string, id string, err error) error {
	switch {
	case errors.Is(err, bookingRepo.ErrBookingNotFound):
		s.logger.Warn("%s: booking id=%s not found", op, id)
		return ErrBookingNotFound
	case errors.Is(err, bookingRepo.ErrDayTaken):
		s.logger.Warn("%s: day of booking id=%s already taken", op, id)
		return ErrDateUnavailable
	default:
		s.logger.Error("%s: repository error for booking id=%s: %v", op, id, err)
		return fmt.Errorf("%w: %s - repository error: %w", ErrInternal, op, err)
	}
}

func (s *Service) mapAvailabilityError(op string, id string, err error) error {
	if errors.Is(err, availability.ErrDateUnavailable) {
		return ErrDateUnavailable
	}
	s.logger.Error("%s: availability check failed for booking id=%s: %v", op, id, err)
	return fmt.Errorf("%w: %s - availability check: %w", ErrInternal, op, err)
}

// validatePaging проверяет границы страницы; смещение (page-1)*take должно помещаться в int
func validatePaging(page, take int) error {
	if take < domain.MinPageSize || take > domain.MaxPageSize {
		return fmt.Errorf("%w: take=%d out of range [%d, %d]", ErrInvalidInput, take, domain.MinPageSize, domain.MaxPageSize)
	}
	if page < 1 || page-1 > math.MaxInt/take {
		return fmt.Errorf("%w: page=%d out of range", ErrInvalidInput, page)
	}
	return nil
}
