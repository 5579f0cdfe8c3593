package blackout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/RestaurantBookingService/internal/domain"
	disabledDayRepo "github.com/m04kA/RestaurantBookingService/internal/infra/storage/disabledday"
	"github.com/m04kA/RestaurantBookingService/internal/service/blackout/models"
	"github.com/m04kA/RestaurantBookingService/pkg/ptr"
	"github.com/m04kA/RestaurantBookingService/pkg/validation"
)

// Service реестр дней, закрытых администратором для бронирования
// Закрытие дня не проверяет уже существующие брони
type Service struct {
	repo   DisabledDayRepository
	loc    *time.Location
	logger Logger
}

// NewService создает новый экземпляр сервиса закрытых дней
func NewService(repo DisabledDayRepository, loc *time.Location, logger Logger) *Service {
	return &Service{
		repo:   repo,
		loc:    loc,
		logger: logger,
	}
}

// Add закрывает календарный день. Время суток во входной дате игнорируется
func (s *Service) Add(ctx context.Context, req *models.AddRequest) (*models.DisabledDayResponse, error) {
	s.logger.Info("Add: disabling day=%s", req.Day)

	if err := validation.Struct(req); err != nil {
		s.logger.Warn("Add: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	date, _, err := domain.ParseDate(req.Day, s.loc)
	if err != nil {
		s.logger.Warn("Add: malformed day=%q: %v", req.Day, err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	var reason *string
	if req.Reason != nil {
		reason = ptr.NilIfEmpty(strings.TrimSpace(*req.Reason))
	}

	created, err := s.repo.Create(ctx, &domain.DisabledDay{
		Day:    domain.DayOf(date),
		Reason: reason,
	})
	if err != nil {
		s.logger.Error("Add: repository error for day=%s: %v", req.Day, err)
		return nil, fmt.Errorf("%w: Add - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("Add: disabled day=%s id=%s", domain.DayKey(created.Day), created.ID)
	return models.FromDomainDisabledDay(created), nil
}

// Remove открывает день. Удаление несуществующей записи не считается ошибкой
func (s *Service) Remove(ctx context.Context, id string) error {
	s.logger.Info("Remove: removing disabled day id=%s", id)

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, disabledDayRepo.ErrDisabledDayNotFound) {
			s.logger.Info("Remove: disabled day id=%s already absent", id)
			return nil
		}
		s.logger.Error("Remove: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: Remove - repository error: %w", ErrInternal, err)
	}

	return nil
}

// List возвращает закрытые дни по возрастанию даты
func (s *Service) List(ctx context.Context) ([]*models.DisabledDayResponse, error) {
	days, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %w", ErrInternal, err)
	}

	return models.FromDomainDisabledDayList(days), nil
}
