package availability

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/RestaurantBookingService/internal/domain"
	bookingRepo "github.com/m04kA/RestaurantBookingService/internal/infra/storage/booking"
	"github.com/m04kA/RestaurantBookingService/internal/service/availability/models"
)

// Service вычисляет занятость календаря. Ресторан принимает одну бронь на вечер:
// день занят, если на него есть не отменённая бронь или он закрыт администратором
type Service struct {
	bookingRepo     BookingRepository
	disabledDayRepo DisabledDayRepository
	loc             *time.Location
	logger          Logger
}

// NewService создает новый экземпляр сервиса доступности
// loc часовой пояс ресторана, в котором считаются календарные дни
func NewService(
	bookingRepo BookingRepository,
	disabledDayRepo DisabledDayRepository,
	loc *time.Location,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:     bookingRepo,
		disabledDayRepo: disabledDayRepo,
		loc:             loc,
		logger:          logger,
	}
}

// Location часовой пояс ресторана
func (s *Service) Location() *time.Location {
	return s.loc
}

// DayOf календарный день момента t в часовом поясе ресторана
func (s *Service) DayOf(t time.Time) time.Time {
	return domain.DayOf(t.In(s.loc))
}

// UnavailableDates возвращает дни, недоступные для новой брони:
// дни всех не отменённых бронирований и все закрытые дни. Дубликаты схлопываются
func (s *Service) UnavailableDates(ctx context.Context) ([]time.Time, error) {
	bookingDays, err := s.activeBookings(ctx)
	if err != nil {
		return nil, err
	}

	disabled, err := s.disabledDayRepo.List(ctx)
	if err != nil {
		s.logger.Error("UnavailableDates: failed to list disabled days: %v", err)
		return nil, fmt.Errorf("%w: UnavailableDates - list disabled days: %w", ErrInternal, err)
	}

	days := newDaySet()
	for _, b := range bookingDays {
		days.add(s.DayOf(b.Date))
	}
	for _, d := range disabled {
		days.add(domain.DateFromKey(d.Day, s.loc))
	}

	return days.sorted(), nil
}

// DateStatuses разбивает дни не отменённых бронирований на подтверждённые и ожидающие
// Объединение совпадает с частью UnavailableDates, полученной из бронирований
func (s *Service) DateStatuses(ctx context.Context) (*models.DateStatuses, error) {
	bookings, err := s.activeBookings(ctx)
	if err != nil {
		return nil, err
	}

	confirmed := newDaySet()
	pending := newDaySet()
	for _, b := range bookings {
		switch b.Status {
		case domain.StatusConfirmed:
			confirmed.add(s.DayOf(b.Date))
		case domain.StatusPending:
			pending.add(s.DayOf(b.Date))
		}
	}

	return &models.DateStatuses{
		Confirmed: confirmed.sorted(),
		Pending:   pending.sorted(),
	}, nil
}

// Calendar публичная проекция: недоступные дни и разбивка по статусам
func (s *Service) Calendar(ctx context.Context) (*models.Calendar, error) {
	unavailable, err := s.UnavailableDates(ctx)
	if err != nil {
		return nil, err
	}

	statuses, err := s.DateStatuses(ctx)
	if err != nil {
		return nil, err
	}

	return &models.Calendar{
		DisabledDates:  models.DayKeys(unavailable),
		ConfirmedDates: models.DayKeys(statuses.Confirmed),
		PendingDates:   models.DayKeys(statuses.Pending),
	}, nil
}

// CheckDate проверяет, что календарный день candidate свободен
// excludeID исключает саму бронь при переносе. Запись выполняет вызывающий код
// в той же транзакции
func (s *Service) CheckDate(ctx context.Context, candidate time.Time, excludeID *string) error {
	candidate = candidate.In(s.loc)
	dayKey := domain.DayKey(candidate)

	existing, err := s.bookingRepo.FindFirst(ctx, domain.ActiveOnDayFilter(candidate, excludeID))
	switch {
	case err == nil:
		s.logger.Warn("CheckDate: day %s already taken by booking id=%s", dayKey, existing.ID)
		return ErrDateUnavailable
	case !errors.Is(err, bookingRepo.ErrBookingNotFound):
		s.logger.Error("CheckDate: failed to look up bookings on %s: %v", dayKey, err)
		return fmt.Errorf("%w: CheckDate - find booking: %w", ErrInternal, err)
	}

	disabled, err := s.disabledDayRepo.ExistsOnDay(ctx, domain.DayOf(candidate))
	if err != nil {
		s.logger.Error("CheckDate: failed to look up disabled day %s: %v", dayKey, err)
		return fmt.Errorf("%w: CheckDate - disabled day lookup: %w", ErrInternal, err)
	}
	if disabled {
		s.logger.Warn("CheckDate: day %s is disabled", dayKey)
		return ErrDateUnavailable
	}

	return nil
}

func (s *Service) activeBookings(ctx context.Context) ([]*domain.Booking, error) {
	bookings, err := s.bookingRepo.List(ctx, domain.BookingsFilter{ActiveOnly: true})
	if err != nil {
		s.logger.Error("activeBookings: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: list active bookings: %w", ErrInternal, err)
	}
	return bookings, nil
}

// daySet множество календарных дней по ключу YYYY-MM-DD
type daySet map[string]time.Time

func newDaySet() daySet {
	return make(daySet)
}

func (d daySet) add(day time.Time) {
	d[domain.DayKey(day)] = day
}

func (d daySet) sorted() []time.Time {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	days := make([]time.Time, 0, len(keys))
	for _, k := range keys {
		days = append(days, d[k])
	}
	return days
}
