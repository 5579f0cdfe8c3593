package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/RestaurantBookingService/internal/domain"
	"github.com/m04kA/RestaurantBookingService/internal/infra/storage/booking"
	"github.com/m04kA/RestaurantBookingService/internal/infra/storage/disabledday"
)

// Хранилище возвращает те же ошибки, что и репозитории PostgreSQL
var (
	ErrBookingNotFound     = booking.ErrBookingNotFound
	ErrDayTaken            = booking.ErrDayTaken
	ErrDisabledDayNotFound = disabledday.ErrDisabledDayNotFound
)

// Store хранилище в памяти с теми же гарантиями, что и схема PostgreSQL:
// не больше одной не отменённой брони на календарный день.
// Транзакции сериализуются мьютексом; откат записей не поддерживается,
// поэтому вызывающий код выполняет запись последним шагом
type Store struct {
	txMu sync.Mutex
	mu   sync.RWMutex

	bookings     map[string]domain.Booking
	disabledDays map[string]domain.DisabledDay

	now func() time.Time
}

// NewStore создает пустое хранилище
func NewStore() *Store {
	return &Store{
		bookings:     make(map[string]domain.Booking),
		disabledDays: make(map[string]domain.DisabledDay),
		now:          time.Now,
	}
}

// Bookings репозиторий бронирований поверх хранилища
func (s *Store) Bookings() *BookingRepository { return &BookingRepository{s: s} }

// DisabledDays репозиторий закрытых дней поверх хранилища
func (s *Store) DisabledDays() *DisabledDayRepository { return &DisabledDayRepository{s: s} }

// TxManager менеджер транзакций поверх хранилища
func (s *Store) TxManager() *TxManager { return &TxManager{s: s} }

type txKey struct{}

// TxManager сериализует транзакции хранилища
type TxManager struct {
	s *Store
}

func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *TxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *TxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, fn)
}

func (m *TxManager) run(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}
	m.s.txMu.Lock()
	defer m.s.txMu.Unlock()
	return fn(context.WithValue(ctx, txKey{}, true))
}

// BookingRepository бронирования в памяти
type BookingRepository struct {
	s *Store
}

func (r *BookingRepository) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.IsActive() && r.s.activeOnDayLocked(b.Day, b.ID) {
		return nil, ErrDayTaken
	}

	now := r.s.now()
	b.CreatedAt = now
	b.UpdatedAt = now
	r.s.bookings[b.ID] = *b

	out := *b
	return &out, nil
}

func (r *BookingRepository) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	b, ok := r.s.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	return &b, nil
}

func (r *BookingRepository) FindFirst(ctx context.Context, filter domain.BookingsFilter) (*domain.Booking, error) {
	filter.Limit = 1
	filter.Offset = 0

	items, err := r.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrBookingNotFound
	}
	return items[0], nil
}

func (r *BookingRepository) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	matched := r.s.matchLocked(filter)

	if filter.Offset > 0 {
		if filter.Offset >= len(matched) {
			return []*domain.Booking{}, nil
		}
		matched = matched[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}

	return matched, nil
}

func (r *BookingRepository) Count(_ context.Context, filter domain.BookingsFilter) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return len(r.s.matchLocked(filter)), nil
}

func (r *BookingRepository) UpdateStatus(_ context.Context, id string, status domain.BookingStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.bookings[id]
	if !ok {
		return ErrBookingNotFound
	}
	if status.IsActive() && !b.IsActive() && r.s.activeOnDayLocked(b.Day, id) {
		return ErrDayTaken
	}

	b.Status = status
	b.UpdatedAt = r.s.now()
	r.s.bookings[id] = b
	return nil
}

func (r *BookingRepository) UpdateDate(_ context.Context, id string, date, day time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.bookings[id]
	if !ok {
		return ErrBookingNotFound
	}
	if b.IsActive() && r.s.activeOnDayLocked(day, id) {
		return ErrDayTaken
	}

	b.Date = date
	b.Day = day
	b.UpdatedAt = r.s.now()
	r.s.bookings[id] = b
	return nil
}

func (r *BookingRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.bookings[id]; !ok {
		return ErrBookingNotFound
	}
	delete(r.s.bookings, id)
	return nil
}

// DisabledDayRepository закрытые дни в памяти
type DisabledDayRepository struct {
	s *Store
}

func (r *DisabledDayRepository) Create(_ context.Context, day *domain.DisabledDay) (*domain.DisabledDay, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if day.ID == "" {
		day.ID = uuid.NewString()
	}
	day.Day = domain.DayOf(day.Day)
	day.CreatedAt = r.s.now()
	r.s.disabledDays[day.ID] = *day

	out := *day
	return &out, nil
}

func (r *DisabledDayRepository) List(_ context.Context) ([]*domain.DisabledDay, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	days := make([]*domain.DisabledDay, 0, len(r.s.disabledDays))
	for _, d := range r.s.disabledDays {
		d := d
		days = append(days, &d)
	}
	sort.Slice(days, func(i, j int) bool {
		ki, kj := domain.DayKey(days[i].Day), domain.DayKey(days[j].Day)
		if ki != kj {
			return ki < kj
		}
		return days[i].ID < days[j].ID
	})
	return days, nil
}

func (r *DisabledDayRepository) ExistsOnDay(_ context.Context, day time.Time) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	key := domain.DayKey(day)
	for _, d := range r.s.disabledDays {
		if domain.DayKey(d.Day) == key {
			return true, nil
		}
	}
	return false, nil
}

func (r *DisabledDayRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.disabledDays[id]; !ok {
		return ErrDisabledDayNotFound
	}
	delete(r.s.disabledDays, id)
	return nil
}

// activeOnDayLocked есть ли на день другая активная бронь (вызывать под mu)
func (s *Store) activeOnDayLocked(day time.Time, excludeID string) bool {
	key := domain.DayKey(day)
	for id, b := range s.bookings {
		if id != excludeID && b.IsActive() && domain.DayKey(b.Day) == key {
			return true
		}
	}
	return false
}

// matchLocked возвращает копии бронирований под фильтр, отсортированные по дате и id (вызывать под mu)
func (s *Store) matchLocked(filter domain.BookingsFilter) []*domain.Booking {
	matched := make([]*domain.Booking, 0)
	for _, b := range s.bookings {
		if !matches(&b, filter) {
			continue
		}
		b := b
		matched = append(matched, &b)
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].Date.Equal(matched[j].Date) {
			return matched[i].Date.Before(matched[j].Date)
		}
		return matched[i].ID < matched[j].ID
	})
	return matched
}

func matches(b *domain.Booking, f domain.BookingsFilter) bool {
	if f.Status != nil && b.Status != *f.Status {
		return false
	}
	if f.ActiveOnly && !b.IsActive() {
		return false
	}
	if f.DateFrom != nil && b.Date.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && !b.Date.Before(*f.DateTo) {
		return false
	}
	if f.ExcludeID != nil && b.ID == *f.ExcludeID {
		return false
	}
	return true
}
