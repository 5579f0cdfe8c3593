package domain

import "time"

// BookingStatus статус бронирования
type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCancelled BookingStatus = "CANCELLED"
)

// Statuses все допустимые статусы
var Statuses = []BookingStatus{StatusPending, StatusConfirmed, StatusCancelled}

// IsValid проверяет, что статус известен
func (s BookingStatus) IsValid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// IsActive активный статус занимает день (PENDING и CONFIRMED)
func (s BookingStatus) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

// Booking бронирование ужина. Ресторан принимает одну бронь на вечер
type Booking struct {
	ID string
	// Date момент, выбранный гостем. Время суток носит информационный характер
	Date time.Time
	// Day календарный день Date в часовом поясе ресторана (00:00)
	Day time.Time

	Guests      int
	Name        string
	Email       string
	Phone       string
	Allergies   *string
	Preferences *string
	Notes       *string

	SpecialEventID *string
	Status         BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive бронирование не отменено
func (b *Booking) IsActive() bool {
	return b.Status.IsActive()
}

// BookingsFilter фильтр выборки бронирований
type BookingsFilter struct {
	Status     *BookingStatus // Точный статус (опционально)
	ActiveOnly bool           // Исключить CANCELLED
	DateFrom   *time.Time     // date >= DateFrom
	DateTo     *time.Time     // date < DateTo
	ExcludeID  *string        // id <> ExcludeID (перенос брони не конфликтует сам с собой)
	Limit      int            // 0 = без ограничения
	Offset     int
}

// ActiveOnDayFilter фильтр активных бронирований на календарный день [dayStart, dayEnd)
func ActiveOnDayFilter(date time.Time, excludeID *string) BookingsFilter {
	dayStart, dayEnd := CalendarDayBounds(date)
	return BookingsFilter{
		ActiveOnly: true,
		DateFrom:   &dayStart,
		DateTo:     &dayEnd,
		ExcludeID:  excludeID,
	}
}
