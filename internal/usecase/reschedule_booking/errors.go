package reschedule_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("reschedule_booking: booking not found")

	// ErrInvalidDate возвращается, когда новую дату не удалось разобрать
	ErrInvalidDate = errors.New("reschedule_booking: invalid booking date")

	// ErrDateUnavailable возвращается, когда новый день занят другой бронью или закрыт
	ErrDateUnavailable = errors.New("reschedule_booking: date unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_booking: internal error")
)
