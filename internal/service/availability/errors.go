package availability

import "errors"

var (
	// ErrDateUnavailable возвращается, когда на календарный день уже есть активная бронь
	// или день закрыт администратором
	ErrDateUnavailable = errors.New("availability: date unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("availability: internal error")
)
