package domain

// Ограничения входных данных бронирования
const (
	MinGuests          = 1
	MaxGuests          = 12
	MinNameLength      = 2
	MaxNameLength      = 100
	MaxEmailLength     = 100
	MinPhoneLength     = 8
	MaxPhoneLength     = 20
	MaxAllergiesLength = 500
	MaxPrefsLength     = 500
	MaxNotesLength     = 1000
	MaxReasonLength    = 200
)

// Пагинация списка бронирований в админке
const (
	DefaultPageSize = 10
	MinPageSize     = 1
	MaxPageSize     = 100
)

// Time format constants
const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02T15:04"
	TimeFormat     = "15:04"
)

// DefaultTimezone часовой пояс ресторана по умолчанию
const DefaultTimezone = "Europe/Rome"
