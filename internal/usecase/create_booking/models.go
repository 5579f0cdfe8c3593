package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	Date           string  `validate:"required"`               // Дата и время ужина (YYYY-MM-DD, YYYY-MM-DDTHH:MM, RFC 3339)
	Guests         int     `validate:"min=1,max=12"`           // Количество гостей
	Name           string  `validate:"required,min=2,max=100"` // Имя гостя
	Email          string  `validate:"required,email,max=100"` // Email гостя
	Phone          string  `validate:"required,min=8,max=20"`  // Телефон гостя
	Allergies      *string `validate:"omitempty,max=500"`      // Аллергии (опционально)
	Preferences    *string `validate:"omitempty,max=500"`      // Пожелания (опционально)
	Notes          *string `validate:"omitempty,max=1000"`     // Заметки (опционально)
	SpecialEventID *string `validate:"omitempty,min=1"`        // Специальное событие (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID             string
	Date           time.Time // В часовом поясе ресторана
	Day            string    // "2025-06-01"
	Guests         int
	Name           string
	Email          string
	Phone          string
	Allergies      *string
	Preferences    *string
	Notes          *string
	SpecialEventID *string
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
