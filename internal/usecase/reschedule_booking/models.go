package reschedule_booking

import "time"

// Request модель запроса на перенос бронирования
type Request struct {
	BookingID string
	Date      string // YYYY-MM-DD сохраняет прежнее время ужина, дата со временем заменяет его
}

// Response результат переноса
type Response struct {
	ID     string
	Date   time.Time // В часовом поясе ресторана
	Day    string    // "2025-06-01"
	Status string
}
