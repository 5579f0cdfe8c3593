package models

import (
	"errors"
	"strings"
	"time"

	"github.com/m04kA/RestaurantBookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// ListBookingsRequest запрос страницы бронирований для администратора
type ListBookingsRequest struct {
	Page   int     // Номер страницы, начиная с 1
	Take   int     // Размер страницы
	Status *string // Фильтр по статусу (опционально)
}

// UpdateStatusRequest запрос на смену статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID             string    `json:"id"`
	Date           time.Time `json:"date"`
	Day            string    `json:"day"` // "2025-06-01"
	Guests         int       `json:"guests"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Allergies      *string   `json:"allergies,omitempty"`
	Preferences    *string   `json:"preferences,omitempty"`
	Notes          *string   `json:"notes,omitempty"`
	SpecialEventID *string   `json:"specialEventId,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// BookingListResponse страница бронирований
type BookingListResponse struct {
	Items []*BookingResponse `json:"items"`
	Total int                `json:"total"`
	Page  int                `json:"page"`
	Take  int                `json:"take"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
// Дата отдается в часовом поясе ресторана
func FromDomainBooking(b *domain.Booking, loc *time.Location) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:             b.ID,
		Date:           b.Date.In(loc),
		Day:            domain.DayKey(b.Day),
		Guests:         b.Guests,
		Name:           b.Name,
		Email:          b.Email,
		Phone:          b.Phone,
		Allergies:      b.Allergies,
		Preferences:    b.Preferences,
		Notes:          b.Notes,
		SpecialEventID: b.SpecialEventID,
		Status:         string(b.Status),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking, loc *time.Location) []*BookingResponse {
	items := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, FromDomainBooking(b, loc))
	}
	return items
}

// ToDomainBookingStatus конвертирует строку в статус (регистр не важен)
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status := domain.BookingStatus(strings.ToUpper(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
