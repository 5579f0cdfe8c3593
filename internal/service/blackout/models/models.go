package models

import (
	"time"

	"github.com/m04kA/RestaurantBookingService/internal/domain"
)

// AddRequest запрос на закрытие дня
type AddRequest struct {
	Day    string  `validate:"required"`
	Reason *string `validate:"omitempty,max=200"`
}

// DisabledDayResponse закрытый день
type DisabledDayResponse struct {
	ID        string
	Day       string // YYYY-MM-DD
	Reason    *string
	CreatedAt time.Time
}

// FromDomainDisabledDay конвертирует доменную модель в ответ
func FromDomainDisabledDay(d *domain.DisabledDay) *DisabledDayResponse {
	return &DisabledDayResponse{
		ID:        d.ID,
		Day:       domain.DayKey(d.Day),
		Reason:    d.Reason,
		CreatedAt: d.CreatedAt,
	}
}

// FromDomainDisabledDayList конвертирует список закрытых дней
func FromDomainDisabledDayList(days []*domain.DisabledDay) []*DisabledDayResponse {
	out := make([]*DisabledDayResponse, 0, len(days))
	for _, d := range days {
		out = append(out, FromDomainDisabledDay(d))
	}
	return out
}
