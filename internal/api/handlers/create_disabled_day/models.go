package create_disabled_day

import (
	"time"

	"github.com/m04kA/RestaurantBookingService/internal/service/blackout/models"
)

// CreateDisabledDayRequest HTTP request model
type CreateDisabledDayRequest struct {
	Day    string  `json:"day"` // "2025-07-05"
	Reason *string `json:"reason,omitempty"`
}

// DisabledDayResponse HTTP response model
type DisabledDayResponse struct {
	ID        string  `json:"id"`
	Day       string  `json:"day"`
	Reason    *string `json:"reason,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateDisabledDayRequest) ToServiceRequest() *models.AddRequest {
	return &models.AddRequest{Day: r.Day, Reason: r.Reason}
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(d *models.DisabledDayResponse) *DisabledDayResponse {
	return &DisabledDayResponse{
		ID:        d.ID,
		Day:       d.Day,
		Reason:    d.Reason,
		CreatedAt: d.CreatedAt.Format(time.RFC3339),
	}
}
