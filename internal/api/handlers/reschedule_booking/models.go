package reschedule_booking

import (
	"time"

	rescheduleBooking "github.com/m04kA/RestaurantBookingService/internal/usecase/reschedule_booking"
)

// RescheduleRequest HTTP request model
type RescheduleRequest struct {
	Date string `json:"date"` // "2025-07-10" или "2025-07-10T20:30"
}

// RescheduleResponse HTTP response model
type RescheduleResponse struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Day    string `json:"day"`
	Status string `json:"status"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleBooking.Response) *RescheduleResponse {
	return &RescheduleResponse{
		ID:     resp.ID,
		Date:   resp.Date.Format(time.RFC3339),
		Day:    resp.Day,
		Status: resp.Status,
	}
}
