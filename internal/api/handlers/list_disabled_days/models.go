package list_disabled_days

import (
	"time"

	"github.com/m04kA/RestaurantBookingService/internal/service/blackout/models"
)

// DisabledDayResponse HTTP response model
type DisabledDayResponse struct {
	ID        string  `json:"id"`
	Day       string  `json:"day"`
	Reason    *string `json:"reason,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

// FromServiceList конвертирует ответ сервиса в HTTP response
func FromServiceList(days []*models.DisabledDayResponse) []*DisabledDayResponse {
	out := make([]*DisabledDayResponse, 0, len(days))
	for _, d := range days {
		out = append(out, &DisabledDayResponse{
			ID:        d.ID,
			Day:       d.Day,
			Reason:    d.Reason,
			CreatedAt: d.CreatedAt.Format(time.RFC3339),
		})
	}
	return out
}
