package create_booking

import (
	"time"

	"github.com/m04kA/RestaurantBookingService/internal/domain"
)

func toResponse(b *domain.Booking, loc *time.Location) *Response {
	return &Response{
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
