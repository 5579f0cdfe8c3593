package get_calendar

import "github.com/m04kA/RestaurantBookingService/internal/service/availability/models"

// CalendarResponse HTTP response model
type CalendarResponse struct {
	DisabledDates  []string `json:"disabledDates"`
	ConfirmedDates []string `json:"confirmedDates"`
	PendingDates   []string `json:"pendingDates"`
}

// FromServiceCalendar конвертирует ответ сервиса в HTTP response
func FromServiceCalendar(c *models.Calendar) *CalendarResponse {
	return &CalendarResponse{
		DisabledDates:  nonNil(c.DisabledDates),
		ConfirmedDates: nonNil(c.ConfirmedDates),
		PendingDates:   nonNil(c.PendingDates),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
