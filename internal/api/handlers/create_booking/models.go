package create_booking

import (
	"bytes"
	"strconv"
	"time"

	createBooking "github.com/m04kA/RestaurantBookingService/internal/usecase/create_booking"
)

// GuestsCount количество гостей: число или строка с числом (так шлет форма)
type GuestsCount int

func (g *GuestsCount) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	n, err := strconv.Atoi(string(data))
	if err != nil {
		return err
	}
	*g = GuestsCount(n)
	return nil
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Date           string      `json:"date"` // "2025-06-01T19:00"
	Guests         GuestsCount `json:"guests"`
	Name           string      `json:"name"`
	Email          string      `json:"email"`
	Phone          string      `json:"phone"`
	Allergies      *string     `json:"allergies,omitempty"`
	Preferences    *string     `json:"preferences,omitempty"`
	Notes          *string     `json:"notes,omitempty"`
	SpecialEventID *string     `json:"specialEventId,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID             string  `json:"id"`
	Date           string  `json:"date"`
	Day            string  `json:"day"`
	Guests         int     `json:"guests"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	Allergies      *string `json:"allergies,omitempty"`
	Preferences    *string `json:"preferences,omitempty"`
	Notes          *string `json:"notes,omitempty"`
	SpecialEventID *string `json:"specialEventId,omitempty"`
	Status         string  `json:"status"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		Date:           r.Date,
		Guests:         int(r.Guests),
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		Allergies:      r.Allergies,
		Preferences:    r.Preferences,
		Notes:          r.Notes,
		SpecialEventID: r.SpecialEventID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:             resp.ID,
		Date:           resp.Date.Format(time.RFC3339),
		Day:            resp.Day,
		Guests:         resp.Guests,
		Name:           resp.Name,
		Email:          resp.Email,
		Phone:          resp.Phone,
		Allergies:      resp.Allergies,
		Preferences:    resp.Preferences,
		Notes:          resp.Notes,
		SpecialEventID: resp.SpecialEventID,
		Status:         resp.Status,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}
