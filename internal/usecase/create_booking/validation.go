package create_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/RestaurantBookingService/pkg/ptr"
	"github.com/m04kA/RestaurantBookingService/pkg/validation"
)

// normalizeRequest обрезает пробелы; пустые необязательные поля становятся nil
func normalizeRequest(req *Request) {
	req.Date = strings.TrimSpace(req.Date)
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Allergies = trimOptional(req.Allergies)
	req.Preferences = trimOptional(req.Preferences)
	req.Notes = trimOptional(req.Notes)
	req.SpecialEventID = trimOptional(req.SpecialEventID)
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if err := validation.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	return ptr.NilIfEmpty(strings.TrimSpace(*s))
}
