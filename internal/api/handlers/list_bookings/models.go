package list_bookings

import (
	"fmt"
	"strconv"

	"github.com/m04kA/RestaurantBookingService/internal/domain"
	"github.com/m04kA/RestaurantBookingService/internal/service/bookings/models"
)

// ToServiceRequest разбирает query параметры page, take, status
// Отсутствующие page и take получают значения по умолчанию, границы проверяет сервис
func ToServiceRequest(pageStr, takeStr, statusStr string) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{Page: 1, Take: domain.DefaultPageSize}

	if pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil {
			return nil, fmt.Errorf("invalid page %q", pageStr)
		}
		req.Page = page
	}

	if takeStr != "" {
		take, err := strconv.Atoi(takeStr)
		if err != nil {
			return nil, fmt.Errorf("invalid take %q", takeStr)
		}
		req.Take = take
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	return req, nil
}
