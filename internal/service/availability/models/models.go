package models

import (
	"time"

	"github.com/m04kA/RestaurantBookingService/internal/domain"
)

// DateStatuses занятые дни, разбитые по статусу брони
type DateStatuses struct {
	Confirmed []time.Time
	Pending   []time.Time
}

// Calendar публичная проекция календаря в виде ключей YYYY-MM-DD
type Calendar struct {
	DisabledDates  []string
	ConfirmedDates []string
	PendingDates   []string
}

// DayKeys переводит дни в ключи YYYY-MM-DD
func DayKeys(days []time.Time) []string {
	keys := make([]string, 0, len(days))
	for _, d := range days {
		keys = append(keys, domain.DayKey(d))
	}
	return keys
}
