package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrMalformedDate возвращается, когда строку не удалось разобрать как дату
var ErrMalformedDate = errors.New("domain: malformed date")

// Форматы, принимаемые от клиента. Без смещения значения трактуются в часовом поясе ресторана
var (
	dateOnlyLayouts = []string{DateFormat}
	localLayouts    = []string{"2006-01-02T15:04", "2006-01-02T15:04:05", "2006-01-02 15:04", "2006-01-02T15:04:05.000"}
	zonedLayouts    = []string{time.RFC3339, time.RFC3339Nano}
)

// DayOf обрезает момент до начала календарного дня в его часовом поясе
func DayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// CalendarDayBounds возвращает [начало дня, начало следующего дня) для момента t
// Единственное место, где дата бронирования сводится к календарному дню:
// проверка конфликтов, список недоступных дат и разбивка по статусам используют только её
func CalendarDayBounds(t time.Time) (start, end time.Time) {
	start = DayOf(t)
	end = start.AddDate(0, 0, 1)
	return start, end
}

// DayKey ключ календарного дня в формате YYYY-MM-DD
func DayKey(t time.Time) string {
	return t.Format(DateFormat)
}

// SameDay два момента приходятся на один календарный день в поясе loc
func SameDay(a, b time.Time, loc *time.Location) bool {
	return DayKey(a.In(loc)) == DayKey(b.In(loc))
}

// ParseDate разбирает дату от клиента
// hasTime = false, если указан только день (YYYY-MM-DD)
func ParseDate(s string, loc *time.Location) (t time.Time, hasTime bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false, fmt.Errorf("%w: empty value", ErrMalformedDate)
	}

	for _, layout := range dateOnlyLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, false, nil
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true, nil
		}
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.In(loc), true, nil
		}
	}

	return time.Time{}, false, fmt.Errorf("%w: %q", ErrMalformedDate, s)
}

// WithTimeOf переносит день day, сохраняя время суток из clock (оба в поясе loc)
func WithTimeOf(day, clock time.Time, loc *time.Location) time.Time {
	d := day.In(loc)
	c := clock.In(loc)
	return time.Date(d.Year(), d.Month(), d.Day(), c.Hour(), c.Minute(), c.Second(), c.Nanosecond(), loc)
}

// DateFromKey восстанавливает календарный день из DATE-значения БД (год/месяц/день без сдвига) в поясе loc
func DateFromKey(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
