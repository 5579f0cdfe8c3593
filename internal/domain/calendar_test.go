package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rome(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Rome")
	require.NoError(t, err)
	return loc
}

func TestCalendarDayBounds(t *testing.T) {
	loc := rome(t)

	start, end := CalendarDayBounds(time.Date(2025, 6, 1, 21, 30, 0, 0, loc))

	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, loc), end)
}

func TestCalendarDayBounds_DSTChange(t *testing.T) {
	loc := rome(t)

	// 30 марта 2025 в Риме длится 23 часа
	start, end := CalendarDayBounds(time.Date(2025, 3, 30, 12, 0, 0, 0, loc))

	assert.Equal(t, time.Date(2025, 3, 31, 0, 0, 0, 0, loc), end)
	assert.Equal(t, 23*time.Hour, end.Sub(start))
}

func TestCalendarDayBounds_TimeOfDayIrrelevant(t *testing.T) {
	loc := rome(t)

	s1, e1 := CalendarDayBounds(time.Date(2025, 6, 1, 19, 0, 0, 0, loc))
	s2, e2 := CalendarDayBounds(time.Date(2025, 6, 1, 21, 30, 0, 0, loc))

	assert.Equal(t, s1, s2)
	assert.Equal(t, e1, e2)
}

func TestParseDate(t *testing.T) {
	loc := rome(t)

	tests := []struct {
		name     string
		in       string
		want     time.Time
		wantTime bool
	}{
		{"date only", "2025-07-04", time.Date(2025, 7, 4, 0, 0, 0, 0, loc), false},
		{"local minutes", "2025-06-01T19:00", time.Date(2025, 6, 1, 19, 0, 0, 0, loc), true},
		{"local seconds", "2025-06-01T21:30:00", time.Date(2025, 6, 1, 21, 30, 0, 0, loc), true},
		{"rfc3339 utc", "2025-06-01T17:00:00Z", time.Date(2025, 6, 1, 19, 0, 0, 0, loc), true},
		{"rfc3339 offset", "2025-06-01T23:30:00+00:00", time.Date(2025, 6, 2, 1, 30, 0, 0, loc), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hasTime, err := ParseDate(tt.in, loc)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
			assert.Equal(t, tt.wantTime, hasTime)
		})
	}
}

func TestParseDate_Malformed(t *testing.T) {
	loc := rome(t)

	for _, in := range []string{"", "tomorrow", "2025-13-01", "04/07/2025"} {
		_, _, err := ParseDate(in, loc)
		assert.ErrorIs(t, err, ErrMalformedDate, in)
	}
}

func TestWithTimeOf(t *testing.T) {
	loc := rome(t)

	got := WithTimeOf(
		time.Date(2025, 7, 10, 0, 0, 0, 0, loc),
		time.Date(2025, 7, 4, 20, 30, 0, 0, loc),
		loc,
	)

	assert.Equal(t, time.Date(2025, 7, 10, 20, 30, 0, 0, loc), got)
}

func TestDayKeyAndDateFromKey(t *testing.T) {
	loc := rome(t)

	// DATE из PostgreSQL приходит как полночь UTC
	fromDB := time.Date(2025, 7, 5, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "2025-07-05", DayKey(fromDB))
	assert.Equal(t, time.Date(2025, 7, 5, 0, 0, 0, 0, loc), DateFromKey(fromDB, loc))
}

func TestSameDay(t *testing.T) {
	loc := rome(t)

	a := time.Date(2025, 6, 1, 22, 30, 0, 0, time.UTC) // 2 июня 00:30 в Риме
	b := time.Date(2025, 6, 2, 19, 0, 0, 0, loc)

	assert.True(t, SameDay(a, b, loc))
	assert.False(t, SameDay(a, b, time.UTC))
}

func TestBookingStatus(t *testing.T) {
	assert.True(t, StatusPending.IsActive())
	assert.True(t, StatusConfirmed.IsActive())
	assert.False(t, StatusCancelled.IsActive())

	assert.True(t, BookingStatus("CONFIRMED").IsValid())
	assert.False(t, BookingStatus("confirmed").IsValid())
}

func TestActiveOnDayFilter(t *testing.T) {
	loc := rome(t)
	id := "b-1"

	f := ActiveOnDayFilter(time.Date(2025, 6, 1, 19, 0, 0, 0, loc), &id)

	assert.True(t, f.ActiveOnly)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, loc), *f.DateFrom)
	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, loc), *f.DateTo)
	assert.Equal(t, &id, f.ExcludeID)
}

func TestIsValidID(t *testing.T) {
	assert.True(t, IsValidID("7d444840-9dc0-11d1-b245-5ffdce74fad2"))
	assert.False(t, IsValidID("42"))
	assert.False(t, IsValidID(""))
}
