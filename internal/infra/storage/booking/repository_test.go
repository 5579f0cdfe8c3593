package booking

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RestaurantBookingService/internal/domain"
	"github.com/m04kA/RestaurantBookingService/pkg/psqlbuilder"
)

func TestApplyFilter_ActiveOnDay(t *testing.T) {
	loc := time.FixedZone("CEST", 2*60*60)
	exclude := "b-1"
	filter := domain.ActiveOnDayFilter(time.Date(2025, 6, 1, 19, 0, 0, 0, loc), &exclude)

	query, args, err := applyFilter(psqlbuilder.Select("id").From(tableBookings), filter).ToSql()

	require.NoError(t, err)
	assert.Equal(t,
		"SELECT id FROM bookings WHERE status <> $1 AND booking_date >= $2 AND booking_date < $3 AND id <> $4",
		query)
	require.Len(t, args, 4)
	assert.Equal(t, domain.StatusCancelled, args[0])
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, loc), args[1])
	assert.Equal(t, time.Date(2025, 6, 2, 0, 0, 0, 0, loc), args[2])
	assert.Equal(t, "b-1", args[3])
}

func TestApplyFilter_StatusAndPagination(t *testing.T) {
	status := domain.StatusConfirmed
	filter := domain.BookingsFilter{Status: &status, Limit: 10, Offset: 20}

	query, args, err := applyFilter(psqlbuilder.Select("id").From(tableBookings), filter).ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM bookings WHERE status = $1 LIMIT 10 OFFSET 20", query)
	assert.Equal(t, []interface{}{domain.StatusConfirmed}, args)
}

func TestIsActiveDayViolation(t *testing.T) {
	violation := &pq.Error{Code: pqUniqueViolation, Constraint: activeDayIndex}

	assert.True(t, isActiveDayViolation(violation))
	assert.True(t, isActiveDayViolation(fmt.Errorf("wrapped: %w", violation)))
	assert.False(t, isActiveDayViolation(&pq.Error{Code: pqUniqueViolation, Constraint: "bookings_pkey"}))
	assert.False(t, isActiveDayViolation(errors.New("other")))
}
