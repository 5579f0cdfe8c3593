package get_calendar

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/RestaurantBookingService/internal/service/availability/models"
	"github.com/m04kA/RestaurantBookingService/pkg/logger"
)

type fakeService struct {
	cal *models.Calendar
	err error
}

func (f *fakeService) Calendar(context.Context) (*models.Calendar, error) {
	return f.cal, f.err
}

func TestHandle(t *testing.T) {
	h := NewHandler(&fakeService{cal: &models.Calendar{
		DisabledDates:  []string{"2025-06-01", "2025-07-05"},
		ConfirmedDates: []string{"2025-06-01"},
	}}, logger.Nop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/calendar", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"disabledDates":["2025-06-01","2025-07-05"],"confirmedDates":["2025-06-01"],"pendingDates":[]}`, rec.Body.String())
}

func TestHandle_Error(t *testing.T) {
	h := NewHandler(&fakeService{err: errors.New("db down")}, logger.Nop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/calendar", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
