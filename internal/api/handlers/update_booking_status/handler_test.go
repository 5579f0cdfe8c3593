package update_booking_status

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/RestaurantBookingService/internal/service/bookings"
	"github.com/m04kA/RestaurantBookingService/internal/service/bookings/models"
	"github.com/m04kA/RestaurantBookingService/pkg/logger"
)

type fakeService struct {
	err error
}

func (f *fakeService) UpdateStatus(_ context.Context, id string, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.BookingResponse{ID: id, Status: req.Status}, nil
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		err      error
		wantCode int
	}{
		{"ok", `{"status":"CONFIRMED"}`, nil, http.StatusOK},
		{"bad body", `[`, nil, http.StatusBadRequest},
		{"invalid status", `{"status":"X"}`, bookings.ErrInvalidStatus, http.StatusBadRequest},
		{"not found", `{"status":"CONFIRMED"}`, bookings.ErrBookingNotFound, http.StatusNotFound},
		{"reactivation conflict", `{"status":"PENDING"}`, bookings.ErrDateUnavailable, http.StatusConflict},
		{"internal", `{"status":"PENDING"}`, bookings.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/bookings/b-1/status", strings.NewReader(tt.body))
			req = mux.SetURLVars(req, map[string]string{"bookingId": "b-1"})
			rec := httptest.NewRecorder()

			NewHandler(&fakeService{err: tt.err}, logger.Nop()).Handle(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
