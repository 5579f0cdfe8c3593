package get_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
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

func (f *fakeService) GetByID(_ context.Context, id string) (*models.BookingResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.BookingResponse{ID: id, Status: "PENDING"}, nil
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"found", nil, http.StatusOK},
		{"not found", bookings.ErrBookingNotFound, http.StatusNotFound},
		{"internal", bookings.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings/b-1", nil), map[string]string{"bookingId": "b-1"})
			rec := httptest.NewRecorder()

			NewHandler(&fakeService{err: tt.err}, logger.Nop()).Handle(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
