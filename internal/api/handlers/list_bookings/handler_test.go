package list_bookings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RestaurantBookingService/internal/domain"
	"github.com/m04kA/RestaurantBookingService/internal/service/bookings"
	"github.com/m04kA/RestaurantBookingService/internal/service/bookings/models"
	"github.com/m04kA/RestaurantBookingService/pkg/logger"
)

type fakeService struct {
	got *models.ListBookingsRequest
	err error
}

func (f *fakeService) List(_ context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.BookingListResponse{Items: []*models.BookingResponse{}, Total: 0, Page: req.Page, Take: req.Take}, nil
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	rec := httptest.NewRecorder()

	NewHandler(svc, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings?page=2&take=20&status=PENDING", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, svc.got.Page)
	assert.Equal(t, 20, svc.got.Take)
	assert.Equal(t, "PENDING", *svc.got.Status)
	assert.JSONEq(t, `{"items":[],"total":0,"page":2,"take":20}`, rec.Body.String())
}

func TestHandle_Defaults(t *testing.T) {
	svc := &fakeService{}
	rec := httptest.NewRecorder()

	NewHandler(svc, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, svc.got.Page)
	assert.Equal(t, domain.DefaultPageSize, svc.got.Take)
	assert.Nil(t, svc.got.Status)
}

func TestHandle_InvalidParams(t *testing.T) {
	for _, q := range []string{"page=abc", "take=1.5", "page=99999999999999999999"} {
		t.Run(q, func(t *testing.T) {
			svc := &fakeService{}
			rec := httptest.NewRecorder()
			NewHandler(svc, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings?"+q, nil))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Nil(t, svc.got)
		})
	}

	// Границы page и take проверяет сервис, обработчик передает значения как есть
	for _, q := range []string{"page=0", "take=0", "take=101"} {
		t.Run(q, func(t *testing.T) {
			svc := &fakeService{err: bookings.ErrInvalidInput}
			rec := httptest.NewRecorder()
			NewHandler(svc, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings?"+q, nil))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			require.NotNil(t, svc.got)
		})
	}

	rec := httptest.NewRecorder()
	NewHandler(&fakeService{err: bookings.ErrInvalidInput}, logger.Nop()).
		Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings?status=DONE", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
