package delete_disabled_day

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/RestaurantBookingService/pkg/logger"
)

type fakeService struct {
	calls int
	err   error
}

func (f *fakeService) Remove(context.Context, string) error {
	f.calls++
	return f.err
}

func newRequest(id string) *http.Request {
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/disabled-days/"+id, nil)
	return mux.SetURLVars(req, map[string]string{"dayId": id})
}

const validID = "7d444840-9dc0-11d1-b245-5ffdce74fad2"

func TestHandle(t *testing.T) {
	svc := &fakeService{}
	rec := httptest.NewRecorder()

	NewHandler(svc, logger.Nop()).Handle(rec, newRequest(validID))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, svc.calls)
}

func TestHandle_MalformedIDIsNoop(t *testing.T) {
	svc := &fakeService{}
	rec := httptest.NewRecorder()

	NewHandler(svc, logger.Nop()).Handle(rec, newRequest("42"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, svc.calls)
}

func TestHandle_Error(t *testing.T) {
	rec := httptest.NewRecorder()

	NewHandler(&fakeService{err: errors.New("db down")}, logger.Nop()).Handle(rec, newRequest(validID))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
