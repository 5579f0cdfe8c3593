package create_booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBooking "github.com/m04kA/RestaurantBookingService/internal/usecase/create_booking"
	"github.com/m04kA/RestaurantBookingService/pkg/logger"
)

type fakeUseCase struct {
	got  *createBooking.Request
	resp *createBooking.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.got = req
	return f.resp, f.err
}

func doRequest(t *testing.T, uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(uc, logger.Nop())
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body)))
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{
		ID:     "b-1",
		Date:   time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC),
		Day:    "2025-06-01",
		Guests: 4,
		Status: "PENDING",
	}}

	rec := doRequest(t, uc, `{"date":"2025-06-01T19:00","guests":"4","name":"Sofia","email":"s@example.com","phone":"0612345678"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 4, uc.got.Guests)
	assert.Equal(t, "2025-06-01T19:00", uc.got.Date)

	var body BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "b-1", body.ID)
	assert.Equal(t, "PENDING", body.Status)
	assert.Equal(t, "2025-06-01T19:00:00Z", body.Date)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"bad body", `{`, nil, http.StatusBadRequest, msgInvalidRequestBody},
		{"bad guests", `{"guests":"four"}`, nil, http.StatusBadRequest, msgInvalidRequestBody},
		{"conflict", `{"guests":2}`, createBooking.ErrDateUnavailable, http.StatusConflict, msgDateUnavailable},
		{"invalid date", `{"guests":2}`, createBooking.ErrInvalidDate, http.StatusBadRequest, msgInvalidDate},
		{"validation", `{"guests":2}`, createBooking.ErrInvalidInput, http.StatusBadRequest, msgValidationFailed},
		{"internal", `{"guests":2}`, errors.New("db down"), http.StatusInternalServerError, "Errore del server"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &fakeUseCase{err: tt.err}, tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMsg, body["error"])
		})
	}
}
