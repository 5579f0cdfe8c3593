package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RestaurantBookingService/internal/service/session"
	"github.com/m04kA/RestaurantBookingService/pkg/logger"
	"github.com/m04kA/RestaurantBookingService/pkg/metrics"
)

type fakeValidator struct {
	valid string
}

func (f fakeValidator) Validate(token string) error {
	if token != f.valid {
		return errors.New("invalid")
	}
	return nil
}

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func TestAdminSession(t *testing.T) {
	h := AdminSession(fakeValidator{valid: "good"}, logger.Nop())(http.HandlerFunc(okHandler))

	tests := []struct {
		name     string
		cookie   *http.Cookie
		wantCode int
	}{
		{"no cookie", nil, http.StatusUnauthorized},
		{"bad token", &http.Cookie{Name: session.CookieName, Value: "bad"}, http.StatusUnauthorized},
		{"other cookie", &http.Cookie{Name: "other", Value: "good"}, http.StatusUnauthorized},
		{"valid", &http.Cookie{Name: session.CookieName, Value: "good"}, http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewWithRegisterer("test", reg)

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/api/v1/admin/bookings/{bookingId}", okHandler).Methods(http.MethodDelete)

	for _, id := range []string{"a", "b", "c"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/admin/bookings/"+id, nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}

	families, err := reg.Gather()
	require.NoError(t, err)

	var total float64
	for _, mf := range families {
		if mf.GetName() != "http_requests_total" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range metric.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			assert.Equal(t, "/api/v1/admin/bookings/{bookingId}", labels["path"])
			total += metric.GetCounter().GetValue()
		}
	}
	assert.Equal(t, float64(3), total)
}
