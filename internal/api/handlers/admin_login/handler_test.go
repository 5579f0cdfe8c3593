package admin_login

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RestaurantBookingService/internal/service/session"
	"github.com/m04kA/RestaurantBookingService/pkg/logger"
)

type fakeSessions struct {
	sess *session.Session
	err  error
}

func (f *fakeSessions) Login(string) (*session.Session, error) {
	return f.sess, f.err
}

func TestHandle_SetsCookie(t *testing.T) {
	expires := time.Now().Add(session.DefaultTTL)
	h := NewHandler(&fakeSessions{sess: &session.Session{Token: "tok", ExpiresAt: expires}}, true, logger.Nop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/admin/session", strings.NewReader(`{"password":"segreto"}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, session.CookieName, cookies[0].Name)
	assert.Equal(t, "tok", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		err      error
		wantCode int
	}{
		{"bad body", `nope`, nil, http.StatusBadRequest},
		{"empty password", `{"password":""}`, session.ErrInvalidInput, http.StatusBadRequest},
		{"wrong password", `{"password":"x"}`, session.ErrUnauthorized, http.StatusUnauthorized},
		{"internal", `{"password":"x"}`, session.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeSessions{err: tt.err}, false, logger.Nop())

			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/admin/session", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Empty(t, rec.Result().Cookies())
		})
	}
}
