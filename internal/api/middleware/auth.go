package middleware

import (
	"net/http"

	"github.com/m04kA/RestaurantBookingService/internal/api/handlers"
	"github.com/m04kA/RestaurantBookingService/internal/service/session"
)

// SessionValidator проверка токена сессии администратора
type SessionValidator interface {
	Validate(token string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// AdminSession пропускает запрос только с действительной cookie rv_session
func AdminSession(validator SessionValidator, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(session.CookieName)
			if err != nil {
				logger.Warn("%s %s - Missing admin session", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w)
				return
			}

			if err := validator.Validate(cookie.Value); err != nil {
				logger.Warn("%s %s - Invalid admin session", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
