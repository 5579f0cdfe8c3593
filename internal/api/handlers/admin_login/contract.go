package admin_login

import "github.com/m04kA/RestaurantBookingService/internal/service/session"

type SessionService interface {
	Login(password string) (*session.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
