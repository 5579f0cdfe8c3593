package session

import "errors"

var (
	// ErrUnauthorized возвращается при неверном пароле или недействительной сессии
	ErrUnauthorized = errors.New("session: unauthorized")

	// ErrInvalidInput возвращается при пустом пароле
	ErrInvalidInput = errors.New("session: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("session: internal error")
)
