package discord

import "errors"

var (
	// ErrNotConfigured возвращается, когда не задан канал или сессия Discord
	ErrNotConfigured = errors.New("discord notifier: not configured")

	// ErrSend возвращается, когда Discord не принял сообщение
	ErrSend = errors.New("discord notifier: failed to send message")
)
