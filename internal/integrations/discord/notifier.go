package discord

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/m04kA/RestaurantBookingService/internal/domain"
)

// Ограничения сообщения Discord. Свободный текст гостя обрезается до своих лимитов,
// итоговое сообщение не длиннее maxMessageRunes
const (
	maxMessageRunes   = 2000
	maxFreeTextRunes  = 300
	maxNotesTextRunes = 600
	ellipsis          = "…"
)

// MessageSender отправка сообщения в канал (*discordgo.Session)
type MessageSender interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Notifier уведомляет персонал ресторана о новых бронированиях в канал Discord
type Notifier struct {
	sender    MessageSender
	channelID string
	loc       *time.Location
	log       Logger
}

// NewNotifier создает уведомитель поверх сессии Discord
func NewNotifier(sender MessageSender, channelID string, loc *time.Location, log Logger) *Notifier {
	return &Notifier{
		sender:    sender,
		channelID: channelID,
		loc:       loc,
		log:       log,
	}
}

// NewSession открывает REST-сессию Discord по токену бота
func NewSession(token string) (*discordgo.Session, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("%w: create session: %v", ErrNotConfigured, err)
	}
	return session, nil
}

// NotifyBookingCreated отправляет сообщение о новой брони
func (n *Notifier) NotifyBookingCreated(ctx context.Context, b *domain.Booking) error {
	if n.sender == nil || n.channelID == "" {
		return ErrNotConfigured
	}

	msg := &discordgo.MessageSend{
		Content: n.bookingMessage(b),
		// Текст гостя не должен пинговать канал (@everyone, @here, роли)
		AllowedMentions: &discordgo.MessageAllowedMentions{},
	}

	_, err := n.sender.ChannelMessageSendComplex(n.channelID, msg, discordgo.WithContext(ctx))
	if err != nil {
		n.log.Error("Failed to send discord message for booking id=%s: %v", b.ID, err)
		return fmt.Errorf("%w: %v", ErrSend, err)
	}

	n.log.Info("Discord notification sent for booking id=%s", b.ID)
	return nil
}

func (n *Notifier) bookingMessage(b *domain.Booking) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "🍽️ **Nuova prenotazione**\n")
	fmt.Fprintf(&sb, "**Data:** %s\n", b.Date.In(n.loc).Format("02/01/2006 15:04"))
	fmt.Fprintf(&sb, "**Ospiti:** %d\n", b.Guests)
	fmt.Fprintf(&sb, "**Nome:** %s\n", b.Name)
	fmt.Fprintf(&sb, "**Email:** %s\n", b.Email)
	fmt.Fprintf(&sb, "**Telefono:** %s\n", b.Phone)
	if b.Allergies != nil {
		fmt.Fprintf(&sb, "**Allergie:** %s\n", truncateRunes(*b.Allergies, maxFreeTextRunes))
	}
	if b.Preferences != nil {
		fmt.Fprintf(&sb, "**Preferenze:** %s\n", truncateRunes(*b.Preferences, maxFreeTextRunes))
	}
	if b.Notes != nil {
		fmt.Fprintf(&sb, "**Note:** %s\n", truncateRunes(*b.Notes, maxNotesTextRunes))
	}
	fmt.Fprintf(&sb, "**Stato:** %s", b.Status)

	return truncateRunes(sb.String(), maxMessageRunes)
}

// truncateRunes обрезает s до limit рун, включая многоточие
func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + ellipsis
}

// NopNotifier уведомитель для окружений без Discord
type NopNotifier struct{}

func (NopNotifier) NotifyBookingCreated(context.Context, *domain.Booking) error {
	return nil
}
