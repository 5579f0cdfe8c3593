package discord

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RestaurantBookingService/internal/domain"
	"github.com/m04kA/RestaurantBookingService/pkg/logger"
	"github.com/m04kA/RestaurantBookingService/pkg/ptr"
)

type fakeSender struct {
	channelID string
	content   string
	mentions  *discordgo.MessageAllowedMentions
	err       error
}

func (f *fakeSender) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.channelID = channelID
	f.content = data.Content
	f.mentions = data.AllowedMentions
	return &discordgo.Message{}, f.err
}

func testBooking(loc *time.Location) *domain.Booking {
	return &domain.Booking{
		ID:        "b-1",
		Date:      time.Date(2025, 6, 1, 19, 30, 0, 0, loc),
		Guests:    6,
		Name:      "Anna Neri",
		Email:     "anna@example.com",
		Phone:     "+390655566677",
		Allergies: ptr.Ptr("glutine"),
		Status:    domain.StatusPending,
	}
}

func TestNotifyBookingCreated(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Rome")
	require.NoError(t, err)

	sender := &fakeSender{}
	n := NewNotifier(sender, "chan-1", loc, logger.Nop())

	require.NoError(t, n.NotifyBookingCreated(context.Background(), testBooking(loc)))
	assert.Equal(t, "chan-1", sender.channelID)
	assert.Contains(t, sender.content, "01/06/2025 19:30")
	assert.Contains(t, sender.content, "**Ospiti:** 6")
	assert.Contains(t, sender.content, "**Allergie:** glutine")
	assert.NotContains(t, sender.content, "**Note:**")
}

func TestNotifyBookingCreated_SendError(t *testing.T) {
	sender := &fakeSender{err: errors.New("rate limited")}
	n := NewNotifier(sender, "chan-1", time.UTC, logger.Nop())

	err := n.NotifyBookingCreated(context.Background(), testBooking(time.UTC))
	assert.ErrorIs(t, err, ErrSend)
}

func TestNotifyBookingCreated_NotConfigured(t *testing.T) {
	n := NewNotifier(&fakeSender{}, "", time.UTC, logger.Nop())

	err := n.NotifyBookingCreated(context.Background(), testBooking(time.UTC))
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestNotifyBookingCreated_MaxLengthFieldsFitDiscordLimit(t *testing.T) {
	sender := &fakeSender{}
	n := NewNotifier(sender, "chan-1", time.UTC, logger.Nop())

	b := testBooking(time.UTC)
	b.Name = strings.Repeat("N", domain.MaxNameLength)
	b.Email = strings.Repeat("e", domain.MaxEmailLength-len("@example.com")) + "@example.com"
	b.Phone = strings.Repeat("3", domain.MaxPhoneLength)
	b.Allergies = ptr.Ptr(strings.Repeat("à", domain.MaxAllergiesLength))
	b.Preferences = ptr.Ptr(strings.Repeat("p", domain.MaxPrefsLength))
	b.Notes = ptr.Ptr(strings.Repeat("n", domain.MaxNotesLength))

	require.NoError(t, n.NotifyBookingCreated(context.Background(), b))

	assert.LessOrEqual(t, utf8.RuneCountInString(sender.content), maxMessageRunes)
	assert.True(t, utf8.ValidString(sender.content))
	assert.Contains(t, sender.content, "**Note:** ")
	assert.Contains(t, sender.content, "**Stato:** PENDING")
}

func TestNotifyBookingCreated_SuppressesMentions(t *testing.T) {
	sender := &fakeSender{}
	n := NewNotifier(sender, "chan-1", time.UTC, logger.Nop())

	b := testBooking(time.UTC)
	b.Notes = ptr.Ptr("@everyone dinner")

	require.NoError(t, n.NotifyBookingCreated(context.Background(), b))

	require.NotNil(t, sender.mentions)
	assert.Empty(t, sender.mentions.Parse)
	assert.Empty(t, sender.mentions.Users)
	assert.Empty(t, sender.mentions.Roles)
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "ciao", truncateRunes("ciao", 4))
	assert.Equal(t, "ci…", truncateRunes("ciao", 3))
	assert.Equal(t, "èè…", truncateRunes("èèèè", 3))
}
