package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/RestaurantBookingService/pkg/logger"
)

func newService(t *testing.T) *Service {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("segreto"), bcrypt.MinCost)
	require.NoError(t, err)
	return NewService(string(hash), "test-secret", 0, logger.Nop())
}

func TestLoginAndValidate(t *testing.T) {
	svc := newService(t)

	sess, err := svc.Login("segreto")
	require.NoError(t, err)
	assert.NotEmpty(t, sess.Token)
	assert.WithinDuration(t, time.Now().Add(DefaultTTL), sess.ExpiresAt, time.Minute)

	assert.NoError(t, svc.Validate(sess.Token))
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newService(t)

	_, err := svc.Login("sbagliato")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.Login("")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestValidate_Expired(t *testing.T) {
	svc := newService(t)

	sess, err := svc.Login("segreto")
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(DefaultTTL + time.Hour) }
	assert.ErrorIs(t, svc.Validate(sess.Token), ErrUnauthorized)
}

func TestValidate_ForeignSecret(t *testing.T) {
	svc := newService(t)
	other := NewService(string(svc.passwordHash), "another-secret", 0, logger.Nop())

	sess, err := other.Login("segreto")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Validate(sess.Token), ErrUnauthorized)
	assert.ErrorIs(t, svc.Validate(""), ErrUnauthorized)
	assert.ErrorIs(t, svc.Validate("garbage"), ErrUnauthorized)
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("segreto")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("segreto")))
}
