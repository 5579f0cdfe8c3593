package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	// CookieName имя cookie с токеном администратора
	CookieName = "rv_session"

	// DefaultTTL время жизни сессии администратора
	DefaultTTL = 7 * 24 * time.Hour

	adminSubject = "admin"
)

// Session выданная сессия администратора
type Session struct {
	Token     string
	ExpiresAt time.Time
}

// Service вход администратора по паролю и проверка подписанной сессии
type Service struct {
	passwordHash []byte
	secret       []byte
	ttl          time.Duration
	now          func() time.Time
	logger       Logger
}

// NewService создает сервис сессий
// passwordHash bcrypt-хеш пароля администратора, secret ключ подписи HS256
func NewService(passwordHash string, secret string, ttl time.Duration, logger Logger) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		passwordHash: []byte(passwordHash),
		secret:       []byte(secret),
		ttl:          ttl,
		now:          time.Now,
		logger:       logger,
	}
}

// Login проверяет пароль и выдает токен сессии
func (s *Service) Login(password string) (*Session, error) {
	if password == "" {
		return nil, ErrInvalidInput
	}

	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			s.logger.Warn("Login: wrong admin password")
			return nil, ErrUnauthorized
		}
		s.logger.Error("Login: failed to compare password hash: %v", err)
		return nil, fmt.Errorf("%w: Login - compare hash: %w", ErrInternal, err)
	}

	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := jwt.RegisteredClaims{
		Subject:   adminSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		s.logger.Error("Login: failed to sign session token: %v", err)
		return nil, fmt.Errorf("%w: Login - sign token: %w", ErrInternal, err)
	}

	s.logger.Info("Login: admin session issued, expires at %s", expiresAt.Format(time.RFC3339))
	return &Session{Token: token, ExpiresAt: expiresAt}, nil
}

// Validate проверяет подпись и срок действия токена
func (s *Service) Validate(token string) error {
	if token == "" {
		return ErrUnauthorized
	}

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithSubject(adminSubject),
	)
	if err != nil || !parsed.Valid {
		return ErrUnauthorized
	}

	return nil
}

// HashPassword bcrypt-хеш пароля для конфигурации admin.password_hash
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
