package services

import (
	"io"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/soluciones-it/billing-service/internal/config"
)

func newTestAuthService(expiry time.Duration) *AuthService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cfg := &config.Config{}
	cfg.Auth.Username = "admin"
	cfg.Auth.Password = "secret"
	cfg.JWT.Secret = "test-signing-key"
	cfg.JWT.Expiry = expiry

	return NewAuthService(cfg, logger)
}

func TestAuthenticateAndVerify(t *testing.T) {
	s := newTestAuthService(time.Hour)

	token, err := s.Authenticate("admin", "secret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := s.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", subject)
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	s := newTestAuthService(time.Hour)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "admin", "wrong"},
		{"wrong username", "other", "secret"},
		{"both wrong", "other", "wrong"},
		{"empty credentials", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := s.Authenticate(tt.username, tt.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
			assert.Empty(t, token)
		})
	}
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	s := newTestAuthService(-time.Hour)

	token, err := s.Authenticate("admin", "secret")
	require.NoError(t, err)

	_, err = s.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenRejectsTampered(t *testing.T) {
	s := newTestAuthService(time.Hour)

	token, err := s.Authenticate("admin", "secret")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = s.VerifyToken(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenRejectsWrongKey(t *testing.T) {
	s := newTestAuthService(time.Hour)

	claims := jwt.MapClaims{
		"sub": "admin",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	foreign, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("another-key"))
	require.NoError(t, err)

	_, err = s.VerifyToken(foreign)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenRejectsUnsignedAlgorithm(t *testing.T) {
	s := newTestAuthService(time.Hour)

	claims := jwt.MapClaims{
		"sub": "admin",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = s.VerifyToken(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	s := newTestAuthService(time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := s.VerifyToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestVerifyTokenRejectsMissingSubject(t *testing.T) {
	s := newTestAuthService(time.Hour)

	claims := jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-signing-key"))
	require.NoError(t, err)

	_, err = s.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
