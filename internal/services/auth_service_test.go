package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scipress_errors "scipress-events/pkg/errors"
)

func signTestToken(t *testing.T, secret string, subject string) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestParseAccessToken(t *testing.T) {
	svc := NewAuthService("test-secret", nil)
	userID := uuid.New()

	parsed, err := svc.ParseAccessToken(signTestToken(t, "test-secret", userID.String()))
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestParseAccessTokenRejectsBadSecret(t *testing.T) {
	svc := NewAuthService("test-secret", nil)

	_, err := svc.ParseAccessToken(signTestToken(t, "other-secret", uuid.New().String()))
	assert.ErrorIs(t, err, scipress_errors.ErrUnauthorized)
}

func TestParseAccessTokenRejectsGarbage(t *testing.T) {
	svc := NewAuthService("test-secret", nil)

	_, err := svc.ParseAccessToken("not-a-token")
	assert.ErrorIs(t, err, scipress_errors.ErrUnauthorized)

	_, err = svc.ParseAccessToken(signTestToken(t, "test-secret", "not-a-uuid"))
	assert.ErrorIs(t, err, scipress_errors.ErrUnauthorized)
}

func TestParseAccessTokenRejectsExpired(t *testing.T) {
	svc := NewAuthService("test-secret", nil)

	claims := jwt.RegisteredClaims{
		Subject:   uuid.New().String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.ParseAccessToken(signed)
	assert.ErrorIs(t, err, scipress_errors.ErrUnauthorized)
}

func TestAPIKeyRoundTrip(t *testing.T) {
	svc := NewAuthService("test-secret", nil)

	hash, err := svc.HashAPIKey("service-key-42")
	require.NoError(t, err)

	svc = NewAuthService("test-secret", []string{hash})
	assert.True(t, svc.CheckAPIKey("service-key-42"))
	assert.False(t, svc.CheckAPIKey("wrong-key"))
	assert.False(t, svc.CheckAPIKey(""))
}

func TestCheckAPIKeyWithNoHashes(t *testing.T) {
	svc := NewAuthService("test-secret", nil)
	assert.False(t, svc.CheckAPIKey("anything"))
}
