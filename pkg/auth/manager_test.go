package auth

import (
	"testing"
	"time"

	"github.com/csv-challenge/backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManagerValidation(t *testing.T) {
	_, err := NewManager(config.JWTConfig{AccessTokenTTL: time.Hour})
	assert.Error(t, err)

	_, err = NewManager(config.JWTConfig{SigningKey: "key"})
	assert.Error(t, err)
}

func TestNewJWTAndParse(t *testing.T) {
	m, err := NewManager(config.JWTConfig{SigningKey: "key", AccessTokenTTL: time.Hour})
	require.NoError(t, err)

	token, ttl, err := m.NewJWT("team-id")
	require.NoError(t, err)
	assert.Equal(t, time.Hour, ttl)

	subject, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "team-id", subject)

	other, err := NewManager(config.JWTConfig{SigningKey: "other", AccessTokenTTL: time.Hour})
	require.NoError(t, err)
	_, err = other.Parse(token)
	assert.Error(t, err)
}

func TestParseExpired(t *testing.T) {
	m, err := NewManager(config.JWTConfig{SigningKey: "key", AccessTokenTTL: time.Hour})
	require.NoError(t, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		Subject:   "team-id",
	})
	signed, err := expired.SignedString([]byte("key"))
	require.NoError(t, err)

	_, err = m.Parse(signed)
	assert.ErrorIs(t, err, ErrAccessTokenExpired)
}
