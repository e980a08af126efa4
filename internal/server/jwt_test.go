package server

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaewoo/careerfolio/internal/config"
)

func TestJWTRoundTrip(t *testing.T) {
	service := NewJWTService(&config.JWTConfig{Secret: "test-secret", ExpirationHours: 1})
	userID := uuid.New()

	token, err := service.GenerateToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestJWTWrongSecret(t *testing.T) {
	signer := NewJWTService(&config.JWTConfig{Secret: "secret-a", ExpirationHours: 1})
	verifier := NewJWTService(&config.JWTConfig{Secret: "secret-b", ExpirationHours: 1})

	token, err := signer.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTEmptyToken(t *testing.T) {
	service := NewJWTService(&config.JWTConfig{Secret: "test-secret", ExpirationHours: 1})

	_, err := service.ValidateToken("")
	assert.Error(t, err)
}

func TestJWTMalformedToken(t *testing.T) {
	service := NewJWTService(&config.JWTConfig{Secret: "test-secret", ExpirationHours: 1})

	_, err := service.ValidateToken("not.a.token")
	assert.Error(t, err)
}
