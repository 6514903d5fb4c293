package jwt

import (
	"testing"
	"time"

	"health-appointment-service/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundtrip(t *testing.T) {
	service := NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: time.Hour})
	userID := uuid.New()

	token, err := service.GenerateAccessToken(userID, "alice")
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTService(config.JWTConfig{Secret: "secret-a", AccessExpiry: time.Hour})
	verifier := NewJWTService(config.JWTConfig{Secret: "secret-b", AccessExpiry: time.Hour})

	token, err := issuer.GenerateAccessToken(uuid.New(), "alice")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	service := NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: -time.Minute})

	token, err := service.GenerateAccessToken(uuid.New(), "alice")
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}
