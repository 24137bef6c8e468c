package jwt

import (
	"testing"
	"time"

	"clinic-scheduling-api/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestService(secret string) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        secret,
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	service := newTestService("test-secret")
	userID := uuid.New()

	token, tokenID, err := service.GenerateAccessToken(userID, "staff@clinic.test", 2)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, tokenID)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "staff@clinic.test", claims.Email)
	assert.Equal(t, 2, claims.RoleID)
	assert.Equal(t, AccessToken, claims.TokenType)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestRefreshTokenCarriesType(t *testing.T) {
	service := newTestService("test-secret")

	token, _, err := service.GenerateRefreshToken(uuid.New(), "admin@clinic.test", 1)
	assert.NoError(t, err)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, RefreshToken, claims.TokenType)
	assert.Equal(t, 1, claims.RoleID)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, _, err := newTestService("secret-a").GenerateAccessToken(uuid.New(), "staff@clinic.test", 2)
	assert.NoError(t, err)

	_, err = newTestService("secret-b").ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	service := NewJWTService(config.JWTConfig{
		Secret:       "test-secret",
		AccessExpiry: -time.Minute,
	})

	token, _, err := service.GenerateAccessToken(uuid.New(), "staff@clinic.test", 2)
	assert.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	_, err := newTestService("test-secret").ValidateToken("not-a-token")
	assert.Error(t, err)
}
