package auth

import (
	"testing"
	"time"

	"leadgrid/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{TokenTTL: time.Hour},
	}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	userID := uuid.New()
	roles := []string{"operator", "reviewer"}

	token, err := jwtService.GenerateToken(userID, roles)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, roles, claims.Roles)
	assert.Equal(t, tokenIssuer, claims.Issuer)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	signer, err := NewJWTService(newTestConfig("secret-one-secret-one-secret-one"))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig("secret-two-secret-two-secret-two"))
	require.NoError(t, err)

	token, err := signer.GenerateToken(uuid.New(), []string{"operator"})
	require.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	secret := "test_access_secret_key_very_long_for_testing"
	jwtService, err := NewJWTService(newTestConfig(secret))
	require.NoError(t, err)

	past := time.Now().Add(-2 * time.Hour)
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		Roles: []string{"operator"},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.New().String(),
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(past),
			ExpiresAt: jwt.NewNumericDate(past.Add(time.Hour)),
		},
	})
	signed, err := expired.SignedString([]byte(secret))
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(signed)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}
