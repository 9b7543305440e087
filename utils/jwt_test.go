package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	secret := []byte("s3cret")

	token, err := GenerateToken(secret, "user-1", "owner@example.com", time.Hour)
	require.NoError(t, err)

	claims, err := ValidateToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "owner@example.com", claims.Email)
}

func TestValidateToken_Rejects(t *testing.T) {
	secret := []byte("s3cret")

	expired, err := GenerateToken(secret, "user-1", "owner@example.com", -time.Minute)
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "owner@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString(secret)
	require.NoError(t, err)

	otherSecret, err := GenerateToken([]byte("other"), "user-1", "owner@example.com", time.Hour)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"expired":      expired,
		"no subject":   noSubject,
		"wrong secret": otherSecret,
		"garbage":      "not-a-token",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ValidateToken(secret, token)
			assert.Error(t, err)
		})
	}
}

func TestGenerateToken_RequiresSecret(t *testing.T) {
	_, err := GenerateToken(nil, "user-1", "owner@example.com", time.Hour)
	assert.Error(t, err)
}
