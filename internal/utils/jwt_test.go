package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func TestTokenRoundtrip(t *testing.T) {
	token, err := GenerateToken(testSecret, "user_1", "asha@example.com", "Asha", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "user_1", claims.ID)
	assert.Equal(t, "asha@example.com", claims.Email)
	assert.Equal(t, "Asha", claims.Name)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken(testSecret, "user_1", "asha@example.com", "Asha", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken("other-secret", token)
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	token, err := GenerateToken(testSecret, "user_1", "asha@example.com", "Asha", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(testSecret, token)
	assert.Error(t, err)
}

func TestAdminTokenRoundtrip(t *testing.T) {
	token, err := GenerateAdminToken(testSecret, "admin@example.com", time.Hour)
	require.NoError(t, err)

	claims, err := ParseAdminToken(testSecret, token)
	require.NoError(t, err)
	assert.True(t, claims.Admin)
	assert.Equal(t, "admin@example.com", claims.Email)
}

func TestParseAdminTokenRejectsCustomerToken(t *testing.T) {
	token, err := GenerateToken(testSecret, "user_1", "asha@example.com", "Asha", time.Hour)
	require.NoError(t, err)

	_, err = ParseAdminToken(testSecret, token)
	assert.Error(t, err)
}
