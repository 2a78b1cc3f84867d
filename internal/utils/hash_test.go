package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("saffron-fields")
	require.NoError(t, err)
	assert.NotEqual(t, "saffron-fields", hash)

	assert.True(t, CheckPassword(hash, "saffron-fields"))
	assert.False(t, CheckPassword(hash, "wrong-password"))
}
