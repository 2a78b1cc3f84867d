package otp

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSixDigits(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := Generate()
		require.NoError(t, err)
		require.Len(t, code, 6)
		assert.GreaterOrEqual(t, code[0], byte('1'))
	}
}

func TestMemoryStoreVerifyConsumesOnMatch(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "asha@example.com", "123456"))

	ok, err := s.Verify(ctx, "asha@example.com", "123456")
	require.NoError(t, err)
	assert.True(t, ok)

	// consumed, second attempt fails
	ok, err = s.Verify(ctx, "asha@example.com", "123456")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStoreMismatchDoesNotConsume(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "asha@example.com", "123456"))

	ok, err := s.Verify(ctx, "asha@example.com", "654321")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.Verify(ctx, "asha@example.com", "123456")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryStoreEmailKeyCaseInsensitive(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "Asha@Example.COM", "123456"))

	ok, err := s.Verify(ctx, "  asha@example.com ", "123456")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryStoreExpiry(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	current := time.Now()
	s.now = func() time.Time { return current }

	require.NoError(t, s.Put(ctx, "asha@example.com", "123456"))

	current = current.Add(TTL + time.Second)
	ok, err := s.Verify(ctx, "asha@example.com", "123456")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStorePutOverwritesPrevious(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "asha@example.com", "111111"))
	require.NoError(t, s.Put(ctx, "asha@example.com", "222222"))

	ok, err := s.Verify(ctx, "asha@example.com", "111111")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.Verify(ctx, "asha@example.com", "222222")
	require.NoError(t, err)
	assert.True(t, ok)
}
