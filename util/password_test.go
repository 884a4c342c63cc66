package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	h, err := HashPassword("password")
	require.NoError(t, err)
	assert.NotEqual(t, "password", h)

	assert.NoError(t, VerifyPassword(h, "password"))
	assert.ErrorIs(t, VerifyPassword(h, "wrong"), ErrPasswordMismatch)
}

func TestHashPasswordSalted(t *testing.T) {
	h1, err := HashPassword("password")
	require.NoError(t, err)
	h2, err := HashPassword("password")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestVerifyPasswordEmptyHash(t *testing.T) {
	assert.ErrorIs(t, VerifyPassword("", ""), ErrPasswordMismatch)
	assert.ErrorIs(t, VerifyPassword("", "anything"), ErrPasswordMismatch)
}
