package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	token, exp, err := NewSessionToken("secret", "sess-1", "a@example.com", []string{"Rental Staff"}, time.Hour)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := ParseSessionToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", claims.SessionID)
	assert.Equal(t, "a@example.com", claims.Email)
	assert.Equal(t, []string{"Rental Staff"}, claims.Roles)
}

func TestSessionTokenRejections(t *testing.T) {
	t.Run("wrong secret", func(t *testing.T) {
		token, _, err := NewSessionToken("secret", "sess-1", "a@example.com", nil, time.Hour)
		require.NoError(t, err)
		_, err = ParseSessionToken("other", token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		token, _, err := NewSessionToken("secret", "sess-1", "a@example.com", nil, -time.Minute)
		require.NoError(t, err)
		_, err = ParseSessionToken("secret", token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := ParseSessionToken("secret", "not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
