package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-rewards/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rewards/internal/entity"
)

func newAuth(t *testing.T, secret string) *authServiceImpl {
	t.Helper()

	auth, err := NewAuthService(secret, time.Hour)
	require.NoError(t, err)

	return auth.(*authServiceImpl)
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	// Given: a verified player
	auth := newAuth(t, "secret")
	player := &entity.Player{ID: "42", FirstName: "Anna", LastName: "K", Username: "anna"}

	// When: a token is issued and parsed back
	token, err := auth.GenerateToken(player)
	require.NoError(t, err)

	parsed, err := auth.ParseToken(token)

	// Then: the identity survives, the profile extras are not carried
	require.NoError(t, err)
	assert.Equal(t, &entity.Player{ID: "42", FirstName: "Anna", Username: "anna"}, parsed)
}

func TestAuthService_ParseToken(t *testing.T) {
	t.Run("Rejects a token signed with another secret", func(t *testing.T) {
		token, err := newAuth(t, "other").GenerateToken(&entity.Player{ID: "42"})
		require.NoError(t, err)

		_, err = newAuth(t, "secret").ParseToken(token)

		require.ErrorIs(t, err, apperror.ErrUnauthorized)
	})

	t.Run("Rejects an expired token", func(t *testing.T) {
		auth := newAuth(t, "secret")
		auth.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

		token, err := auth.GenerateToken(&entity.Player{ID: "42"})
		require.NoError(t, err)

		auth.now = time.Now
		_, err = auth.ParseToken(token)

		require.ErrorIs(t, err, apperror.ErrUnauthorized)
	})

	t.Run("Rejects garbage", func(t *testing.T) {
		_, err := newAuth(t, "secret").ParseToken("not-a-token")

		require.ErrorIs(t, err, apperror.ErrUnauthorized)
	})

	t.Run("Rejects a token without subject", func(t *testing.T) {
		auth := newAuth(t, "secret")
		token, err := auth.GenerateToken(&entity.Player{})
		require.NoError(t, err)

		_, err = auth.ParseToken(token)

		require.ErrorIs(t, err, apperror.ErrUnauthorized)
	})
}

func TestNewAuthService(t *testing.T) {
	_, err := NewAuthService("", 0)

	require.ErrorIs(t, err, ErrEmptySecret)
}
