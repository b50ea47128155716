package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSigner(t *testing.T) {
	t.Parallel()

	_, err := NewSigner("", time.Hour)
	assert.Error(t, err)
}

func TestSigner_SignAndVerify(t *testing.T) {
	t.Parallel()

	s, err := NewSigner("super-secret", time.Hour)
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		token, err := s.Sign("booth1")
		require.NoError(t, err)
		sub, err := s.Verify(token)
		if assert.NoError(t, err) {
			assert.Equal(t, "booth1", sub)
		}
	})

	t.Run("wrong key", func(t *testing.T) {
		t.Parallel()

		other, err := NewSigner("another-secret", time.Hour)
		require.NoError(t, err)
		token, err := other.Sign("booth1")
		require.NoError(t, err)
		_, err = s.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		t.Parallel()

		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject:   "booth1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		}).SignedString([]byte("super-secret"))
		require.NoError(t, err)
		_, err = s.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing subject", func(t *testing.T) {
		t.Parallel()

		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{}).SignedString([]byte("super-secret"))
		require.NoError(t, err)
		_, err = s.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		t.Parallel()

		_, err := s.Verify("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
