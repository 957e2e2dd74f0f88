package jwtx

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestNewAccessClaims(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	c := NewAccessClaims("user-1", "user", time.Hour, "credo", now)

	require.Equal(t, "user-1", c.Subject)
	require.Equal(t, "user", c.Role)
	require.Equal(t, "credo", c.Issuer)
	require.Equal(t, now, c.IssuedAt.Time)
	require.Equal(t, now, c.NotBefore.Time)
	require.Equal(t, now.Add(time.Hour), c.ExpiresAt.Time)
	require.NotEmpty(t, c.ID)
}

func TestNewJTIUniqueness(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{}, 100)
	for range 100 {
		jti := NewJTI()
		require.NotEmpty(t, jti)
		_, dup := seen[jti]
		require.False(t, dup)
		seen[jti] = struct{}{}
	}
}

func TestValidateExpiry(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()

	t.Run("valid token", func(t *testing.T) {
		c := NewAccessClaims("u", "user", time.Hour, "credo", now)
		require.NoError(t, c.ValidateExpiry())
	})

	t.Run("expired token", func(t *testing.T) {
		c := NewAccessClaims("u", "user", time.Minute, "credo", now.Add(-time.Hour))
		require.ErrorIs(t, c.ValidateExpiry(), ErrExpired)
	})

	t.Run("not yet valid", func(t *testing.T) {
		c := NewAccessClaims("u", "user", time.Hour, "credo", now.Add(time.Hour))
		require.ErrorIs(t, c.ValidateExpiry(), ErrNotYetValid)
	})

	t.Run("no time claims", func(t *testing.T) {
		c := Claims{}
		require.NoError(t, c.ValidateExpiry())
	})
}

func TestValidateIssuer(t *testing.T) {
	t.Parallel()

	c := Claims{RegisteredClaims: jwt.RegisteredClaims{Issuer: "credo"}}

	require.NoError(t, c.ValidateIssuer("credo"))
	require.NoError(t, c.ValidateIssuer(""), "empty expectation enforces nothing")
	require.ErrorIs(t, c.ValidateIssuer("other"), ErrIssuer)
}
