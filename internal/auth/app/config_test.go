package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	require.Equal(t, "credo", cfg.Issuer)
	require.Equal(t, time.Hour, cfg.AccessTokenTTL)
	require.Equal(t, "auth.db", cfg.DatabaseFile)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	require.Equal(t, time.Hour, cfg.HousekeepingInterval)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("AUTH_SIGNING_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("AUTH_ISSUER", "credo-staging")
	t.Setenv("AUTH_TOKEN_TTL", "30m")
	t.Setenv("PORT", "9999")

	cfg := LoadConfig()

	require.Equal(t, []byte("0123456789abcdef0123456789abcdef"), cfg.SigningSecret)
	require.Equal(t, "credo-staging", cfg.Issuer)
	require.Equal(t, 30*time.Minute, cfg.AccessTokenTTL)
	require.Equal(t, 9999, cfg.Port)
}

func TestDurationFallsBackToMinutes(t *testing.T) {
	t.Setenv("AUTH_TOKEN_TTL", "90")

	cfg := LoadConfig()
	require.Equal(t, 90*time.Minute, cfg.AccessTokenTTL)
}
