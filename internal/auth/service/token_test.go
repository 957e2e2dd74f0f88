package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/credovault/credo/internal/auth/domain"
	"github.com/credovault/credo/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestRevokeAndRevoked(t *testing.T) {
	auth, tokens := newTestAuth(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, "dave", "pw", "d@x.com")
	require.NoError(t, err)

	token, err := auth.Login(ctx, "dave", "pw")
	require.NoError(t, err)

	revoked, err := tokens.Revoked(ctx, token)
	require.NoError(t, err)
	require.False(t, revoked)

	claims, err := jwtx.NewCommonHS256(testSecret, testIssuer).Verify(token)
	require.NoError(t, err)

	require.NoError(t, tokens.Revoke(ctx, token, claims))

	revoked, err = tokens.Revoked(ctx, token)
	require.NoError(t, err)
	require.True(t, revoked, "revoking request must observe its own revocation")

	// A second revocation of the same token is fine.
	require.NoError(t, tokens.Revoke(ctx, token, claims))

	// Other tokens are unaffected.
	revoked, err = tokens.Revoked(ctx, "some-other-token")
	require.NoError(t, err)
	require.False(t, revoked)
}

func TestHousekeepingPrunesOnlyNaturallyExpiredEntries(t *testing.T) {
	_, tokens := newTestAuth(t)
	ctx := context.Background()

	user := domain.User{ID: "user-1", Role: domain.DefaultRole}

	// A token already past its expiry, and a fresh one.
	expiredClaims := jwtx.NewAccessClaims(user.ID, user.Role, time.Minute,
		testIssuer, time.Now().UTC().Add(-time.Hour))
	freshToken, err := tokens.Issue(user)
	require.NoError(t, err)
	freshClaims, err := jwtx.NewCommonHS256(testSecret, testIssuer).Verify(freshToken)
	require.NoError(t, err)

	require.NoError(t, tokens.Revoke(ctx, "expired-token", expiredClaims))
	require.NoError(t, tokens.Revoke(ctx, freshToken, freshClaims))

	hk := NewHousekeepingService(tokens.Store, discardLogger(), time.Hour)
	hk.cleanup()

	revoked, err := tokens.Revoked(ctx, "expired-token")
	require.NoError(t, err)
	require.False(t, revoked, "entry past natural expiry should be pruned")

	revoked, err = tokens.Revoked(ctx, freshToken)
	require.NoError(t, err)
	require.True(t, revoked, "live revocation must survive pruning")
}

func TestHousekeepingStartStop(t *testing.T) {
	_, tokens := newTestAuth(t)

	hk := NewHousekeepingService(tokens.Store, discardLogger(), 50*time.Millisecond)
	hk.Start()
	time.Sleep(120 * time.Millisecond)
	hk.Stop() // must not hang or panic
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
