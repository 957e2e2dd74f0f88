package service

import (
	"context"
	"testing"
	"time"

	"github.com/credovault/credo/internal/auth/store/drivers/sqlite"
	"github.com/credovault/credo/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const testIssuer = "credo-test"

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func newTestAuth(t *testing.T) (*AuthService, *TokenService) {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)

	tokens := &TokenService{
		Signer:    signer,
		Store:     st,
		Issuer:    testIssuer,
		AccessTTL: time.Hour,
	}
	return &AuthService{Store: st, Tokens: tokens}, tokens
}

func TestRegisterAndLogin(t *testing.T) {
	auth, _ := newTestAuth(t)
	ctx := context.Background()

	userID, err := auth.Register(ctx, "Bob", "pw123", "b@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, userID)

	// Login with a different case variant of the registered name.
	token, err := auth.Login(ctx, "bob", "pw123")
	require.NoError(t, err)

	claims, err := jwtx.NewCommonHS256(testSecret, testIssuer).Verify(token)
	require.NoError(t, err)
	require.Equal(t, userID, claims.Subject)
	require.Equal(t, "user", claims.Role)
	require.WithinDuration(t,
		time.Now().UTC().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	auth, _ := newTestAuth(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, "Alice", "secret", "a@x.com")
	require.NoError(t, err)

	// Any case variant of the same name must conflict.
	for _, variant := range []string{"Alice", "alice", "ALICE", "aLiCe"} {
		_, err := auth.Register(ctx, variant, "other", "a2@x.com")
		require.ErrorIs(t, err, ErrUserExists, "variant %q", variant)
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	auth, _ := newTestAuth(t)
	ctx := context.Background()

	_, err := auth.Register(ctx, "carol", "correct-pw", "c@x.com")
	require.NoError(t, err)

	_, wrongPassword := auth.Login(ctx, "carol", "wrong-pw")
	_, unknownUser := auth.Login(ctx, "nobody", "whatever")

	require.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	require.ErrorIs(t, unknownUser, ErrInvalidCredentials)

	// Same error value, so the HTTP layer cannot help but respond identically.
	require.Equal(t, wrongPassword, unknownUser)
}
