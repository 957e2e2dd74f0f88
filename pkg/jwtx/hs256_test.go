package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testIssuer = "credo-test"

func testSecret(t *testing.T) []byte {
	t.Helper()
	return []byte("0123456789abcdef0123456789abcdef")
}

func TestHS256RoundTrip(t *testing.T) {
	t.Parallel()

	signer, err := NewSignerHS256(testSecret(t))
	require.NoError(t, err)
	require.Equal(t, "HS256", signer.Alg())

	claims := NewAccessClaims("user-123", "admin", time.Hour, testIssuer, time.Now().UTC())
	raw, err := signer.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	verifier := NewCommonHS256(testSecret(t), testIssuer)
	got, err := verifier.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, "user-123", got.Subject)
	require.Equal(t, "admin", got.Role)
	require.Equal(t, testIssuer, got.Issuer)
	require.NotEmpty(t, got.ID, "jti should be populated")
}

func TestHS256RejectsShortSecret(t *testing.T) {
	t.Parallel()

	_, err := NewSignerHS256([]byte("too-short"))
	require.Error(t, err)
}

func TestHS256ExpiredToken(t *testing.T) {
	t.Parallel()

	signer, err := NewSignerHS256(testSecret(t))
	require.NoError(t, err)

	// Issued two hours in the past with a one hour TTL: already expired.
	claims := NewAccessClaims("user-123", "user", time.Hour, testIssuer,
		time.Now().UTC().Add(-2*time.Hour))
	raw, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = NewCommonHS256(testSecret(t), testIssuer).Verify(raw)
	require.ErrorIs(t, err, ErrExpired)
}

func TestHS256WrongSecret(t *testing.T) {
	t.Parallel()

	signer, err := NewSignerHS256(testSecret(t))
	require.NoError(t, err)

	claims := NewAccessClaims("user-123", "user", time.Hour, testIssuer, time.Now().UTC())
	raw, err := signer.Sign(claims)
	require.NoError(t, err)

	other := []byte("fedcba9876543210fedcba9876543210")
	_, err = NewCommonHS256(other, testIssuer).Verify(raw)
	require.ErrorIs(t, err, ErrInvalidSig)
}

func TestHS256MalformedToken(t *testing.T) {
	t.Parallel()

	verifier := NewCommonHS256(testSecret(t), testIssuer)

	for _, bad := range []string{"", "garbage", "a.b", "a.b.c.d", "!!.!!.!!"} {
		_, err := verifier.Verify(bad)
		require.ErrorIs(t, err, ErrMalformed, "input %q", bad)
	}
}

func TestHS256IssuerMismatch(t *testing.T) {
	t.Parallel()

	signer, err := NewSignerHS256(testSecret(t))
	require.NoError(t, err)

	claims := NewAccessClaims("user-123", "user", time.Hour, "someone-else", time.Now().UTC())
	raw, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = NewCommonHS256(testSecret(t), testIssuer).Verify(raw)
	require.ErrorIs(t, err, ErrIssuer)

	// Verifier without an expected issuer does not enforce one.
	_, err = NewCommonHS256(testSecret(t), "").Verify(raw)
	require.NoError(t, err)
}
