package service

import (
	"context"
	"time"

	"github.com/credovault/credo/internal/auth/domain"
	"github.com/credovault/credo/internal/auth/store"
	"github.com/credovault/credo/pkg/cryptox"
	"github.com/credovault/credo/pkg/jwtx"
)

// TokenService issues bearer tokens and maintains the revocation registry.
// It implements httpx.RevocationChecker.
type TokenService struct {
	Signer    jwtx.Signer
	Store     store.Store
	Issuer    string
	AccessTTL time.Duration
}

func (s *TokenService) ttl() time.Duration {
	if s.AccessTTL > 0 {
		return s.AccessTTL
	}
	return jwtx.DefaultAccessTokenTTL
}

// Issue produces a signed token for the user with claims {sub, role} and an
// expiry of AccessTTL from now.
func (s *TokenService) Issue(user domain.User) (string, error) {
	claims := jwtx.NewAccessClaims(user.ID, user.Role, s.ttl(), s.Issuer, time.Now().UTC())
	return s.Signer.Sign(claims)
}

// Revoke registers the raw token in the revocation registry. Once present,
// the token is rejected by every subsequent protected request regardless of
// its remaining validity window. The entry carries the token's own expiry so
// housekeeping can drop it once verification would reject it anyway.
func (s *TokenService) Revoke(ctx context.Context, raw string, claims jwtx.Claims) error {
	expiresAt := time.Now().UTC().Add(s.ttl())
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return s.Store.RevokedTokens().AddRevokedToken(ctx, domain.RevokedToken{
		TokenHash: cryptox.FingerprintToken(raw),
		ExpiresAt: expiresAt,
	})
}

// Revoked reports whether the raw token has been revoked. Consulted by the
// authentication middleware before the token's signature is trusted.
func (s *TokenService) Revoked(ctx context.Context, raw string) (bool, error) {
	return s.Store.RevokedTokens().ContainsRevokedToken(ctx, cryptox.FingerprintToken(raw))
}
