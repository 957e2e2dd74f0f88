package sqlite

import (
	"context"
	"time"

	"github.com/credovault/credo/internal/auth/domain"
)

type revokedTokensRepo struct {
	db querier
}

func (r *revokedTokensRepo) AddRevokedToken(ctx context.Context, t domain.RevokedToken) error {
	revokedAt := t.RevokedAt
	if revokedAt.IsZero() {
		revokedAt = time.Now().UTC()
	}

	// expires_at is stored as unix seconds so the housekeeping comparison
	// is numeric rather than string-based.
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO revoked_tokens (token_hash, expires_at, revoked_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(token_hash) DO NOTHING`,
		t.TokenHash, t.ExpiresAt.Unix(), revokedAt)
	return err
}

func (r *revokedTokensRepo) ContainsRevokedToken(ctx context.Context, tokenHash string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM revoked_tokens WHERE token_hash = ?)`,
		tokenHash).Scan(&exists)
	return exists, err
}

func (r *revokedTokensRepo) DeleteExpiredRevokedTokens(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM revoked_tokens WHERE expires_at <= ?`,
		time.Now().UTC().Unix())
	return err
}
