package store

import (
	"context"
	"errors"

	"github.com/credovault/credo/internal/auth/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite,
// postgres) implement this. It exposes sub-repositories to keep concerns
// tidy and testable.
type Store interface {
	Users() Users
	RevokedTokens() RevokedTokens

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction. If fn returns an
	// error the transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername looks a user up by the case-folded username key.
	// Callers pass domain.FoldUsername(name); the folded form is what the
	// store indexes.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the username is taken under
	// case-insensitive comparison; the unique index makes this atomic, so
	// two concurrent registrations of the same name cannot both succeed.
	CreateUser(ctx context.Context, u domain.User) error

	// CountUsers returns the total number of registered users.
	CountUsers(ctx context.Context) (int64, error)
}

type RevokedTokens interface {
	// AddRevokedToken records a token fingerprint as revoked. Idempotent:
	// revoking the same token twice is not an error.
	AddRevokedToken(ctx context.Context, t domain.RevokedToken) error

	// ContainsRevokedToken reports whether the fingerprint is registered.
	ContainsRevokedToken(ctx context.Context, tokenHash string) (bool, error)

	// DeleteExpiredRevokedTokens drops entries whose underlying token has
	// passed its natural expiry. Housekeeping only; verification rejects
	// expired tokens regardless of revocation state.
	DeleteExpiredRevokedTokens(ctx context.Context) error
}
