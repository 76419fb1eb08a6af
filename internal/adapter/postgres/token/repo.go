// Package token implements the RefreshToken repository using PostgreSQL.
package token

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/vitalog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vitalog-backend/internal/domain"
)

const columns = "id, account_id, token_hash, expires_at, created_at, revoked_at"

// Repo provides refresh-token persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new token repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a new refresh token.
func (r *Repo) Create(ctx context.Context, accountID uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.RefreshToken, error) {
	var row tokenRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, `
		INSERT INTO refresh_tokens (account_id, token_hash, expires_at)
		VALUES ($1, $2, $3)
		RETURNING `+columns,
		accountID, tokenHash, expiresAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "refresh_token", nil)
	}
	t := domain.RefreshToken(row)
	return &t, nil
}

// GetByHash returns an active (non-revoked, non-expired) refresh token by its hash.
// Returns domain.ErrNotFound if the token does not exist, is revoked, or is expired.
func (r *Repo) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	var row tokenRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, `
		SELECT `+columns+` FROM refresh_tokens
		WHERE token_hash = $1 AND revoked_at IS NULL AND expires_at > now()`,
		tokenHash,
	)
	if err != nil {
		return nil, postgres.MapError(err, "refresh_token", nil)
	}
	t := domain.RefreshToken(row)
	return &t, nil
}

// RevokeByID revokes a specific refresh token by setting revoked_at.
// Idempotent: revoking an already-revoked token is not an error.
func (r *Repo) RevokeByID(ctx context.Context, id uuid.UUID) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		"UPDATE refresh_tokens SET revoked_at = now() WHERE id = $1 AND revoked_at IS NULL", id)
	if err != nil {
		return postgres.MapError(err, "refresh_token", id)
	}
	return nil
}

// RevokeAllByAccount revokes all active refresh tokens of an account.
func (r *Repo) RevokeAllByAccount(ctx context.Context, accountID uuid.UUID) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		"UPDATE refresh_tokens SET revoked_at = now() WHERE account_id = $1 AND revoked_at IS NULL", accountID)
	if err != nil {
		return postgres.MapError(err, "refresh_token", nil)
	}
	return nil
}

// DeleteExpired removes all expired or revoked tokens from the database.
// Returns the count of deleted tokens.
func (r *Repo) DeleteExpired(ctx context.Context) (int, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx,
		"DELETE FROM refresh_tokens WHERE expires_at <= now() OR revoked_at IS NOT NULL")
	if err != nil {
		return 0, postgres.MapError(err, "refresh_token", nil)
	}
	return int(tag.RowsAffected()), nil
}

type tokenRow struct {
	ID        uuid.UUID  `db:"id"`
	AccountID uuid.UUID  `db:"account_id"`
	TokenHash string     `db:"token_hash"`
	ExpiresAt time.Time  `db:"expires_at"`
	CreatedAt time.Time  `db:"created_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}
