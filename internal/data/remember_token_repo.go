package data

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/casernelab/firequiz/internal/core"
	"github.com/casernelab/firequiz/internal/data/pgxutil"
)

// RememberTokenRepo stores remember-me credentials. Only a SHA-256 digest of
// the token ever reaches the database; a leaked table cannot be replayed as
// cookies. One row per user: issuing a new token replaces the previous one.
type RememberTokenRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewRememberTokenRepo creates a RememberTokenRepo backed by the system clock.
func NewRememberTokenRepo(db *sql.DB) *RememberTokenRepo {
	return &RememberTokenRepo{DB: db, timeProvider: RealTimeProvider{}}
}

// NewRememberTokenRepoWithTimeProvider creates a RememberTokenRepo with a
// custom clock for tests.
func NewRememberTokenRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *RememberTokenRepo {
	return &RememberTokenRepo{DB: db, timeProvider: tp}
}

// HashRememberToken returns the hex SHA-256 digest stored for a raw token.
func HashRememberToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// Upsert stores the digest of token for userID, replacing any existing row.
func (r *RememberTokenRepo) Upsert(ctx context.Context, userID, token string, expiresAt time.Time) error {
	now := r.timeProvider.Now().UTC()
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		_, err := conn.Exec(ctx, `
			INSERT INTO remember_tokens (user_id, token_hash, expires_at, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $4)
			ON CONFLICT (user_id) DO UPDATE
			SET token_hash = EXCLUDED.token_hash,
			    expires_at = EXCLUDED.expires_at,
			    updated_at = EXCLUDED.updated_at`,
			userID, HashRememberToken(token), expiresAt.UTC(), now)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to upsert remember token: %w", err)
	}
	return nil
}

// Verify checks token against the stored digest for userID. It returns
// core.ErrRememberTokenInvalid when no row exists, the row has expired, or
// the digest does not match. The comparison is constant time.
func (r *RememberTokenRepo) Verify(ctx context.Context, userID, token string) error {
	var storedHash string
	var expiresAt time.Time
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		return conn.QueryRow(ctx, `
			SELECT token_hash, expires_at FROM remember_tokens WHERE user_id = $1`,
			userID).Scan(&storedHash, &expiresAt)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return core.ErrRememberTokenInvalid
		}
		return fmt.Errorf("failed to load remember token: %w", err)
	}

	if r.timeProvider.Now().After(expiresAt) {
		return core.ErrRememberTokenInvalid
	}
	if subtle.ConstantTimeCompare([]byte(storedHash), []byte(HashRememberToken(token))) != 1 {
		return core.ErrRememberTokenInvalid
	}
	return nil
}

// Revoke deletes the remember token for userID, if any.
func (r *RememberTokenRepo) Revoke(ctx context.Context, userID string) error {
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		_, err := conn.Exec(ctx, `DELETE FROM remember_tokens WHERE user_id = $1`, userID)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to revoke remember token: %w", err)
	}
	return nil
}

// DeleteExpired removes tokens past their expiry and returns the count.
func (r *RememberTokenRepo) DeleteExpired(ctx context.Context) (int64, error) {
	var affected int64
	err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		ct, err := conn.Exec(ctx, `DELETE FROM remember_tokens WHERE expires_at < $1`,
			r.timeProvider.Now().UTC())
		if err != nil {
			return err
		}
		affected = ct.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired remember tokens: %w", err)
	}
	return affected, nil
}
