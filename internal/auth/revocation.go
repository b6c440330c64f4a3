package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// RevocationStore remembers logged-out tokens until they would have expired anyway.
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type pgxRevocationStore struct {
	pool *pgxpool.Pool
}

// NewPgxRevocationStore keeps revocations in the revoked_tokens table,
// so they are shared by every server process and survive restarts.
func NewPgxRevocationStore(pool *pgxpool.Pool) RevocationStore {
	return &pgxRevocationStore{pool: pool}
}

func (s *pgxRevocationStore) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	const insert = `
		INSERT INTO public.revoked_tokens (jti, expires_at)
		VALUES ($1, $2)
		ON CONFLICT (jti) DO NOTHING
	`
	if _, err := s.pool.Exec(ctx, insert, tokenID, expiresAt); err != nil {
		return fmt.Errorf("revoke token failed: %w", err)
	}

	// Expired entries can no longer authenticate anyone.
	const purge = `DELETE FROM public.revoked_tokens WHERE expires_at < now()`
	if _, err := s.pool.Exec(ctx, purge); err != nil {
		return fmt.Errorf("purge revoked tokens failed: %w", err)
	}
	return nil
}

func (s *pgxRevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM public.revoked_tokens WHERE jti = $1)`

	var revoked bool
	if err := s.pool.QueryRow(ctx, query, tokenID).Scan(&revoked); err != nil {
		return false, fmt.Errorf("check revoked token failed: %w", err)
	}
	return revoked, nil
}
