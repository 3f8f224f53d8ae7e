package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nsounjou2-stack/inscription-concours/internal/pkg/apperrors"
)

// TokenRepository stores refresh tokens for administrator sessions
type TokenRepository struct {
	db *pgxpool.Pool
}

// NewTokenRepository creates a new TokenRepository
func NewTokenRepository(db *pgxpool.Pool) *TokenRepository {
	return &TokenRepository{db: db}
}

// StoreRefreshToken persists a refresh token for an admin.
func (r *TokenRepository) StoreRefreshToken(ctx context.Context, adminID int64, token string, expiresAt time.Time) error {
	_, err := r.db.Exec(ctx,
		"INSERT INTO refresh_tokens (admin_id, token, expires_at) VALUES ($1, $2, $3)",
		adminID, token, expiresAt)
	if err != nil {
		return fmt.Errorf("error storing refresh token: %w", err)
	}
	return nil
}

// GetRefreshToken resolves a refresh token to its admin. Expired or unknown
// tokens map to ErrInvalidToken.
func (r *TokenRepository) GetRefreshToken(ctx context.Context, token string) (int64, error) {
	var adminID int64
	var expiresAt time.Time
	err := r.db.QueryRow(ctx,
		"SELECT admin_id, expires_at FROM refresh_tokens WHERE token = $1", token).
		Scan(&adminID, &expiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrTokenInvalid
		}
		return 0, fmt.Errorf("error retrieving refresh token: %w", err)
	}

	if time.Now().After(expiresAt) {
		// Opportunistic cleanup of the stale row
		_, _ = r.db.Exec(ctx, "DELETE FROM refresh_tokens WHERE token = $1", token)
		return 0, apperrors.ErrTokenInvalid
	}

	return adminID, nil
}

// DeleteRefreshToken invalidates a single refresh token.
func (r *TokenRepository) DeleteRefreshToken(ctx context.Context, token string) error {
	_, err := r.db.Exec(ctx, "DELETE FROM refresh_tokens WHERE token = $1", token)
	if err != nil {
		return fmt.Errorf("error deleting refresh token: %w", err)
	}
	return nil
}

// DeleteTokensForAdmin invalidates every session of one admin.
func (r *TokenRepository) DeleteTokensForAdmin(ctx context.Context, adminID int64) error {
	_, err := r.db.Exec(ctx, "DELETE FROM refresh_tokens WHERE admin_id = $1", adminID)
	if err != nil {
		return fmt.Errorf("error deleting refresh tokens: %w", err)
	}
	return nil
}
