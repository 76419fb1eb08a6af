package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/vitalog-backend/internal/auth"
	"github.com/heartmarshall/vitalog-backend/internal/domain"
)

// Refresh rotates a refresh token: the presented token is revoked and a new
// pair is issued. Unknown, revoked and expired tokens are all ErrUnauthorized,
// as is a token whose account no longer exists.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	stored, err := s.tokens.GetByHash(ctx, auth.HashToken(input.RefreshToken))
	if errors.Is(err, domain.ErrNotFound) {
		// Rotated tokens are revoked, so this is usually a replay.
		s.log.WarnContext(ctx, "unknown refresh token presented")
		return nil, domain.ErrUnauthorized
	}
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh: token lookup: %w", err)
	}
	if stored.IsExpired(time.Now()) {
		return nil, domain.ErrUnauthorized
	}

	account, err := s.accounts.GetByID(ctx, stored.AccountID)
	if errors.Is(err, domain.ErrNotFound) {
		s.log.WarnContext(ctx, "refresh token outlived its account",
			slog.String("account_id", stored.AccountID.String()))
		return nil, domain.ErrUnauthorized
	}
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh: account lookup: %w", err)
	}

	if err := s.tokens.RevokeByID(ctx, stored.ID); err != nil {
		return nil, fmt.Errorf("auth.Refresh: revoke: %w", err)
	}
	result, err := s.issueTokens(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh: %w", err)
	}
	return result, nil
}
