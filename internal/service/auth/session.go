package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/vitalog-backend/internal/domain"
	"github.com/heartmarshall/vitalog-backend/pkg/ctxutil"
)

// Logout ends every session of the caller by revoking its refresh tokens.
// Access tokens already issued stay valid until they expire.
func (s *Service) Logout(ctx context.Context) error {
	accountID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := s.tokens.RevokeAllByAccount(ctx, accountID); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}
	s.log.InfoContext(ctx, "sessions revoked", slog.String("account_id", accountID.String()))
	return nil
}

// ValidateToken resolves a bearer access token to its account. Every parse
// failure is reported as ErrUnauthorized.
func (s *Service) ValidateToken(ctx context.Context, token string) (uuid.UUID, error) {
	accountID, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		s.log.DebugContext(ctx, "access token rejected", slog.String("reason", err.Error()))
		return uuid.Nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	return accountID, nil
}

// CleanupExpiredTokens deletes refresh tokens that expired or were revoked
// and returns how many rows went away.
func (s *Service) CleanupExpiredTokens(ctx context.Context) (int, error) {
	n, err := s.tokens.DeleteExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("auth.CleanupExpiredTokens: %w", err)
	}
	return n, nil
}
