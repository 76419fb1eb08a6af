package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/vitalog-backend/internal/domain"
)

// LoginWithPassword exchanges email and password for a token pair. An
// unknown email and a wrong password are indistinguishable to the caller.
func (s *Service) LoginWithPassword(ctx context.Context, input LoginPasswordInput) (*AuthResult, error) {
	input.Email = domain.NormalizeEmail(input.Email)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	account, err := s.accounts.GetByEmail(ctx, input.Email)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		// Burn the same bcrypt time as a real comparison.
		_ = bcrypt.CompareHashAndPassword(s.decoyHash(), []byte(input.Password))
		return nil, domain.ErrUnauthorized
	case err != nil:
		return nil, fmt.Errorf("auth.LoginWithPassword: lookup: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(input.Password)) != nil {
		s.log.InfoContext(ctx, "password mismatch", slog.String("account_id", account.ID.String()))
		return nil, domain.ErrUnauthorized
	}

	result, err := s.issueTokens(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("auth.LoginWithPassword: %w", err)
	}
	s.log.InfoContext(ctx, "logged in", slog.String("account_id", account.ID.String()))
	return result, nil
}
