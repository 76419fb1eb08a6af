package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/vitalog-backend/internal/domain"
	"github.com/heartmarshall/vitalog-backend/internal/mutation"
)

// Register creates an account with its profile and self-edge, then issues
// tokens. A taken username or email is reported as CONFLICT.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	input.Email = domain.NormalizeEmail(input.Email)
	input.Username = domain.NormalizeUsername(input.Username)

	var hash []byte
	out := mutation.Run(ctx, s.mut, mutation.Mutation[*domain.Account]{
		Op: "account.register",
		Validate: func() (err error) {
			if err := input.Validate(); err != nil {
				return err
			}
			hash, err = bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}
			return nil
		},
		Apply: func(ctx context.Context) (*domain.Account, error) {
			account, err := s.accounts.Create(ctx, &domain.Account{
				ID:           uuid.New(),
				Username:     input.Username,
				Email:        input.Email,
				PasswordHash: string(hash),
			})
			switch {
			case errors.Is(err, domain.ErrUsernameTaken):
				return nil, domain.Reject(domain.StatusConflict, "username already taken")
			case errors.Is(err, domain.ErrEmailTaken):
				return nil, domain.Reject(domain.StatusConflict, "email already registered")
			case err != nil:
				return nil, fmt.Errorf("create account: %w", err)
			}

			profile := domain.DefaultProfile(account.ID)
			if _, err := s.accounts.CreateProfile(ctx, &profile); err != nil {
				return nil, fmt.Errorf("create profile: %w", err)
			}
			return account, nil
		},
		Cascade: func(ctx context.Context, account *domain.Account) error {
			return s.bootstrap.FireCreate(ctx, domain.ResourceAccount, account.ID)
		},
	})
	if !out.OK() {
		return nil, fmt.Errorf("auth.Register: %w", out.Err())
	}

	result, err := s.issueTokens(ctx, out.Value)
	if err != nil {
		return nil, fmt.Errorf("auth.Register issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "account registered",
		slog.String("user_id", out.Value.ID.String()))

	return result, nil
}
