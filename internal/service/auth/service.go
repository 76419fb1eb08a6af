package auth

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/vitalog-backend/internal/config"
	"github.com/heartmarshall/vitalog-backend/internal/domain"
	"github.com/heartmarshall/vitalog-backend/internal/mutation"
)

// accountRepo defines the account repository interface needed by auth service.
type accountRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	Create(ctx context.Context, a *domain.Account) (*domain.Account, error)
	CreateProfile(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
}

// tokenRepo defines the refresh token repository interface needed by auth service.
type tokenRepo interface {
	Create(ctx context.Context, accountID uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.RefreshToken, error)
	GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	RevokeByID(ctx context.Context, id uuid.UUID) error
	RevokeAllByAccount(ctx context.Context, accountID uuid.UUID) error
	DeleteExpired(ctx context.Context) (int, error)
}

// bootstrapper inserts the rows a new account must come with.
type bootstrapper interface {
	FireCreate(ctx context.Context, parent domain.ResourceKind, id uuid.UUID) error
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(accountID uuid.UUID) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, error)
	GenerateRefreshToken() (raw string, hash string, err error)
}

// Service implements auth operations.
type Service struct {
	log       *slog.Logger
	accounts  accountRepo
	tokens    tokenRepo
	bootstrap bootstrapper
	jwt       jwtManager
	mut       *mutation.Coordinator
	cfg       config.AuthConfig

	decoyHash func() []byte
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	accounts accountRepo,
	tokens tokenRepo,
	bootstrap bootstrapper,
	jwt jwtManager,
	mut *mutation.Coordinator,
	cfg config.AuthConfig,
) *Service {
	s := &Service{
		log:       logger.With("service", "auth"),
		accounts:  accounts,
		tokens:    tokens,
		bootstrap: bootstrap,
		jwt:       jwt,
		mut:       mut,
		cfg:       cfg,
	}
	s.decoyHash = sync.OnceValue(func() []byte {
		h, _ := bcrypt.GenerateFromPassword([]byte("decoy-password"), cfg.PasswordHashCost)
		return h
	})
	return s
}

// issueTokens generates access and refresh tokens for the given account,
// stores the refresh token hash in DB, and returns an AuthResult.
func (s *Service) issueTokens(ctx context.Context, account *domain.Account) (*AuthResult, error) {
	accessToken, err := s.jwt.GenerateAccessToken(account.ID)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	rawRefresh, hashRefresh, err := s.jwt.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	if _, err := s.tokens.Create(ctx, account.ID, hashRefresh, time.Now().Add(s.cfg.RefreshTokenTTL)); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &AuthResult{
		AccessToken:  accessToken,
		RefreshToken: rawRefresh,
		Account:      account,
	}, nil
}
