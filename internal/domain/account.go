package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account is an identity that owns records and takes part in friend edges.
type Account struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Profile holds per-account body metrics and daily goals.
type Profile struct {
	AccountID      uuid.UUID
	RealName       string
	Gender         *Gender
	HeightCM       *float64
	WeightKG       *float64
	Birthday       *time.Time
	SleepGoalHours float64
	BurnGoalKcal   float64
	IntakeGoalKcal float64
	UpdatedAt      time.Time
}

// DefaultProfile returns a Profile with the default daily goals.
func DefaultProfile(accountID uuid.UUID) Profile {
	return Profile{
		AccountID:      accountID,
		SleepGoalHours: 8,
		BurnGoalKcal:   500,
		IntakeGoalKcal: 2000,
	}
}

// RefreshToken represents a hashed refresh token stored in the database.
type RefreshToken struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsRevoked returns true if the token has been revoked.
func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsExpired returns true if the token has expired relative to now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
