// Package account implements the Account and Profile repositories using
// PostgreSQL.
package account

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	postgres "github.com/heartmarshall/vitalog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vitalog-backend/internal/domain"
)

const accountColumns = "id, username, email, password_hash, created_at"

const profileColumns = `account_id, real_name, gender, height_cm, weight_kg, birthday,
	sleep_goal_hours, burn_goal_kcal, intake_goal_kcal, updated_at`

// Repo provides account and profile persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new account repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Accounts
// ---------------------------------------------------------------------------

// Create inserts a new account. A taken username or email is returned as
// domain.ErrUsernameTaken or domain.ErrEmailTaken.
func (r *Repo) Create(ctx context.Context, a *domain.Account) (*domain.Account, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row accountRow
	err := pgxscan.Get(ctx, q, &row, `
		INSERT INTO accounts (id, username, email, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING `+accountColumns,
		a.ID, a.Username, a.Email, a.PasswordHash,
	)
	if err != nil {
		return nil, postgres.MapError(err, "account", a.ID)
	}
	out := row.toDomain()
	return &out, nil
}

// GetByID returns an account by ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	return r.getOne(ctx, "id", id)
}

// GetByEmail returns an account by its normalized email.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.getOne(ctx, "email", email)
}

// GetByUsername returns an account by its normalized username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	return r.getOne(ctx, "username", username)
}

func (r *Repo) getOne(ctx context.Context, column string, value any) (*domain.Account, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row accountRow
	err := pgxscan.Get(ctx, q, &row, "SELECT "+accountColumns+" FROM accounts WHERE "+column+" = $1", value)
	if err != nil {
		return nil, postgres.MapError(err, "account", value)
	}
	out := row.toDomain()
	return &out, nil
}

// Delete removes the account row. Dependents are removed by the cascade
// engine in the same transaction. Returns domain.ErrNotFound if no row was
// deleted.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, "DELETE FROM accounts WHERE id = $1", id)
	if err != nil {
		return postgres.MapError(err, "account", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "account", id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Profiles
// ---------------------------------------------------------------------------

// CreateProfile inserts the profile of a new account.
func (r *Repo) CreateProfile(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row profileRow
	err := pgxscan.Get(ctx, q, &row, `
		INSERT INTO profiles (account_id, real_name, gender, height_cm, weight_kg, birthday,
			sleep_goal_hours, burn_goal_kcal, intake_goal_kcal)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+profileColumns,
		p.AccountID, p.RealName, genderParam(p.Gender), p.HeightCM, p.WeightKG, birthdayParam(p.Birthday),
		p.SleepGoalHours, p.BurnGoalKcal, p.IntakeGoalKcal,
	)
	if err != nil {
		return nil, postgres.MapError(err, "profile", p.AccountID)
	}
	out := row.toDomain()
	return &out, nil
}

// GetProfile returns the profile of an account.
func (r *Repo) GetProfile(ctx context.Context, accountID uuid.UUID) (*domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row profileRow
	err := pgxscan.Get(ctx, q, &row, "SELECT "+profileColumns+" FROM profiles WHERE account_id = $1", accountID)
	if err != nil {
		return nil, postgres.MapError(err, "profile", accountID)
	}
	out := row.toDomain()
	return &out, nil
}

// UpdateProfile overwrites every editable profile field.
func (r *Repo) UpdateProfile(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row profileRow
	err := pgxscan.Get(ctx, q, &row, `
		UPDATE profiles SET
			real_name = $2, gender = $3, height_cm = $4, weight_kg = $5, birthday = $6,
			sleep_goal_hours = $7, burn_goal_kcal = $8, intake_goal_kcal = $9,
			updated_at = now()
		WHERE account_id = $1
		RETURNING `+profileColumns,
		p.AccountID, p.RealName, genderParam(p.Gender), p.HeightCM, p.WeightKG, birthdayParam(p.Birthday),
		p.SleepGoalHours, p.BurnGoalKcal, p.IntakeGoalKcal,
	)
	if err != nil {
		return nil, postgres.MapError(err, "profile", p.AccountID)
	}
	out := row.toDomain()
	return &out, nil
}

// ---------------------------------------------------------------------------
// Rows
// ---------------------------------------------------------------------------

type accountRow struct {
	ID           uuid.UUID `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

func (r accountRow) toDomain() domain.Account {
	return domain.Account{
		ID:           r.ID,
		Username:     r.Username,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
	}
}

type profileRow struct {
	AccountID      uuid.UUID   `db:"account_id"`
	RealName       string      `db:"real_name"`
	Gender         *string     `db:"gender"`
	HeightCM       *float64    `db:"height_cm"`
	WeightKG       *float64    `db:"weight_kg"`
	Birthday       pgtype.Date `db:"birthday"`
	SleepGoalHours float64     `db:"sleep_goal_hours"`
	BurnGoalKcal   float64     `db:"burn_goal_kcal"`
	IntakeGoalKcal float64     `db:"intake_goal_kcal"`
	UpdatedAt      time.Time   `db:"updated_at"`
}

func (r profileRow) toDomain() domain.Profile {
	p := domain.Profile{
		AccountID:      r.AccountID,
		RealName:       r.RealName,
		HeightCM:       r.HeightCM,
		WeightKG:       r.WeightKG,
		SleepGoalHours: r.SleepGoalHours,
		BurnGoalKcal:   r.BurnGoalKcal,
		IntakeGoalKcal: r.IntakeGoalKcal,
		UpdatedAt:      r.UpdatedAt,
	}
	if r.Gender != nil {
		g := domain.Gender(*r.Gender)
		p.Gender = &g
	}
	if r.Birthday.Valid {
		b := r.Birthday.Time
		p.Birthday = &b
	}
	return p
}

func genderParam(g *domain.Gender) *string {
	if g == nil {
		return nil
	}
	s := string(*g)
	return &s
}

func birthdayParam(t *time.Time) pgtype.Date {
	if t == nil {
		return pgtype.Date{}
	}
	return postgres.DateParam(*t)
}
