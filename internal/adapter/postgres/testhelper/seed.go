package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/vitalog-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedAccount creates an account with a default profile and its accepted
// self-edge, the same rows registration produces.
func SeedAccount(t *testing.T, pool *pgxpool.Pool) domain.Account {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	acc := domain.Account{
		ID:           uuid.New(),
		Username:     "user-" + suffix,
		Email:        "user-" + suffix + "@example.com",
		PasswordHash: "not-a-real-hash",
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		t.Fatalf("testhelper: SeedAccount begin: %v", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx,
		`INSERT INTO accounts (id, username, email, password_hash, created_at) VALUES ($1, $2, $3, $4, $5)`,
		acc.ID, acc.Username, acc.Email, acc.PasswordHash, acc.CreatedAt,
	); err != nil {
		t.Fatalf("testhelper: SeedAccount insert account: %v", err)
	}
	if _, err := tx.Exec(ctx, `INSERT INTO profiles (account_id) VALUES ($1)`, acc.ID); err != nil {
		t.Fatalf("testhelper: SeedAccount insert profile: %v", err)
	}
	if _, err := tx.Exec(ctx,
		`INSERT INTO friend_edges (id, from_id, to_id, status) VALUES ($1, $2, $2, 'accepted')`,
		uuid.New(), acc.ID,
	); err != nil {
		t.Fatalf("testhelper: SeedAccount insert self edge: %v", err)
	}
	if err := tx.Commit(ctx); err != nil {
		t.Fatalf("testhelper: SeedAccount commit: %v", err)
	}

	return acc
}

// SeedEdge inserts a friend edge with the given status and returns its id.
func SeedEdge(t *testing.T, pool *pgxpool.Pool, from, to uuid.UUID, status domain.EdgeStatus) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO friend_edges (id, from_id, to_id, status) VALUES ($1, $2, $3, $4)`,
		id, from, to, string(status),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEdge: %v", err)
	}
	return id
}

// SeedSleep inserts a sleep record for the account and returns its id.
func SeedSleep(t *testing.T, pool *pgxpool.Pool, accountID uuid.UUID) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO sleep_records (id, account_id, date, sleep_time, wake_time)
		 VALUES ($1, $2, CURRENT_DATE, '23:00', '07:00')`,
		id, accountID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSleep: %v", err)
	}
	return id
}

// SeedComment inserts a comment by author on the activity and returns its id.
func SeedComment(t *testing.T, pool *pgxpool.Pool, author uuid.UUID, ref domain.ActivityRef) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO activity_comments (id, account_id, activity_type, activity_id, content)
		 VALUES ($1, $2, $3, $4, 'nice one')`,
		id, author, string(ref.Kind), ref.ID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedComment: %v", err)
	}
	return id
}

// Count runs a SELECT count(*) query and returns the result.
func Count(t *testing.T, pool *pgxpool.Pool, sql string, args ...any) int {
	t.Helper()

	var n int
	if err := pool.QueryRow(context.Background(), sql, args...).Scan(&n); err != nil {
		t.Fatalf("testhelper: Count %q: %v", sql, err)
	}
	return n
}
