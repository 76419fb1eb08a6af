// Package comment implements the activity comment repository using
// PostgreSQL.
package comment

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/vitalog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vitalog-backend/internal/domain"
)

const selectJoined = `
	SELECT c.id, c.account_id, a.username, c.activity_type, c.activity_id, c.content, c.created_at
	FROM activity_comments c
	JOIN accounts a ON a.id = c.account_id`

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new comment repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a comment and returns it with the author's username.
func (r *Repo) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	ins := postgres.Builder.Insert("activity_comments").
		Columns("id", "account_id", "activity_type", "activity_id", "content")
	vals := []any{c.ID, c.AccountID, string(c.Activity.Kind), c.Activity.ID, c.Content}
	if !c.CreatedAt.IsZero() {
		ins = ins.Columns("created_at")
		vals = append(vals, c.CreatedAt)
	}
	sql, args, err := ins.Values(vals...).ToSql()
	if err != nil {
		return nil, err
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return nil, postgres.MapError(err, "comment", c.ID)
	}
	return r.GetByID(ctx, c.ID)
}

// GetByID returns a comment by ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row commentRow
	if err := pgxscan.Get(ctx, q, &row, selectJoined+" WHERE c.id = $1", id); err != nil {
		return nil, postgres.MapError(err, "comment", id)
	}
	out := row.toDomain()
	return &out, nil
}

// UpdateContent replaces the text of a comment.
func (r *Repo) UpdateContent(ctx context.Context, id uuid.UUID, content string) (*domain.Comment, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, "UPDATE activity_comments SET content = $2 WHERE id = $1", id, content)
	if err != nil {
		return nil, postgres.MapError(err, "comment", id)
	}
	if tag.RowsAffected() == 0 {
		return nil, postgres.MapError(pgx.ErrNoRows, "comment", id)
	}
	return r.GetByID(ctx, id)
}

// Delete removes a comment. Returns domain.ErrNotFound if it is absent.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, "DELETE FROM activity_comments WHERE id = $1", id)
	if err != nil {
		return postgres.MapError(err, "comment", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "comment", id)
	}
	return nil
}

// ListByActivity returns the comments of an activity, oldest first.
func (r *Repo) ListByActivity(ctx context.Context, ref domain.ActivityRef) ([]domain.Comment, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []commentRow
	err := pgxscan.Select(ctx, q, &rows,
		selectJoined+" WHERE c.activity_type = $1 AND c.activity_id = $2 ORDER BY c.created_at, c.id",
		string(ref.Kind), ref.ID,
	)
	if err != nil {
		return nil, postgres.MapError(err, "comment", nil)
	}

	out := make([]domain.Comment, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

// CountByActivity returns how many comments an activity has.
func (r *Repo) CountByActivity(ctx context.Context, ref domain.ActivityRef) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var n int
	err := q.QueryRow(ctx,
		"SELECT count(*) FROM activity_comments WHERE activity_type = $1 AND activity_id = $2",
		string(ref.Kind), ref.ID,
	).Scan(&n)
	if err != nil {
		return 0, postgres.MapError(err, "comment", nil)
	}
	return n, nil
}

// ThreadsTouchedBy returns every activity whose comment list changes when
// account is removed: activities it commented on and its own commented
// activities.
func (r *Repo) ThreadsTouchedBy(ctx context.Context, account uuid.UUID) ([]domain.ActivityRef, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var rows []threadRow
	err := pgxscan.Select(ctx, q, &rows, `
		SELECT DISTINCT c.activity_type, c.activity_id
		FROM activity_comments c
		WHERE c.account_id = $1
		   OR (c.activity_type = 'sleep' AND c.activity_id IN (SELECT id FROM sleep_records WHERE account_id = $1))
		   OR (c.activity_type = 'sport' AND c.activity_id IN (SELECT id FROM sport_records WHERE account_id = $1))
		   OR (c.activity_type = 'meal'  AND c.activity_id IN (SELECT id FROM meal_records WHERE account_id = $1))`,
		account,
	)
	if err != nil {
		return nil, postgres.MapError(err, "comment", nil)
	}

	refs := make([]domain.ActivityRef, len(rows))
	for i, row := range rows {
		refs[i] = domain.ActivityRef{Kind: domain.ActivityKind(row.ActivityType), ID: row.ActivityID}
	}
	return refs, nil
}

type threadRow struct {
	ActivityType string    `db:"activity_type"`
	ActivityID   uuid.UUID `db:"activity_id"`
}

type commentRow struct {
	ID           uuid.UUID `db:"id"`
	AccountID    uuid.UUID `db:"account_id"`
	Username     string    `db:"username"`
	ActivityType string    `db:"activity_type"`
	ActivityID   uuid.UUID `db:"activity_id"`
	Content      string    `db:"content"`
	CreatedAt    time.Time `db:"created_at"`
}

func (r commentRow) toDomain() domain.Comment {
	return domain.Comment{
		ID:        r.ID,
		AccountID: r.AccountID,
		Username:  r.Username,
		Activity:  domain.ActivityRef{Kind: domain.ActivityKind(r.ActivityType), ID: r.ActivityID},
		Content:   r.Content,
		CreatedAt: r.CreatedAt,
	}
}
