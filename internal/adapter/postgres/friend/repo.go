// Package friend implements the friend edge repository using PostgreSQL.
package friend

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/vitalog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vitalog-backend/internal/domain"
)

const selectColumns = `e.id, e.from_id, e.to_id, fa.username AS from_username, ta.username AS to_username,
	e.status, e.created_at, e.updated_at`

const fromJoined = `friend_edges e
	JOIN accounts fa ON fa.id = e.from_id
	JOIN accounts ta ON ta.id = e.to_id`

// Repo provides friend edge persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new friend repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts an edge. A second active edge for the same pair fails with
// domain.ErrDuplicateRelationship.
func (r *Repo) Create(ctx context.Context, e *domain.FriendEdge) (*domain.FriendEdge, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	_, err := q.Exec(ctx,
		"INSERT INTO friend_edges (id, from_id, to_id, status) VALUES ($1, $2, $3, $4)",
		e.ID, e.FromID, e.ToID, string(e.Status),
	)
	if err != nil {
		return nil, postgres.MapError(err, "friend_edge", e.ID)
	}
	return r.GetByID(ctx, e.ID)
}

// GetByID returns an edge with both usernames.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.FriendEdge, error) {
	edges, err := r.selectEdges(ctx, sq.Eq{"e.id": id}, "")
	if err != nil {
		return nil, err
	}
	if len(edges) == 0 {
		return nil, postgres.MapError(pgx.ErrNoRows, "friend_edge", id)
	}
	return &edges[0], nil
}

// ActiveBetween returns the pending or accepted edge between a and b in
// either direction.
func (r *Repo) ActiveBetween(ctx context.Context, a, b uuid.UUID) (*domain.FriendEdge, error) {
	where := sq.And{
		sq.Or{
			sq.Eq{"e.from_id": a, "e.to_id": b},
			sq.Eq{"e.from_id": b, "e.to_id": a},
		},
		sq.Eq{"e.status": []string{string(domain.EdgePending), string(domain.EdgeAccepted)}},
	}
	edges, err := r.selectEdges(ctx, where, "")
	if err != nil {
		return nil, err
	}
	if len(edges) == 0 {
		return nil, postgres.MapError(pgx.ErrNoRows, "friend_edge", nil)
	}
	return &edges[0], nil
}

// SetStatus moves an edge to status.
func (r *Repo) SetStatus(ctx context.Context, id uuid.UUID, status domain.EdgeStatus) (*domain.FriendEdge, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, "UPDATE friend_edges SET status = $2, updated_at = now() WHERE id = $1", id, string(status))
	if err != nil {
		return nil, postgres.MapError(err, "friend_edge", id)
	}
	if tag.RowsAffected() == 0 {
		return nil, postgres.MapError(pgx.ErrNoRows, "friend_edge", id)
	}
	return r.GetByID(ctx, id)
}

// Delete removes an edge. Returns domain.ErrNotFound if it is absent.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, "DELETE FROM friend_edges WHERE id = $1", id)
	if err != nil {
		return postgres.MapError(err, "friend_edge", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "friend_edge", id)
	}
	return nil
}

// ListFriends returns the accepted edges of owner, excluding the self edge.
func (r *Repo) ListFriends(ctx context.Context, owner uuid.UUID) ([]domain.FriendEdge, error) {
	where := sq.And{
		sq.Or{sq.Eq{"e.from_id": owner}, sq.Eq{"e.to_id": owner}},
		sq.Expr("e.from_id <> e.to_id"),
		sq.Eq{"e.status": string(domain.EdgeAccepted)},
	}
	return r.selectEdges(ctx, where, "e.updated_at DESC")
}

// ListReceived returns pending and rejected requests sent to owner.
func (r *Repo) ListReceived(ctx context.Context, owner uuid.UUID) ([]domain.FriendEdge, error) {
	return r.selectEdges(ctx, requestsWhere("e.to_id", owner), "e.created_at DESC")
}

// ListSent returns pending and rejected requests sent by owner.
func (r *Repo) ListSent(ctx context.Context, owner uuid.UUID) ([]domain.FriendEdge, error) {
	return r.selectEdges(ctx, requestsWhere("e.from_id", owner), "e.created_at DESC")
}

func requestsWhere(column string, owner uuid.UUID) sq.Sqlizer {
	return sq.And{
		sq.Eq{column: owner},
		sq.Expr("e.from_id <> e.to_id"),
		sq.Eq{"e.status": []string{string(domain.EdgePending), string(domain.EdgeRejected)}},
	}
}

// FriendIDs returns the accounts holding an accepted edge with owner.
func (r *Repo) FriendIDs(ctx context.Context, owner uuid.UUID) ([]uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var ids []uuid.UUID
	err := pgxscan.Select(ctx, q, &ids, `
		SELECT CASE WHEN from_id = $1 THEN to_id ELSE from_id END
		FROM friend_edges
		WHERE (from_id = $1 OR to_id = $1) AND from_id <> to_id AND status = 'accepted'`,
		owner,
	)
	if err != nil {
		return nil, postgres.MapError(err, "friend_edge", nil)
	}
	return ids, nil
}

// Counterparts returns every other account holding an edge of any status
// with owner.
func (r *Repo) Counterparts(ctx context.Context, owner uuid.UUID) ([]uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var ids []uuid.UUID
	err := pgxscan.Select(ctx, q, &ids, `
		SELECT DISTINCT CASE WHEN from_id = $1 THEN to_id ELSE from_id END
		FROM friend_edges
		WHERE (from_id = $1 OR to_id = $1) AND from_id <> to_id`,
		owner,
	)
	if err != nil {
		return nil, postgres.MapError(err, "friend_edge", nil)
	}
	return ids, nil
}

// AreFriends reports whether a and b are the same account or hold an
// accepted edge.
func (r *Repo) AreFriends(ctx context.Context, a, b uuid.UUID) (bool, error) {
	if a == b {
		return true, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.db)

	var ok bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM friend_edges
			WHERE status = 'accepted'
			  AND ((from_id = $1 AND to_id = $2) OR (from_id = $2 AND to_id = $1))
		)`, a, b,
	).Scan(&ok)
	if err != nil {
		return false, postgres.MapError(err, "friend_edge", nil)
	}
	return ok, nil
}

func (r *Repo) selectEdges(ctx context.Context, where sq.Sqlizer, orderBy string) ([]domain.FriendEdge, error) {
	sel := postgres.Builder.Select(selectColumns).From(fromJoined).Where(where)
	if orderBy != "" {
		sel = sel.OrderBy(orderBy)
	}
	sql, args, err := sel.ToSql()
	if err != nil {
		return nil, err
	}

	var rows []edgeRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "friend_edge", nil)
	}

	out := make([]domain.FriendEdge, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

type edgeRow struct {
	ID           uuid.UUID `db:"id"`
	FromID       uuid.UUID `db:"from_id"`
	ToID         uuid.UUID `db:"to_id"`
	FromUsername string    `db:"from_username"`
	ToUsername   string    `db:"to_username"`
	Status       string    `db:"status"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r edgeRow) toDomain() domain.FriendEdge {
	return domain.FriendEdge{
		ID:           r.ID,
		FromID:       r.FromID,
		ToID:         r.ToID,
		FromUsername: r.FromUsername,
		ToUsername:   r.ToUsername,
		Status:       domain.EdgeStatus(r.Status),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
