// Package sport implements the SportRecord repository using PostgreSQL.
// Reads join the sport catalog and the owner's profile so that calories can
// be derived from the current MET, weight and gender.
package sport

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	postgres "github.com/heartmarshall/vitalog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vitalog-backend/internal/domain"
)

const selectColumns = `r.id, r.account_id, r.sport_id, s.name AS sport_name, s.met,
	r.date, r.begin_time, r.end_time, r.note, r.created_at, p.weight_kg, p.gender`

const fromJoined = `sport_records r
	JOIN sports s ON s.id = r.sport_id
	LEFT JOIN profiles p ON p.account_id = r.account_id`

// Repo provides sport record persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new sport repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a sport record and returns it with its calorie basis.
func (r *Repo) Create(ctx context.Context, rec *domain.SportRecord) (*domain.SportRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	ins := postgres.Builder.Insert("sport_records").
		Columns("id", "account_id", "sport_id", "date", "begin_time", "end_time", "note")
	vals := []any{rec.ID, rec.AccountID, rec.SportID, postgres.DateParam(rec.Date), postgres.ClockParam(rec.BeginTime), postgres.ClockParam(rec.EndTime), rec.Note}
	if !rec.CreatedAt.IsZero() {
		ins = ins.Columns("created_at")
		vals = append(vals, rec.CreatedAt)
	}
	sql, args, err := ins.Values(vals...).ToSql()
	if err != nil {
		return nil, err
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return nil, postgres.MapError(err, "sport_record", rec.ID)
	}
	return r.GetByID(ctx, rec.ID)
}

// GetByID returns a sport record by ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.SportRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row recordRow
	if err := pgxscan.Get(ctx, q, &row, "SELECT "+selectColumns+" FROM "+fromJoined+" WHERE r.id = $1", id); err != nil {
		return nil, postgres.MapError(err, "sport_record", id)
	}
	out := row.toDomain()
	return &out, nil
}

// Update overwrites the editable fields of a sport record.
func (r *Repo) Update(ctx context.Context, rec *domain.SportRecord) (*domain.SportRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE sport_records SET sport_id = $2, date = $3, begin_time = $4, end_time = $5, note = $6
		WHERE id = $1`,
		rec.ID, rec.SportID, postgres.DateParam(rec.Date), postgres.ClockParam(rec.BeginTime), postgres.ClockParam(rec.EndTime), rec.Note,
	)
	if err != nil {
		return nil, postgres.MapError(err, "sport_record", rec.ID)
	}
	if tag.RowsAffected() == 0 {
		return nil, postgres.MapError(pgx.ErrNoRows, "sport_record", rec.ID)
	}
	return r.GetByID(ctx, rec.ID)
}

// Delete removes a sport record. Returns domain.ErrNotFound if it is absent.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, "DELETE FROM sport_records WHERE id = $1", id)
	if err != nil {
		return postgres.MapError(err, "sport_record", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "sport_record", id)
	}
	return nil
}

// List returns the owner's records in the filter range, newest first.
func (r *Repo) List(ctx context.Context, owner uuid.UUID, f domain.RecordFilter) ([]domain.SportRecord, error) {
	sel := postgres.Builder.Select(selectColumns).From(fromJoined).
		Where(sq.Eq{"r.account_id": owner}).
		OrderBy("r.date DESC", "r.created_at DESC")
	return r.list(ctx, postgres.ApplyRange(sel, "r.date", f))
}

// ListByAccounts returns the newest records of any of the given accounts.
func (r *Repo) ListByAccounts(ctx context.Context, accounts []uuid.UUID, limit int) ([]domain.SportRecord, error) {
	if len(accounts) == 0 {
		return []domain.SportRecord{}, nil
	}
	sel := postgres.Builder.Select(selectColumns).From(fromJoined).
		Where(sq.Expr("r.account_id = ANY(?)", accounts)).
		OrderBy("r.created_at DESC").
		Limit(uint64(limit))
	return r.list(ctx, sel)
}

func (r *Repo) list(ctx context.Context, sel sq.SelectBuilder) ([]domain.SportRecord, error) {
	sql, args, err := sel.ToSql()
	if err != nil {
		return nil, err
	}

	var rows []recordRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "sport_record", nil)
	}

	out := make([]domain.SportRecord, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

type recordRow struct {
	ID        uuid.UUID   `db:"id"`
	AccountID uuid.UUID   `db:"account_id"`
	SportID   int         `db:"sport_id"`
	SportName string      `db:"sport_name"`
	MET       float64     `db:"met"`
	Date      time.Time   `db:"date"`
	BeginTime pgtype.Time `db:"begin_time"`
	EndTime   pgtype.Time `db:"end_time"`
	Note      *string     `db:"note"`
	CreatedAt time.Time   `db:"created_at"`
	WeightKG  *float64    `db:"weight_kg"`
	Gender    *string     `db:"gender"`
}

func (r recordRow) toDomain() domain.SportRecord {
	rec := domain.SportRecord{
		ID:        r.ID,
		AccountID: r.AccountID,
		SportID:   r.SportID,
		SportName: r.SportName,
		Date:      r.Date,
		BeginTime: postgres.ClockValue(r.BeginTime),
		EndTime:   postgres.ClockValue(r.EndTime),
		Note:      r.Note,
		CreatedAt: r.CreatedAt,
		Basis: domain.CalorieBasis{
			MET:      r.MET,
			WeightKG: r.WeightKG,
		},
	}
	if r.Gender != nil {
		g := domain.Gender(*r.Gender)
		rec.Basis.Gender = &g
	}
	return rec
}
