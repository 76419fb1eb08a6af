// Package sleep implements the SleepRecord repository using PostgreSQL.
package sleep

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

const columns = "id, account_id, date, sleep_time, wake_time, note, created_at"

// Repo provides sleep record persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new sleep repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a sleep record. A zero CreatedAt is stamped by the database.
func (r *Repo) Create(ctx context.Context, rec *domain.SleepRecord) (*domain.SleepRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	ins := postgres.Builder.Insert("sleep_records").
		Columns("id", "account_id", "date", "sleep_time", "wake_time", "note")
	vals := []any{rec.ID, rec.AccountID, postgres.DateParam(rec.Date), postgres.ClockParam(rec.SleepTime), postgres.ClockParam(rec.WakeTime), rec.Note}
	if !rec.CreatedAt.IsZero() {
		ins = ins.Columns("created_at")
		vals = append(vals, rec.CreatedAt)
	}
	sql, args, err := ins.Values(vals...).Suffix("RETURNING " + columns).ToSql()
	if err != nil {
		return nil, err
	}

	var row recordRow
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "sleep_record", rec.ID)
	}
	out := row.toDomain()
	return &out, nil
}

// GetByID returns a sleep record by ID.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.SleepRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row recordRow
	if err := pgxscan.Get(ctx, q, &row, "SELECT "+columns+" FROM sleep_records WHERE id = $1", id); err != nil {
		return nil, postgres.MapError(err, "sleep_record", id)
	}
	out := row.toDomain()
	return &out, nil
}

// Update overwrites the editable fields of a sleep record.
func (r *Repo) Update(ctx context.Context, rec *domain.SleepRecord) (*domain.SleepRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row recordRow
	err := pgxscan.Get(ctx, q, &row, `
		UPDATE sleep_records SET date = $2, sleep_time = $3, wake_time = $4, note = $5
		WHERE id = $1
		RETURNING `+columns,
		rec.ID, postgres.DateParam(rec.Date), postgres.ClockParam(rec.SleepTime), postgres.ClockParam(rec.WakeTime), rec.Note,
	)
	if err != nil {
		return nil, postgres.MapError(err, "sleep_record", rec.ID)
	}
	out := row.toDomain()
	return &out, nil
}

// Delete removes a sleep record. Returns domain.ErrNotFound if it is absent.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, "DELETE FROM sleep_records WHERE id = $1", id)
	if err != nil {
		return postgres.MapError(err, "sleep_record", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "sleep_record", id)
	}
	return nil
}

// List returns the owner's records in the filter range, newest first.
func (r *Repo) List(ctx context.Context, owner uuid.UUID, f domain.RecordFilter) ([]domain.SleepRecord, error) {
	sel := postgres.Builder.Select(columns).From("sleep_records").
		Where(sq.Eq{"account_id": owner}).
		OrderBy("date DESC", "created_at DESC")
	return r.list(ctx, postgres.ApplyRange(sel, "date", f))
}

// ListByAccounts returns the newest records of any of the given accounts.
func (r *Repo) ListByAccounts(ctx context.Context, accounts []uuid.UUID, limit int) ([]domain.SleepRecord, error) {
	if len(accounts) == 0 {
		return []domain.SleepRecord{}, nil
	}
	sel := postgres.Builder.Select(columns).From("sleep_records").
		Where(sq.Expr("account_id = ANY(?)", accounts)).
		OrderBy("created_at DESC").
		Limit(uint64(limit))
	return r.list(ctx, sel)
}

func (r *Repo) list(ctx context.Context, sel sq.SelectBuilder) ([]domain.SleepRecord, error) {
	sql, args, err := sel.ToSql()
	if err != nil {
		return nil, err
	}

	var rows []recordRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "sleep_record", nil)
	}

	out := make([]domain.SleepRecord, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

type recordRow struct {
	ID        uuid.UUID   `db:"id"`
	AccountID uuid.UUID   `db:"account_id"`
	Date      time.Time   `db:"date"`
	SleepTime pgtype.Time `db:"sleep_time"`
	WakeTime  pgtype.Time `db:"wake_time"`
	Note      *string     `db:"note"`
	CreatedAt time.Time   `db:"created_at"`
}

func (r recordRow) toDomain() domain.SleepRecord {
	return domain.SleepRecord{
		ID:        r.ID,
		AccountID: r.AccountID,
		Date:      r.Date,
		SleepTime: postgres.ClockValue(r.SleepTime),
		WakeTime:  postgres.ClockValue(r.WakeTime),
		Note:      r.Note,
		CreatedAt: r.CreatedAt,
	}
}
