// Package meal implements the MealRecord and MealItem repositories using
// PostgreSQL.
package meal

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

const recordColumns = "id, account_id, date, meal, source, created_at"

const itemQuery = `
	SELECT i.id, i.meal_record_id, i.food_id, i.grams,
		f.name AS food_name, f.energy_kj, f.water_content
	FROM meal_items i
	LEFT JOIN foods f ON f.id = i.food_id
	WHERE i.meal_record_id = ANY($1)
	ORDER BY i.meal_record_id, i.id`

// Repo provides meal persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new meal repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a meal record together with its items. Both inserts use
// the caller's transaction; a failing item rolls back the record.
func (r *Repo) Create(ctx context.Context, rec *domain.MealRecord) (*domain.MealRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	ins := postgres.Builder.Insert("meal_records").Columns("id", "account_id", "date", "meal", "source")
	vals := []any{rec.ID, rec.AccountID, postgres.DateParam(rec.Date), string(rec.Meal), string(rec.Source)}
	if !rec.CreatedAt.IsZero() {
		ins = ins.Columns("created_at")
		vals = append(vals, rec.CreatedAt)
	}
	sql, args, err := ins.Values(vals...).ToSql()
	if err != nil {
		return nil, err
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return nil, postgres.MapError(err, "meal_record", rec.ID)
	}

	if err := r.insertItems(ctx, q, rec.ID, rec.Items); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, rec.ID)
}

// ReplaceItems deletes every item of the record and inserts items instead.
func (r *Repo) ReplaceItems(ctx context.Context, recordID uuid.UUID, items []domain.MealItem) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, "DELETE FROM meal_items WHERE meal_record_id = $1", recordID); err != nil {
		return postgres.MapError(err, "meal_item", nil)
	}
	return r.insertItems(ctx, q, recordID, items)
}

func (r *Repo) insertItems(ctx context.Context, q postgres.Querier, recordID uuid.UUID, items []domain.MealItem) error {
	if len(items) == 0 {
		return nil
	}
	ins := postgres.Builder.Insert("meal_items").Columns("id", "meal_record_id", "food_id", "grams")
	for _, it := range items {
		id := it.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		ins = ins.Values(id, recordID, it.FoodID, it.Grams)
	}
	sql, args, err := ins.ToSql()
	if err != nil {
		return err
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "meal_item", nil)
	}
	return nil
}

// GetByID returns a meal record with its items.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.MealRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var row recordRow
	if err := pgxscan.Get(ctx, q, &row, "SELECT "+recordColumns+" FROM meal_records WHERE id = $1", id); err != nil {
		return nil, postgres.MapError(err, "meal_record", id)
	}
	recs := []domain.MealRecord{row.toDomain()}
	if err := r.attachItems(ctx, q, recs); err != nil {
		return nil, err
	}
	return &recs[0], nil
}

// Update overwrites the record's own fields. Items are untouched.
func (r *Repo) Update(ctx context.Context, rec *domain.MealRecord) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, "UPDATE meal_records SET date = $2, meal = $3, source = $4 WHERE id = $1",
		rec.ID, postgres.DateParam(rec.Date), string(rec.Meal), string(rec.Source))
	if err != nil {
		return postgres.MapError(err, "meal_record", rec.ID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "meal_record", rec.ID)
	}
	return nil
}

// Delete removes a meal record. Its items are removed by the cascade engine.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, "DELETE FROM meal_records WHERE id = $1", id)
	if err != nil {
		return postgres.MapError(err, "meal_record", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "meal_record", id)
	}
	return nil
}

// CountItems returns how many items reference the record.
func (r *Repo) CountItems(ctx context.Context, recordID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var n int
	if err := q.QueryRow(ctx, "SELECT count(*) FROM meal_items WHERE meal_record_id = $1", recordID).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "meal_item", nil)
	}
	return n, nil
}

// List returns the owner's meal records in the filter range, newest first.
func (r *Repo) List(ctx context.Context, owner uuid.UUID, f domain.RecordFilter) ([]domain.MealRecord, error) {
	sel := postgres.Builder.Select(recordColumns).From("meal_records").
		Where(sq.Eq{"account_id": owner}).
		OrderBy("date DESC", "created_at DESC")
	return r.list(ctx, postgres.ApplyRange(sel, "date", f))
}

// ListByAccounts returns the newest meal records of any of the given accounts.
func (r *Repo) ListByAccounts(ctx context.Context, accounts []uuid.UUID, limit int) ([]domain.MealRecord, error) {
	if len(accounts) == 0 {
		return []domain.MealRecord{}, nil
	}
	sel := postgres.Builder.Select(recordColumns).From("meal_records").
		Where(sq.Expr("account_id = ANY(?)", accounts)).
		OrderBy("created_at DESC").
		Limit(uint64(limit))
	return r.list(ctx, sel)
}

func (r *Repo) list(ctx context.Context, sel sq.SelectBuilder) ([]domain.MealRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := sel.ToSql()
	if err != nil {
		return nil, err
	}
	var rows []recordRow
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "meal_record", nil)
	}

	out := make([]domain.MealRecord, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	if err := r.attachItems(ctx, q, out); err != nil {
		return nil, err
	}
	return out, nil
}

// attachItems loads the items of every record in one query.
func (r *Repo) attachItems(ctx context.Context, q postgres.Querier, recs []domain.MealRecord) error {
	if len(recs) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(recs))
	byID := make(map[uuid.UUID]int, len(recs))
	for i := range recs {
		ids[i] = recs[i].ID
		byID[recs[i].ID] = i
		recs[i].Items = []domain.MealItem{}
	}

	var rows []itemRow
	if err := pgxscan.Select(ctx, q, &rows, itemQuery, ids); err != nil {
		return postgres.MapError(err, "meal_item", nil)
	}
	for _, row := range rows {
		i := byID[row.MealRecordID]
		recs[i].Items = append(recs[i].Items, row.toDomain())
	}
	return nil
}

type recordRow struct {
	ID        uuid.UUID `db:"id"`
	AccountID uuid.UUID `db:"account_id"`
	Date      time.Time `db:"date"`
	Meal      string    `db:"meal"`
	Source    string    `db:"source"`
	CreatedAt time.Time `db:"created_at"`
}

func (r recordRow) toDomain() domain.MealRecord {
	return domain.MealRecord{
		ID:        r.ID,
		AccountID: r.AccountID,
		Date:      r.Date,
		Meal:      domain.MealType(r.Meal),
		Source:    domain.MealSource(r.Source),
		CreatedAt: r.CreatedAt,
	}
}

type itemRow struct {
	ID           uuid.UUID `db:"id"`
	MealRecordID uuid.UUID `db:"meal_record_id"`
	FoodID       *int      `db:"food_id"`
	Grams        float64   `db:"grams"`
	FoodName     *string   `db:"food_name"`
	EnergyKJ     *float64  `db:"energy_kj"`
	WaterContent *float64  `db:"water_content"`
}

func (r itemRow) toDomain() domain.MealItem {
	item := domain.MealItem{
		ID:           r.ID,
		MealRecordID: r.MealRecordID,
		FoodID:       r.FoodID,
		Grams:        r.Grams,
	}
	// A retired food leaves the item without facts.
	if r.FoodName != nil {
		facts := domain.FoodFacts{Name: *r.FoodName}
		if r.EnergyKJ != nil {
			facts.EnergyKJ = *r.EnergyKJ
		}
		if r.WaterContent != nil {
			facts.WaterContent = *r.WaterContent
		}
		item.Food = &facts
	}
	return item
}
