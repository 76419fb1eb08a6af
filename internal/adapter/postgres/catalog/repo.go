// Package catalog implements read access to the sport and food catalogs.
package catalog

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/vitalog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vitalog-backend/internal/domain"
)

// Repo provides catalog access backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new catalog repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ListSports returns every sport ordered by id.
func (r *Repo) ListSports(ctx context.Context) ([]domain.Sport, error) {
	var rows []sportRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, "SELECT id, name, met FROM sports ORDER BY id"); err != nil {
		return nil, postgres.MapError(err, "sport", nil)
	}
	out := make([]domain.Sport, len(rows))
	for i, row := range rows {
		out[i] = domain.Sport(row)
	}
	return out, nil
}

// GetSport returns a sport by id.
func (r *Repo) GetSport(ctx context.Context, id int) (*domain.Sport, error) {
	var row sportRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, "SELECT id, name, met FROM sports WHERE id = $1", id); err != nil {
		return nil, postgres.MapError(err, "sport", id)
	}
	s := domain.Sport(row)
	return &s, nil
}

// ListFoods returns foods whose name contains query, ordered by name.
func (r *Repo) ListFoods(ctx context.Context, query string, limit int) ([]domain.Food, error) {
	sel := postgres.Builder.
		Select("id", "name", "edible_portion", "energy_kj", "water_content").
		From("foods").
		OrderBy("name").
		Limit(uint64(limit))
	if query = strings.TrimSpace(query); query != "" {
		sel = sel.Where(sq.ILike{"name": "%" + query + "%"})
	}
	sql, args, err := sel.ToSql()
	if err != nil {
		return nil, err
	}

	var rows []foodRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "food", nil)
	}
	out := make([]domain.Food, len(rows))
	for i, row := range rows {
		out[i] = domain.Food(row)
	}
	return out, nil
}

// GetFood returns a food by id.
func (r *Repo) GetFood(ctx context.Context, id int) (*domain.Food, error) {
	var row foodRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row,
		"SELECT id, name, edible_portion, energy_kj, water_content FROM foods WHERE id = $1", id)
	if err != nil {
		return nil, postgres.MapError(err, "food", id)
	}
	f := domain.Food(row)
	return &f, nil
}

// MissingFoods returns the ids in ids that have no catalog row.
func (r *Repo) MissingFoods(ctx context.Context, ids []int) ([]int, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var missing []int
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &missing, `
		SELECT DISTINCT x FROM unnest($1::int[]) AS x
		WHERE NOT EXISTS (SELECT 1 FROM foods f WHERE f.id = x)
		ORDER BY x`, ids)
	if err != nil {
		return nil, postgres.MapError(err, "food", nil)
	}
	return missing, nil
}

// DeleteFood removes a food. Items referencing it are detached by the
// cascade engine in the same transaction.
func (r *Repo) DeleteFood(ctx context.Context, id int) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, "DELETE FROM foods WHERE id = $1", id)
	if err != nil {
		return postgres.MapError(err, "food", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "food", id)
	}
	return nil
}

type sportRow struct {
	ID   int     `db:"id"`
	Name string  `db:"name"`
	MET  float64 `db:"met"`
}

type foodRow struct {
	ID            int     `db:"id"`
	Name          string  `db:"name"`
	EdiblePortion float64 `db:"edible_portion"`
	EnergyKJ      float64 `db:"energy_kj"`
	WaterContent  float64 `db:"water_content"`
}
