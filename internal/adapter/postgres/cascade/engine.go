// Package cascade removes dependent rows together with their parent and
// inserts the rows a new parent must come with, inside the caller's
// transaction.
package cascade

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/vitalog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vitalog-backend/internal/domain"
)

// maxDepth guards against a cyclic rule set.
const maxDepth = 8

// Observer receives the number of rows each rule affected.
type Observer interface {
	ObserveCascade(rule string, rows int64)
}

// Report counts affected rows per child kind.
type Report map[domain.ResourceKind]int64

// Engine executes cascade rules.
type Engine struct {
	db         postgres.Querier
	rules      map[domain.ResourceKind][]Rule
	bootstraps map[domain.ResourceKind][]Bootstrap
	observer   Observer
}

// New creates an Engine for the given rules. Rules for the same parent run
// in the order given.
func New(db postgres.Querier, rules []Rule, bootstraps []Bootstrap, observer Observer) (*Engine, error) {
	e := &Engine{
		db:         db,
		rules:      make(map[domain.ResourceKind][]Rule),
		bootstraps: make(map[domain.ResourceKind][]Bootstrap),
		observer:   observer,
	}
	for _, r := range rules {
		if _, ok := tables[r.Child]; !ok {
			return nil, fmt.Errorf("cascade rule %s: unknown child %s", r.Name, r.Child)
		}
		if r.Match == nil {
			return nil, fmt.Errorf("cascade rule %s: missing match", r.Name)
		}
		if r.Action == ActionNullify && r.Column == "" {
			return nil, fmt.Errorf("cascade rule %s: nullify without column", r.Name)
		}
		e.rules[r.Parent] = append(e.rules[r.Parent], r)
	}
	for _, b := range bootstraps {
		e.bootstraps[b.Parent] = append(e.bootstraps[b.Parent], b)
	}
	return e, nil
}

// NewDefault creates an Engine with DefaultRules and DefaultBootstraps.
func NewDefault(db postgres.Querier, observer Observer) *Engine {
	e, err := New(db, DefaultRules(), DefaultBootstraps(), observer)
	if err != nil {
		panic(err)
	}
	return e
}

// Rules returns the rules registered for parent.
func (e *Engine) Rules(parent domain.ResourceKind) []Rule {
	return e.rules[parent]
}

// FireDelete removes or detaches every dependent of the parent rows ids.
// ids is a slice of the parent's key type ([]uuid.UUID, or []int for foods).
// The parent rows themselves are not touched.
func (e *Engine) FireDelete(ctx context.Context, parent domain.ResourceKind, ids any) (Report, error) {
	if !postgres.InTx(ctx) {
		return nil, postgres.ErrNoTx
	}
	report := make(Report)
	if err := e.fire(ctx, parent, ids, report, 0); err != nil {
		return nil, err
	}
	return report, nil
}

func (e *Engine) fire(ctx context.Context, parent domain.ResourceKind, ids any, report Report, depth int) error {
	if depth > maxDepth {
		return errors.New("cascade: rule graph too deep")
	}
	q := postgres.QuerierFromCtx(ctx, e.db)

	for _, r := range e.rules[parent] {
		table := tables[r.Child]
		where := r.Match(ids)

		// Children with dependents of their own are expanded first.
		if r.Action == ActionDelete && len(e.rules[r.Child]) > 0 {
			childIDs, err := e.selectIDs(ctx, q, table, where)
			if err != nil {
				return fmt.Errorf("cascade %s: %w", r.Name, err)
			}
			if len(childIDs) > 0 {
				if err := e.fire(ctx, r.Child, childIDs, report, depth+1); err != nil {
					return err
				}
			}
		}

		var (
			sql  string
			args []any
			err  error
		)
		switch r.Action {
		case ActionNullify:
			sql, args, err = postgres.Builder.Update(table).Set(r.Column, nil).Where(where).ToSql()
		default:
			sql, args, err = postgres.Builder.Delete(table).Where(where).ToSql()
		}
		if err != nil {
			return fmt.Errorf("cascade %s: build: %w", r.Name, err)
		}

		tag, err := q.Exec(ctx, sql, args...)
		if err != nil {
			return fmt.Errorf("cascade %s: %w", r.Name, postgres.MapError(err, table, nil))
		}
		report[r.Child] += tag.RowsAffected()
		if e.observer != nil {
			e.observer.ObserveCascade(r.Name, tag.RowsAffected())
		}
	}
	return nil
}

func (e *Engine) selectIDs(ctx context.Context, q postgres.Querier, table string, where sq.Sqlizer) ([]uuid.UUID, error) {
	sql, args, err := postgres.Builder.Select("id").From(table).Where(where).ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, table, nil)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// FireCreate inserts the bootstrap rows for a newly created parent.
func (e *Engine) FireCreate(ctx context.Context, parent domain.ResourceKind, id uuid.UUID) error {
	if !postgres.InTx(ctx) {
		return postgres.ErrNoTx
	}
	q := postgres.QuerierFromCtx(ctx, e.db)

	for _, b := range e.bootstraps[parent] {
		sql, args, err := b.Insert(id).ToSql()
		if err != nil {
			return fmt.Errorf("bootstrap %s: build: %w", b.Name, err)
		}
		if _, err := q.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("bootstrap %s: %w", b.Name, postgres.MapError(err, string(parent), id))
		}
		if e.observer != nil {
			e.observer.ObserveCascade(b.Name, 1)
		}
	}
	return nil
}
