package postgres

import (
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/heartmarshall/vitalog-backend/internal/domain"
)

// Builder is the squirrel statement builder configured for PostgreSQL.
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ClockParam converts a time of day into a pgx time value.
func ClockParam(c domain.ClockTime) pgtype.Time {
	return pgtype.Time{Microseconds: c.Duration().Microseconds(), Valid: true}
}

// ClockValue converts a scanned time column into a domain.ClockTime.
func ClockValue(t pgtype.Time) domain.ClockTime {
	return domain.ClockTime(time.Duration(t.Microseconds) * time.Microsecond)
}

// DateParam truncates t to its calendar date.
func DateParam(t time.Time) pgtype.Date {
	return pgtype.Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), Valid: true}
}

// ApplyRange restricts q to rows whose column lies in the filter's
// inclusive date range and applies the limit.
func ApplyRange(q sq.SelectBuilder, column string, f domain.RecordFilter) sq.SelectBuilder {
	if f.From != nil {
		q = q.Where(sq.GtOrEq{column: DateParam(*f.From)})
	}
	if f.To != nil {
		q = q.Where(sq.LtOrEq{column: DateParam(*f.To)})
	}
	return q.Limit(uint64(f.EffectiveLimit()))
}
