package domain

import "time"

// DefaultListLimit caps list reads when the caller does not ask for less.
const DefaultListLimit = 100

// RecordFilter restricts record listings to an inclusive date range.
type RecordFilter struct {
	From  *time.Time
	To    *time.Time
	Limit int
}

// EffectiveLimit returns Limit clamped to (0, DefaultListLimit].
func (f RecordFilter) EffectiveLimit() int {
	if f.Limit <= 0 || f.Limit > DefaultListLimit {
		return DefaultListLimit
	}
	return f.Limit
}
