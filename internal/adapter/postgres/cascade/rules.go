package cascade

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/vitalog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vitalog-backend/internal/domain"
)

// Action is what happens to a dependent row when its parent is deleted.
type Action int

const (
	ActionDelete Action = iota
	ActionNullify
)

func (a Action) String() string {
	if a == ActionNullify {
		return "nullify"
	}
	return "delete"
}

// Rule links a parent kind to the rows of Child that depend on it.
type Rule struct {
	Name   string
	Parent domain.ResourceKind
	Child  domain.ResourceKind
	// Match selects the dependents of the given parent ids. ids is a slice
	// of the parent's primary key type.
	Match  func(ids any) sq.Sqlizer
	Action Action
	// Column is set to NULL by ActionNullify.
	Column string
}

// Bootstrap inserts the rows a freshly created parent must come with.
type Bootstrap struct {
	Name   string
	Parent domain.ResourceKind
	Insert func(id uuid.UUID) sq.InsertBuilder
}

// tables maps each kind that can appear as a cascade child to its table.
var tables = map[domain.ResourceKind]string{
	domain.ResourceProfile:      "profiles",
	domain.ResourceRefreshToken: "refresh_tokens",
	domain.ResourceSleepRecord:  "sleep_records",
	domain.ResourceSportRecord:  "sport_records",
	domain.ResourceMealRecord:   "meal_records",
	domain.ResourceMealItem:     "meal_items",
	domain.ResourceComment:      "activity_comments",
	domain.ResourceFriendEdge:   "friend_edges",
}

func anyOf(col string) func(ids any) sq.Sqlizer {
	return func(ids any) sq.Sqlizer {
		return sq.Expr(col+" = ANY(?)", ids)
	}
}

func commentsOn(kind domain.ActivityKind) func(ids any) sq.Sqlizer {
	return func(ids any) sq.Sqlizer {
		return sq.And{
			sq.Eq{"activity_type": string(kind)},
			sq.Expr("activity_id = ANY(?)", ids),
		}
	}
}

// DefaultRules returns the dependency graph of the health tracker.
func DefaultRules() []Rule {
	return []Rule{
		// Comments reference their activity by (type, id), so each record
		// kind needs its own rule filtering on both fields.
		{Name: "sleep_comments", Parent: domain.ResourceSleepRecord, Child: domain.ResourceComment, Match: commentsOn(domain.ActivitySleep)},
		{Name: "sport_comments", Parent: domain.ResourceSportRecord, Child: domain.ResourceComment, Match: commentsOn(domain.ActivitySport)},
		{Name: "meal_comments", Parent: domain.ResourceMealRecord, Child: domain.ResourceComment, Match: commentsOn(domain.ActivityMeal)},
		{Name: "meal_items", Parent: domain.ResourceMealRecord, Child: domain.ResourceMealItem, Match: anyOf("meal_record_id")},

		{Name: "account_sleep", Parent: domain.ResourceAccount, Child: domain.ResourceSleepRecord, Match: anyOf("account_id")},
		{Name: "account_sport", Parent: domain.ResourceAccount, Child: domain.ResourceSportRecord, Match: anyOf("account_id")},
		{Name: "account_meals", Parent: domain.ResourceAccount, Child: domain.ResourceMealRecord, Match: anyOf("account_id")},
		{Name: "account_comments", Parent: domain.ResourceAccount, Child: domain.ResourceComment, Match: anyOf("account_id")},
		{
			Name: "account_edges", Parent: domain.ResourceAccount, Child: domain.ResourceFriendEdge,
			Match: func(ids any) sq.Sqlizer {
				return sq.Or{sq.Expr("from_id = ANY(?)", ids), sq.Expr("to_id = ANY(?)", ids)}
			},
		},
		{Name: "account_profile", Parent: domain.ResourceAccount, Child: domain.ResourceProfile, Match: anyOf("account_id")},
		{Name: "account_tokens", Parent: domain.ResourceAccount, Child: domain.ResourceRefreshToken, Match: anyOf("account_id")},

		{
			Name: "food_items", Parent: domain.ResourceFood, Child: domain.ResourceMealItem,
			Match: anyOf("food_id"), Action: ActionNullify, Column: "food_id",
		},
	}
}

// DefaultBootstraps returns the create-time rules.
func DefaultBootstraps() []Bootstrap {
	return []Bootstrap{
		{
			Name:   "self_edge",
			Parent: domain.ResourceAccount,
			Insert: func(id uuid.UUID) sq.InsertBuilder {
				return postgres.Builder.Insert("friend_edges").
					Columns("id", "from_id", "to_id", "status").
					Values(uuid.New(), id, id, string(domain.EdgeAccepted))
			},
		},
	}
}
