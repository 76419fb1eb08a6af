package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/vitalog-backend/internal/domain"
)

// Constraint names that carry a domain meaning beyond "already exists".
const (
	constraintActivePair = "friend_edges_active_pair_uq"
	constraintUsername   = "accounts_username_uq"
	constraintEmail      = "accounts_email_uq"
)

// PostgreSQL error codes handled by MapError.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeLockNotAvailable    = "55P03"
	codeDeadlockDetected    = "40P01"
	codeQueryCanceled       = "57014"
)

// MapError converts pgx/pgconn errors to domain errors.
// context.DeadlineExceeded and context.Canceled are NOT mapped; they pass through.
func MapError(err error, entity string, id any) error {
	if err == nil {
		return nil
	}

	label := entity
	if id != nil {
		label = fmt.Sprintf("%s %v", entity, id)
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", label, err)
	}

	// pgx.ErrNoRows → domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", label, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			switch pgErr.ConstraintName {
			case constraintActivePair:
				return fmt.Errorf("%s: %w", label, domain.ErrDuplicateRelationship)
			case constraintUsername:
				return fmt.Errorf("%s: %w", label, domain.ErrUsernameTaken)
			case constraintEmail:
				return fmt.Errorf("%s: %w", label, domain.ErrEmailTaken)
			}
			return fmt.Errorf("%s (%s): %w", label, pgErr.ConstraintName, domain.ErrAlreadyExists)
		case codeForeignKeyViolation:
			return fmt.Errorf("%s: %w", label, domain.ErrNotFound)
		case codeCheckViolation:
			return fmt.Errorf("%s (%s): %w", label, pgErr.ConstraintName, domain.ErrValidation)
		case codeLockNotAvailable, codeDeadlockDetected:
			return fmt.Errorf("%s: %w", label, domain.ErrLockTimeout)
		}
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s: %w", label, err)
}

// IsConstraint reports whether err is a unique violation of the named constraint.
func IsConstraint(err error, name string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation && pgErr.ConstraintName == name
}

// IsUsernameTaken reports whether err is a duplicate username on insert,
// before or after MapError.
func IsUsernameTaken(err error) bool {
	return errors.Is(err, domain.ErrUsernameTaken) || IsConstraint(err, constraintUsername)
}

// IsEmailTaken reports whether err is a duplicate email on insert, before or
// after MapError.
func IsEmailTaken(err error) bool {
	return errors.Is(err, domain.ErrEmailTaken) || IsConstraint(err, constraintEmail)
}
