// Package mutation runs every write as one transaction that moves through
// lock, guard, write and cascade phases and ends in commit or rollback.
package mutation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/heartmarshall/vitalog-backend/internal/domain"
)

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Invalidator is notified of committed changes.
type Invalidator interface {
	Invalidate(ctx context.Context, scopes ...domain.Scope) error
}

// Recorder observes finished mutations.
type Recorder interface {
	ObserveMutation(op string, status domain.Status, reached Phase, elapsed time.Duration)
}

// Coordinator executes mutations.
type Coordinator struct {
	tx          txRunner
	invalidator Invalidator
	recorder    Recorder
	log         *slog.Logger
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithInvalidator sets the hook called with a mutation's scopes after commit.
func WithInvalidator(inv Invalidator) Option {
	return func(c *Coordinator) { c.invalidator = inv }
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(c *Coordinator) { c.recorder = r }
}

// NewCoordinator creates a Coordinator running transactions through tx.
func NewCoordinator(logger *slog.Logger, tx txRunner, opts ...Option) *Coordinator {
	c := &Coordinator{
		tx:  tx,
		log: logger.With("component", "mutation"),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Mutation describes one write. Every step is optional except Apply. Steps
// run in order inside a single transaction; a non-nil error from any of them
// rolls the transaction back and is mapped to a status with domain.StatusOf.
type Mutation[T any] struct {
	Op string

	// Validate checks the input before a transaction is opened.
	Validate func() error
	// Lock acquires row or pair locks and loads the facts Guard needs.
	Lock func(ctx context.Context) error
	// Guard checks the requester's rights against the locked facts.
	Guard func(ctx context.Context) error
	// Apply performs the write.
	Apply func(ctx context.Context) (T, error)
	// Cascade fires dependent-row rules for the written value.
	Cascade func(ctx context.Context, value T) error
	// Scopes lists what changed. Called only after commit.
	Scopes func(value T) []domain.Scope
}

// Outcome is the result of Run. Value is the zero value unless Status is
// StatusSuccess.
type Outcome[T any] struct {
	Status  domain.Status
	Value   T
	Message string
	// Fields lists per-field problems of an INVALID_INPUT outcome.
	Fields []domain.FieldError
	// Reached is the last phase completed before commit or rollback.
	Reached Phase
}

// OK reports whether the mutation committed.
func (o Outcome[T]) OK() bool { return o.Status == domain.StatusSuccess }

// Err returns nil for a committed mutation and a *domain.StatusError
// otherwise.
func (o Outcome[T]) Err() error {
	if o.OK() {
		return nil
	}
	return &domain.StatusError{Status: o.Status, Reason: o.Message}
}

// Run executes m through c.
func Run[T any](ctx context.Context, c *Coordinator, m Mutation[T]) Outcome[T] {
	start := time.Now()

	var (
		value   T
		reached = PhaseStart
	)

	var err error
	if m.Validate != nil {
		err = m.Validate()
	}
	if err == nil {
		err = c.tx.RunInTx(ctx, func(ctx context.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					c.log.ErrorContext(ctx, "mutation panicked",
						slog.String("op", m.Op),
						slog.String("phase", reached.String()),
						slog.Any("panic", r),
						slog.String("stack", string(debug.Stack())),
					)
					err = fmt.Errorf("%s: panic: %v", m.Op, r)
				}
			}()

			if m.Lock != nil {
				if err := m.Lock(ctx); err != nil {
					return err
				}
			}
			reached = PhaseLockAcquired

			if m.Guard != nil {
				if err := m.Guard(ctx); err != nil {
					return err
				}
			}
			reached = PhaseGuardEvaluated

			v, err := m.Apply(ctx)
			if err != nil {
				return err
			}
			value = v
			reached = PhaseWriteApplied

			if m.Cascade != nil {
				if err := m.Cascade(ctx, value); err != nil {
					return err
				}
			}
			reached = PhaseCascadeFired
			return nil
		})
	}

	status := domain.StatusOf(err)
	out := Outcome[T]{Status: status, Reached: reached}
	if err != nil {
		out.Message = message(status, err)
		if ve, ok := asValidationError(err); ok {
			out.Fields = ve.Errors
		}
		c.logFailure(ctx, m.Op, status, reached, err)
	} else {
		out.Value = value
		out.Reached = PhaseCommit
		if m.Scopes != nil && c.invalidator != nil {
			if scopes := m.Scopes(value); len(scopes) > 0 {
				if ierr := c.invalidator.Invalidate(ctx, scopes...); ierr != nil {
					c.log.WarnContext(ctx, "cache invalidation failed",
						slog.String("op", m.Op),
						slog.String("error", ierr.Error()),
					)
				}
			}
		}
	}

	if c.recorder != nil {
		final := PhaseCommit
		if err != nil {
			final = PhaseRollback
		}
		c.recorder.ObserveMutation(m.Op, status, final, time.Since(start))
	}
	return out
}

// message returns the client-facing text for a failed mutation. Internal
// errors are not exposed.
func message(status domain.Status, err error) string {
	if status == domain.StatusInternalFailure {
		return "internal error"
	}
	if se, ok := asStatusError(err); ok && se.Reason != "" {
		return se.Reason
	}
	if ve, ok := asValidationError(err); ok {
		return ve.Error()
	}
	return status.String()
}

func (c *Coordinator) logFailure(ctx context.Context, op string, status domain.Status, reached Phase, err error) {
	attrs := []any{
		slog.String("op", op),
		slog.String("status", status.String()),
		slog.String("phase", reached.String()),
		slog.String("error", err.Error()),
	}
	switch status {
	case domain.StatusInternalFailure:
		c.log.ErrorContext(ctx, "mutation rolled back", attrs...)
	case domain.StatusLockTimeout:
		c.log.WarnContext(ctx, "mutation rolled back", attrs...)
	default:
		c.log.DebugContext(ctx, "mutation rejected", attrs...)
	}
}

func asStatusError(err error) (*domain.StatusError, bool) {
	var se *domain.StatusError
	ok := errors.As(err, &se)
	return se, ok
}

func asValidationError(err error) (*domain.ValidationError, bool) {
	var ve *domain.ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}
