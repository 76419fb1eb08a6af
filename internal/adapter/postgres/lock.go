package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/vitalog-backend/internal/domain"
)

// ErrNoTx is returned when a lock is requested outside a transaction.
// Row and advisory locks taken here are released at commit or rollback, so
// taking them without a transaction would release them immediately.
var ErrNoTx = errors.New("lock requested outside a transaction")

// Lock kinds reported to the wait observer.
const (
	LockKindRow   = "row"
	LockKindShare = "share"
	LockKindPair  = "pair"
)

// WaitObserver receives the time spent acquiring each lock.
type WaitObserver interface {
	ObserveLockWait(kind string, waited time.Duration, acquired bool)
}

type lockTarget struct {
	table    string
	idCol    string
	ownerCol string
}

// Only these tables may be locked; the names are spliced into SQL.
var lockTargets = map[domain.ResourceKind]lockTarget{
	domain.ResourceAccount:     {table: "accounts", idCol: "id", ownerCol: "id"},
	domain.ResourceProfile:     {table: "profiles", idCol: "account_id", ownerCol: "account_id"},
	domain.ResourceSleepRecord: {table: "sleep_records", idCol: "id", ownerCol: "account_id"},
	domain.ResourceSportRecord: {table: "sport_records", idCol: "id", ownerCol: "account_id"},
	domain.ResourceMealRecord:  {table: "meal_records", idCol: "id", ownerCol: "account_id"},
	domain.ResourceComment:     {table: "activity_comments", idCol: "id", ownerCol: "account_id"},
}

// Locker is the lock manager of the mutation protocol. All methods must be
// called with a context carrying a TxManager transaction.
type Locker struct {
	db          Querier
	rowTimeout  time.Duration
	pairTimeout time.Duration
	observer    WaitObserver
}

// LockerOption configures a Locker.
type LockerOption func(*Locker)

// WithWaitObserver reports lock wait durations to o.
func WithWaitObserver(o WaitObserver) LockerOption {
	return func(l *Locker) { l.observer = o }
}

// NewLocker creates a Locker. rowTimeout bounds row lock waits and
// pairTimeout bounds named pair lock waits.
func NewLocker(db Querier, rowTimeout, pairTimeout time.Duration, opts ...LockerOption) *Locker {
	l := &Locker{db: db, rowTimeout: rowTimeout, pairTimeout: pairTimeout}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LockOwned takes an exclusive row lock on the resource and returns its
// owner. Returns domain.ErrNotFound if the row does not exist and
// domain.ErrLockTimeout if the lock is not granted within the row timeout.
func (l *Locker) LockOwned(ctx context.Context, kind domain.ResourceKind, id uuid.UUID) (uuid.UUID, error) {
	return l.lockOwner(ctx, kind, id, "FOR UPDATE", LockKindRow)
}

// ShareOwned takes a shared row lock on the resource and returns its owner.
// A concurrent LockOwned on the same row waits until the holder commits.
func (l *Locker) ShareOwned(ctx context.Context, kind domain.ResourceKind, id uuid.UUID) (uuid.UUID, error) {
	return l.lockOwner(ctx, kind, id, "FOR SHARE", LockKindShare)
}

func (l *Locker) lockOwner(ctx context.Context, kind domain.ResourceKind, id uuid.UUID, mode, lockKind string) (uuid.UUID, error) {
	target, ok := lockTargets[kind]
	if !ok {
		return uuid.Nil, fmt.Errorf("lock %s: unsupported resource kind", kind)
	}
	q, err := l.txQuerier(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	if err := setLockTimeout(ctx, q, l.rowTimeout); err != nil {
		return uuid.Nil, err
	}

	sql := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1 %s", target.ownerCol, target.table, target.idCol, mode)

	start := time.Now()
	var owner uuid.UUID
	err = q.QueryRow(ctx, sql, id).Scan(&owner)
	l.observe(lockKind, start, err)
	if err != nil {
		return uuid.Nil, mapLockError(err, string(kind), id)
	}
	return owner, nil
}

// OwnerOf returns the owner of a resource without locking it. It may be
// called outside a transaction.
func (l *Locker) OwnerOf(ctx context.Context, kind domain.ResourceKind, id uuid.UUID) (uuid.UUID, error) {
	target, ok := lockTargets[kind]
	if !ok {
		return uuid.Nil, fmt.Errorf("owner of %s: unsupported resource kind", kind)
	}
	sql := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", target.ownerCol, target.table, target.idCol)

	var owner uuid.UUID
	if err := QuerierFromCtx(ctx, l.db).QueryRow(ctx, sql, id).Scan(&owner); err != nil {
		return uuid.Nil, MapError(err, string(kind), id)
	}
	return owner, nil
}

// LockEdge takes an exclusive row lock on a friend edge and returns it.
func (l *Locker) LockEdge(ctx context.Context, id uuid.UUID) (*domain.FriendEdge, error) {
	q, err := l.txQuerier(ctx)
	if err != nil {
		return nil, err
	}
	if err := setLockTimeout(ctx, q, l.rowTimeout); err != nil {
		return nil, err
	}

	start := time.Now()
	var e domain.FriendEdge
	var status string
	err = q.QueryRow(ctx,
		`SELECT id, from_id, to_id, status, created_at, updated_at
		 FROM friend_edges WHERE id = $1 FOR UPDATE`, id,
	).Scan(&e.ID, &e.FromID, &e.ToID, &status, &e.CreatedAt, &e.UpdatedAt)
	l.observe(LockKindRow, start, err)
	if err != nil {
		return nil, mapLockError(err, string(domain.ResourceFriendEdge), id)
	}
	e.Status = domain.EdgeStatus(status)
	return &e, nil
}

// LockPair takes the named lock for the unordered pair (a, b). It is held
// until the enclosing transaction ends.
func (l *Locker) LockPair(ctx context.Context, a, b uuid.UUID) error {
	q, err := l.txQuerier(ctx)
	if err != nil {
		return err
	}
	if err := setLockTimeout(ctx, q, l.pairTimeout); err != nil {
		return err
	}

	key := domain.PairLockKey(a, b)
	start := time.Now()
	_, err = q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, key)
	l.observe(LockKindPair, start, err)
	if err != nil {
		return mapLockError(err, "pair lock", key)
	}
	return nil
}

func (l *Locker) txQuerier(ctx context.Context) (Querier, error) {
	if !InTx(ctx) {
		return nil, ErrNoTx
	}
	return QuerierFromCtx(ctx, l.db), nil
}

func (l *Locker) observe(kind string, start time.Time, err error) {
	if l.observer == nil {
		return
	}
	l.observer.ObserveLockWait(kind, time.Since(start), err == nil)
}

// setLockTimeout bounds lock waits for the rest of the transaction.
func setLockTimeout(ctx context.Context, q Querier, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	_, err := q.Exec(ctx, `SELECT set_config('lock_timeout', $1, true)`, fmt.Sprintf("%dms", d.Milliseconds()))
	if err != nil {
		return fmt.Errorf("set lock_timeout: %w", err)
	}
	return nil
}

// mapLockError additionally treats a cancelled statement as a lock timeout:
// a statement_timeout firing while waiting for the lock surfaces as 57014.
func mapLockError(err error, entity string, id any) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == codeQueryCanceled {
		return fmt.Errorf("%s %v: %w", entity, id, domain.ErrLockTimeout)
	}
	return MapError(err, entity, id)
}
