// Package cache holds derived read views and drops them when a mutation
// commits.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/vitalog-backend/internal/domain"
)

// Cache events reported to the observer.
const (
	EventHit        = "hit"
	EventMiss       = "miss"
	EventInvalidate = "invalidate"
	EventPurge      = "purge"
)

// Observer receives cache events.
type Observer interface {
	ObserveCache(event string, n int)
}

// Store is an in-process LRU of derived views with a TTL. Concurrent loads
// of the same key share one call.
type Store struct {
	lru      *expirable.LRU[string, any]
	group    singleflight.Group
	observer Observer
	log      *slog.Logger

	// mu orders loads finishing against invalidations. A load whose key was
	// invalidated while it ran returns its value but does not store it.
	mu       sync.Mutex
	inflight map[string][]*ticket
}

type ticket struct{ stale bool }

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithObserver reports hits, misses and invalidations to o.
func WithObserver(o Observer) StoreOption {
	return func(s *Store) { s.observer = o }
}

// NewStore creates a Store holding at most size entries for ttl each.
func NewStore(logger *slog.Logger, size int, ttl time.Duration, opts ...StoreOption) *Store {
	s := &Store{
		lru:      expirable.NewLRU[string, any](size, nil, ttl),
		log:      logger.With("component", "cache"),
		inflight: make(map[string][]*ticket),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetOrLoad returns the cached value for key, calling load on a miss.
// Errors are not cached.
func (s *Store) GetOrLoad(ctx context.Context, key string, load func(ctx context.Context) (any, error)) (any, error) {
	if v, ok := s.lru.Get(key); ok {
		s.observe(EventHit, 1)
		return v, nil
	}
	s.observe(EventMiss, 1)

	v, err, _ := s.group.Do(key, func() (any, error) {
		t := s.begin(key)
		v, err := load(ctx)
		s.finish(key, t, v, err == nil)
		if err != nil {
			return nil, err
		}
		return v, nil
	})
	return v, err
}

func (s *Store) begin(key string) *ticket {
	t := &ticket{}
	s.mu.Lock()
	s.inflight[key] = append(s.inflight[key], t)
	s.mu.Unlock()
	return t
}

// finish stores v unless key was invalidated after begin.
func (s *Store) finish(key string, t *ticket, v any, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tickets := s.inflight[key]
	for i, other := range tickets {
		if other == t {
			tickets = append(tickets[:i], tickets[i+1:]...)
			break
		}
	}
	if len(tickets) == 0 {
		delete(s.inflight, key)
	} else {
		s.inflight[key] = tickets
	}

	if ok && !t.stale {
		s.lru.Add(key, v)
	}
}

// Invalidate drops every key the scopes make stale.
func (s *Store) Invalidate(ctx context.Context, scopes ...domain.Scope) error {
	removed := 0
	for _, scope := range scopes {
		keys, all := Keys(scope)
		if all {
			s.Purge(ctx)
			continue
		}
		s.mu.Lock()
		for _, k := range keys {
			for _, t := range s.inflight[k] {
				t.stale = true
			}
			// New callers must not join a load that started before the
			// commit.
			s.group.Forget(k)
			if s.lru.Remove(k) {
				removed++
			}
		}
		s.mu.Unlock()
	}
	s.observe(EventInvalidate, removed)
	return nil
}

// Purge drops every entry.
func (s *Store) Purge(ctx context.Context) {
	s.mu.Lock()
	for key, tickets := range s.inflight {
		for _, t := range tickets {
			t.stale = true
		}
		s.group.Forget(key)
	}
	n := s.lru.Len()
	s.lru.Purge()
	s.mu.Unlock()
	s.observe(EventPurge, n)
	s.log.DebugContext(ctx, "cache purged", slog.Int("entries", n))
}

// Len returns the number of live entries.
func (s *Store) Len() int { return s.lru.Len() }

func (s *Store) observe(event string, n int) {
	if s.observer != nil {
		s.observer.ObserveCache(event, n)
	}
}

// Loader is implemented by Store.
type Loader interface {
	GetOrLoad(ctx context.Context, key string, load func(ctx context.Context) (any, error)) (any, error)
}

// Load is a typed wrapper around Loader.GetOrLoad. A nil Loader calls fn
// directly.
func Load[T any](ctx context.Context, l Loader, key string, fn func(ctx context.Context) (T, error)) (T, error) {
	if l == nil {
		return fn(ctx)
	}
	v, err := l.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return fn(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	out, ok := v.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("cache %s: unexpected type %T", key, v)
	}
	return out, nil
}
