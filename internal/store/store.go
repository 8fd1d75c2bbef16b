// Package store holds the authoritative in-memory AppState and the named
// transitions that mutate it. Transitions are total: an invalid target is a
// no-op, never a panic or an error. The store is the single writer of the
// state document; everything else observes snapshots.
package store

import (
	"sync"
	"time"

	"platechat/internal/domain"
	"platechat/internal/logger"
)

// Listener receives a state snapshot after every accepted transition.
// Listeners run synchronously on the mutating call and get their own copy.
type Listener func(domain.AppState)

// Option configures the store.
type Option func(*Store)

// WithSink attaches a write-behind persistence sink. The store never waits
// on it.
func WithSink(sink domain.StateSink) Option {
	return func(s *Store) { s.sink = sink }
}

// WithClock overrides the time source. Tests use this to make updatedAt
// ordering deterministic.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Store is the explicit state object constructed once at process start and
// passed by handle to whatever drives the UI. No ambient singleton.
type Store struct {
	mu        sync.RWMutex
	state     domain.AppState
	listeners []Listener
	sink      domain.StateSink
	log       *logger.Logger
	now       func() time.Time
}

// New creates a store seeded with the given state (normally the gateway's
// loaded document).
func New(initial domain.AppState, log *logger.Logger, opts ...Option) *Store {
	s := &Store{
		state: initial.Clone(),
		log:   log,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns a deep copy of the current state.
func (s *Store) State() domain.AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Subscribe registers a listener and returns its unsubscribe function.
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.listeners = append(s.listeners, l)
	idx := len(s.listeners) - 1
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.listeners[idx] = nil
	}
}

// commit installs the new state, then fans out snapshots to listeners and
// the persistence sink. Callers hold the write lock.
func (s *Store) commit(next domain.AppState) {
	s.state = next

	for _, l := range s.listeners {
		if l != nil {
			l(next.Clone())
		}
	}
	if s.sink != nil {
		s.sink.Enqueue(next.Clone())
	}
}
