package persist

import (
	"context"
	"sync"
	"time"

	"platechat/internal/domain"
	"platechat/internal/logger"
)

// Compile-time interface check.
var _ domain.StateSink = (*Saver)(nil)

// SaverOption configures the saver.
type SaverOption func(*Saver)

// WithSaveTimeout bounds a single background save.
func WithSaveTimeout(d time.Duration) SaverOption {
	return func(s *Saver) { s.saveTimeout = d }
}

// Saver is the write-behind worker between the store and the gateway: a
// single-slot mailbox where the latest snapshot wins, drained by one
// background goroutine. Store transitions complete in memory immediately;
// durability follows after the fact. Worst case on a crash is the loss of
// the most recent unpersisted snapshot.
type Saver struct {
	gateway     *Gateway
	log         *logger.Logger
	saveTimeout time.Duration

	mu      sync.Mutex
	pending *domain.AppState
	kick    chan struct{}
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewSaver creates a write-behind saver over the gateway.
func NewSaver(gateway *Gateway, log *logger.Logger, opts ...SaverOption) *Saver {
	s := &Saver{
		gateway:     gateway,
		log:         log,
		saveTimeout: 5 * time.Second,
		kick:        make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Enqueue replaces the pending snapshot. Never blocks the caller.
func (s *Saver) Enqueue(state domain.AppState) {
	s.mu.Lock()
	s.pending = &state
	s.mu.Unlock()

	select {
	case s.kick <- struct{}{}:
	default: // a drain is already scheduled
	}
}

// Start begins the background drain loop. Non-blocking.
func (s *Saver) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		s.log.Warn("saver already running")
		return
	}

	childCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.running = true
	s.done = make(chan struct{})

	go s.loop(childCtx)
	s.log.Debug("saver started")
}

// Stop shuts the loop down and flushes any pending snapshot synchronously
// so a clean exit never loses the last transition.
func (s *Saver) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	cancel := s.cancel
	done := s.done
	s.mu.Unlock()

	cancel()
	<-done
	s.flush()
	s.log.Debug("saver stopped")
}

// loop drains the mailbox until cancelled.
func (s *Saver) loop(ctx context.Context) {
	defer close(s.done)
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.kick:
			s.flush()
		}
	}
}

// flush writes the pending snapshot, if any. Failures are logged and
// dropped, not retried: the next transition enqueues a fresher snapshot
// anyway.
func (s *Saver) flush() {
	s.mu.Lock()
	state := s.pending
	s.pending = nil
	s.mu.Unlock()

	if state == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.saveTimeout)
	defer cancel()

	if err := s.gateway.Save(ctx, *state); err != nil {
		s.log.Error("saver: %v", err)
	}
}
