// Package persist serializes AppState to a single opaque document in a
// key-value store and owns the load-on-start / save-on-change timing.
// Persistence is full-document overwrite: no partial updates, no schema
// migrations. Older documents merge shallowly against defaults.
package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"platechat/internal/domain"
	"platechat/internal/logger"
)

// StateKey is the single document key. Ancillary flags must use other keys.
const StateKey = "platechat/state"

// GatewayOption configures the gateway.
type GatewayOption func(*Gateway)

// WithStateKey overrides the document key (tests).
func WithStateKey(key string) GatewayOption {
	return func(g *Gateway) { g.key = key }
}

// Gateway moves AppState across the persistence boundary. It never mutates
// the states it is given, only serializes snapshots.
type Gateway struct {
	kv  domain.KeyValueStore
	key string
	log *logger.Logger
}

// NewGateway creates a gateway over the given key-value store.
func NewGateway(kv domain.KeyValueStore, log *logger.Logger, opts ...GatewayOption) *Gateway {
	g := &Gateway{kv: kv, key: StateKey, log: log}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Load reads the state document. Any read or decode failure yields the
// documented default state — never an error. Documents written by an older
// shape decode over the defaults, so fields the old shape lacked keep sane
// values.
func (g *Gateway) Load(ctx context.Context) domain.AppState {
	raw, err := g.kv.Get(ctx, g.key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			g.log.Info("persist: no saved state, starting fresh")
		} else {
			g.log.Error("persist: load failed, using defaults: %v", err)
		}
		return domain.DefaultState()
	}

	state := domain.DefaultState()
	if err := json.Unmarshal(raw, &state); err != nil {
		g.log.Error("persist: corrupt state document, using defaults: %v", err)
		return domain.DefaultState()
	}

	normalize(&state)
	g.log.Debug("persist: loaded state (%d sessions, %d todos, %d saved recipes)",
		len(state.Sessions), len(state.Todos), len(state.SavedRecipes))
	return state
}

// Save writes one full snapshot. Best-effort: the caller logs and drops
// failures; the next successful save still carries the correct in-memory
// state.
func (g *Gateway) Save(ctx context.Context, state domain.AppState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("persist: marshal state: %w", err)
	}
	if err := g.kv.Set(ctx, g.key, raw); err != nil {
		return fmt.Errorf("persist: write state: %w", err)
	}
	return nil
}

// normalize repairs fields a hand-edited or legacy document can null out.
func normalize(state *domain.AppState) {
	if state.Sessions == nil {
		state.Sessions = []domain.ChatSession{}
	}
	for i := range state.Sessions {
		if state.Sessions[i].Messages == nil {
			state.Sessions[i].Messages = []domain.Message{}
		}
	}
	if state.Todos == nil {
		state.Todos = []domain.TodoItem{}
	}
	if state.SavedRecipes == nil {
		state.SavedRecipes = []domain.Recipe{}
	}
	if state.SelectedRegion == "" {
		state.SelectedRegion = domain.RegionFilterAll
	}
	// A dangling current-session pointer is cleared rather than resolved;
	// the store's delete transition is the only place fallback applies.
	if state.CurrentSessionID != "" && state.Session(state.CurrentSessionID) == nil {
		state.CurrentSessionID = ""
	}
}
