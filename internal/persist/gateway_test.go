package persist

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"platechat/internal/domain"
	"platechat/internal/logger"
)

func newTestGateway(t *testing.T) *Gateway {
	t.Helper()
	log := logger.New(logger.LevelOff, nil)
	kv, err := NewFileKV(t.TempDir(), log)
	if err != nil {
		t.Fatalf("filekv: %v", err)
	}
	t.Cleanup(func() { kv.Close() })
	return NewGateway(kv, log)
}

func sampleState() domain.AppState {
	now := time.Date(2026, 8, 1, 18, 30, 0, 0, time.UTC)
	state := domain.DefaultState()
	state.Sessions = []domain.ChatSession{{
		ID:    "s1",
		Title: "Friday dinner",
		Messages: []domain.Message{
			{ID: "m1", Role: domain.RoleUser, Content: "pasta?", Timestamp: now},
			{ID: "m2", Role: domain.RoleAssistant, Content: "Sure!", Timestamp: now, Recipe: &domain.Recipe{
				ID:           "r1",
				Name:         "Cacio e Pepe",
				Region:       domain.RegionItalian,
				Cuisine:      "Italian",
				Servings:     2,
				Difficulty:   domain.DifficultyMedium,
				Ingredients:  []domain.Ingredient{{Name: "spaghetti", Amount: "200", Unit: "g"}},
				Instructions: []string{"Boil.", "Toss."},
				Tags:         []string{"quick"},
			}},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}}
	state.CurrentSessionID = "s1"
	state.Todos = []domain.TodoItem{{ID: "t1", Text: "buy pecorino", Category: domain.TodoShopping, RecipeID: "r1"}}
	state.SelectedRegion = domain.RegionFilter(domain.RegionItalian)
	return state
}

func TestGatewayRoundTrip(t *testing.T) {
	g := newTestGateway(t)
	ctx := context.Background()

	want := sampleState()
	if err := g.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got := g.Load(ctx)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\n got: %+v\nwant: %+v", got, want)
	}
}

func TestGatewayLoadMissing(t *testing.T) {
	g := newTestGateway(t)

	got := g.Load(context.Background())
	want := domain.DefaultState()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("missing document should load defaults, got %+v", got)
	}
}

func TestGatewayLoadCorrupt(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	kv, err := NewFileKV(t.TempDir(), log)
	if err != nil {
		t.Fatalf("filekv: %v", err)
	}
	g := NewGateway(kv, log)
	ctx := context.Background()

	if err := kv.Set(ctx, StateKey, []byte("{{{ not json")); err != nil {
		t.Fatalf("set: %v", err)
	}

	got := g.Load(ctx)
	if !reflect.DeepEqual(got, domain.DefaultState()) {
		t.Errorf("corrupt document should load defaults, got %+v", got)
	}
}

// Documents written before a field existed decode over the defaults, so
// the missing field keeps a sane value instead of zeroing out.
func TestGatewayLoadOldDocument(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	kv, err := NewFileKV(t.TempDir(), log)
	if err != nil {
		t.Fatalf("filekv: %v", err)
	}
	g := NewGateway(kv, log)
	ctx := context.Background()

	old := `{"sessions": [], "todos": [{"id": "t1", "text": "x", "category": "other"}], "savedRecipes": []}`
	if err := kv.Set(ctx, StateKey, []byte(old)); err != nil {
		t.Fatalf("set: %v", err)
	}

	got := g.Load(ctx)
	if got.SelectedRegion != domain.RegionFilterAll {
		t.Errorf("selectedRegion should default to all, got %q", got.SelectedRegion)
	}
	if len(got.Todos) != 1 {
		t.Errorf("todos from the old document must survive, got %d", len(got.Todos))
	}
}

func TestGatewayLoadNormalizes(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	kv, err := NewFileKV(t.TempDir(), log)
	if err != nil {
		t.Fatalf("filekv: %v", err)
	}
	g := NewGateway(kv, log)
	ctx := context.Background()

	// Nulled-out lists and a dangling current-session pointer.
	doc := `{"sessions": null, "currentSessionId": "ghost", "todos": null, "savedRecipes": null, "selectedRegion": ""}`
	if err := kv.Set(ctx, StateKey, []byte(doc)); err != nil {
		t.Fatalf("set: %v", err)
	}

	got := g.Load(ctx)
	if got.Sessions == nil || got.Todos == nil || got.SavedRecipes == nil {
		t.Error("nulled lists must come back as empty slices")
	}
	if got.CurrentSessionID != "" {
		t.Errorf("dangling current session should be cleared, got %q", got.CurrentSessionID)
	}
	if got.SelectedRegion != domain.RegionFilterAll {
		t.Errorf("empty region should reset to all, got %q", got.SelectedRegion)
	}
}

func TestSaverWriteBehind(t *testing.T) {
	g := newTestGateway(t)
	log := logger.New(logger.LevelOff, nil)
	saver := NewSaver(g, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	saver.Start(ctx)

	state := sampleState()
	saver.Enqueue(domain.DefaultState())
	saver.Enqueue(state) // latest wins

	// Stop flushes synchronously, so the last snapshot must be durable now.
	saver.Stop()

	got := g.Load(context.Background())
	if got.CurrentSessionID != "s1" {
		t.Errorf("expected the latest snapshot to be persisted, got %+v", got)
	}
}

func TestSaverStopWithoutStart(t *testing.T) {
	g := newTestGateway(t)
	saver := NewSaver(g, logger.New(logger.LevelOff, nil))
	saver.Stop() // must not panic or block
}

func TestSaverEnqueueNeverBlocks(t *testing.T) {
	g := newTestGateway(t)
	saver := NewSaver(g, logger.New(logger.LevelOff, nil))

	// No loop running: many enqueues must still return immediately.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			saver.Enqueue(domain.DefaultState())
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Enqueue blocked")
	}
}

func TestFileKV(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	kv, err := NewFileKV(t.TempDir(), log)
	if err != nil {
		t.Fatalf("filekv: %v", err)
	}
	ctx := context.Background()

	if _, err := kv.Get(ctx, "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := kv.Set(ctx, "platechat/state", []byte("hello")); err != nil {
		t.Fatalf("set: %v", err)
	}
	raw, err := kv.Get(ctx, "platechat/state")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(raw) != "hello" {
		t.Errorf("got %q", raw)
	}

	if err := kv.Delete(ctx, "platechat/state"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := kv.Get(ctx, "platechat/state"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	// Deleting a missing key is fine.
	if err := kv.Delete(ctx, "platechat/state"); err != nil {
		t.Fatalf("delete missing: %v", err)
	}
}
