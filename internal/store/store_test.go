package store

import (
	"strings"
	"testing"
	"time"

	"platechat/internal/domain"
	"platechat/internal/logger"
)

func newTestStore(opts ...Option) *Store {
	return New(domain.DefaultState(), logger.New(logger.LevelOff, nil), opts...)
}

func TestCreateSession(t *testing.T) {
	s := newTestStore()

	id := s.CreateSession("Dinner planning")
	state := s.State()

	if len(state.Sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(state.Sessions))
	}
	if state.CurrentSessionID != id {
		t.Error("new session must become current")
	}
	if state.Sessions[0].Title != "Dinner planning" {
		t.Errorf("title: got %q", state.Sessions[0].Title)
	}

	// Empty title defaults to a date string.
	s.CreateSession("")
	state = s.State()
	if strings.TrimSpace(state.Sessions[1].Title) == "" {
		t.Error("empty title should default to a date string")
	}
}

func TestAppendMessageSetsTitle(t *testing.T) {
	s := newTestStore()
	id := s.CreateSession("")

	long := "What can I make with leftover chicken, rice, and half a bag of spinach?"
	if _, ok := s.AppendMessage(id, domain.RoleUser, long, nil); !ok {
		t.Fatal("append rejected")
	}

	title := s.State().Sessions[0].Title
	if title == "" || len([]rune(title)) > 45 {
		t.Errorf("title should be a short excerpt, got %q (%d runes)", title, len([]rune(title)))
	}
	if !strings.HasPrefix(title, "What can I make") {
		t.Errorf("title should start with the message text, got %q", title)
	}

	// A second user message must not rename the session.
	s.AppendMessage(id, domain.RoleAssistant, "Fried rice!", nil)
	s.AppendMessage(id, domain.RoleUser, "Anything else?", nil)
	if got := s.State().Sessions[0].Title; got != title {
		t.Errorf("title changed on later message: %q -> %q", title, got)
	}
}

func TestAppendMessageUnknownSession(t *testing.T) {
	s := newTestStore()
	s.CreateSession("a")
	before := s.State()

	msg, ok := s.AppendMessage("no-such-id", domain.RoleUser, "hello", nil)
	if ok {
		t.Fatal("append to unknown session must be rejected")
	}
	if msg.ID != "" {
		t.Error("rejected append must return a zero message")
	}

	after := s.State()
	if len(after.Sessions[0].Messages) != len(before.Sessions[0].Messages) {
		t.Error("rejected append mutated state")
	}
}

func TestDeleteSessionFallsBackToMostRecent(t *testing.T) {
	tick := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time {
		tick = tick.Add(time.Minute)
		return tick
	}
	s := newTestStore(WithClock(clock))

	a := s.CreateSession("a")
	b := s.CreateSession("b")
	c := s.CreateSession("c")

	// Touch b so it has the greatest updatedAt.
	s.AppendMessage(b, domain.RoleUser, "bump", nil)

	s.DeleteSession(c) // c was current
	state := s.State()
	if state.CurrentSessionID != b {
		t.Errorf("expected fallback to most recently updated (b), got %q", state.CurrentSessionID)
	}

	s.DeleteSession(b)
	if got := s.State().CurrentSessionID; got != a {
		t.Errorf("expected fallback to a, got %q", got)
	}

	s.DeleteSession(a)
	state = s.State()
	if state.CurrentSessionID != "" {
		t.Errorf("expected no current session, got %q", state.CurrentSessionID)
	}
	if len(state.Sessions) != 0 {
		t.Errorf("expected no sessions, got %d", len(state.Sessions))
	}
}

func TestDeleteNonCurrentSessionKeepsCurrent(t *testing.T) {
	s := newTestStore()
	a := s.CreateSession("a")
	b := s.CreateSession("b")

	s.DeleteSession(a)
	if got := s.State().CurrentSessionID; got != b {
		t.Errorf("current should be untouched, got %q", got)
	}
}

func TestSetCurrentSession(t *testing.T) {
	s := newTestStore()
	a := s.CreateSession("a")
	s.CreateSession("b")

	s.SetCurrentSession(a)
	if got := s.State().CurrentSessionID; got != a {
		t.Errorf("got %q, want %q", got, a)
	}

	// Unknown id is a no-op.
	s.SetCurrentSession("bogus")
	if got := s.State().CurrentSessionID; got != a {
		t.Errorf("unknown id changed current to %q", got)
	}
}

func TestSaveRecipeIdempotent(t *testing.T) {
	s := newTestStore()
	recipe := domain.Recipe{
		ID:          "r1",
		Name:        "Toast",
		Ingredients: []domain.Ingredient{{Name: "bread", Amount: "2", Unit: "slices"}},
	}

	s.SaveRecipe(recipe)
	s.SaveRecipe(recipe)
	s.SaveRecipe(recipe)

	state := s.State()
	if len(state.SavedRecipes) != 1 {
		t.Fatalf("expected 1 saved recipe, got %d", len(state.SavedRecipes))
	}

	s.UnsaveRecipe("r1")
	if len(s.State().SavedRecipes) != 0 {
		t.Error("unsave did not remove the recipe")
	}

	// Unsaving again is a no-op.
	s.UnsaveRecipe("r1")
}

func TestTodos(t *testing.T) {
	s := newTestStore()

	id := s.AddTodo("buy parmesan", domain.TodoShopping, "")
	s.AddTodo("dice the onions", domain.TodoPrep, "")

	s.ToggleTodo(id)
	state := s.State()
	if !state.Todos[0].Completed {
		t.Error("toggle did not complete the todo")
	}

	s.ClearCompletedTodos()
	state = s.State()
	if len(state.Todos) != 1 || state.Todos[0].Text != "dice the onions" {
		t.Fatalf("clear completed left %+v", state.Todos)
	}

	s.DeleteTodo(state.Todos[0].ID)
	if len(s.State().Todos) != 0 {
		t.Error("delete did not remove the todo")
	}

	// Unknown ids are no-ops.
	s.ToggleTodo("bogus")
	s.DeleteTodo("bogus")
}

func TestAddShoppingListFromRecipe(t *testing.T) {
	s := newTestStore()
	recipe := domain.Recipe{
		ID:   "r1",
		Name: "Soup",
		Ingredients: []domain.Ingredient{
			{Name: "carrot", Amount: "2", Unit: ""},
			{Name: "stock", Amount: "1", Unit: "l", Notes: "low sodium"},
			{Name: "salt", Amount: "", Unit: ""},
		},
	}

	added := s.AddShoppingListFromRecipe(recipe)
	if added != 3 {
		t.Fatalf("expected 3 items added, got %d", added)
	}

	state := s.State()
	if len(state.Todos) != 3 {
		t.Fatalf("expected 3 todos, got %d", len(state.Todos))
	}
	for _, todo := range state.Todos {
		if todo.Category != domain.TodoShopping {
			t.Errorf("category: got %s", todo.Category)
		}
		if todo.RecipeID != "r1" {
			t.Errorf("recipeId: got %q", todo.RecipeID)
		}
	}
	if state.Todos[0].Text != "2 carrot" {
		t.Errorf("text: got %q", state.Todos[0].Text)
	}
	if state.Todos[1].Text != "1 l stock (low sodium)" {
		t.Errorf("text: got %q", state.Todos[1].Text)
	}
	if state.Todos[2].Text != "salt" {
		t.Errorf("text: got %q", state.Todos[2].Text)
	}
}

func TestAddShoppingListEmptyRecipe(t *testing.T) {
	s := newTestStore()

	var notified int
	s.Subscribe(func(domain.AppState) { notified++ })

	added := s.AddShoppingListFromRecipe(domain.Recipe{ID: "r1", Name: "Air"})
	if added != 0 {
		t.Fatalf("expected 0 items, got %d", added)
	}
	if len(s.State().Todos) != 0 {
		t.Error("empty recipe must add nothing")
	}
	if notified != 0 {
		t.Error("no-op must not notify listeners")
	}
}

func TestUnsaveKeepsTodoReferences(t *testing.T) {
	s := newTestStore()
	recipe := domain.Recipe{
		ID:          "r1",
		Name:        "Soup",
		Ingredients: []domain.Ingredient{{Name: "carrot", Amount: "2"}},
	}
	s.SaveRecipe(recipe)
	s.AddShoppingListFromRecipe(recipe)

	s.UnsaveRecipe("r1")

	state := s.State()
	if len(state.Todos) != 1 {
		t.Fatal("todo should survive recipe removal")
	}
	// The reference is weak: it simply dangles.
	if state.Todos[0].RecipeID != "r1" {
		t.Errorf("recipeId: got %q", state.Todos[0].RecipeID)
	}
	if state.SavedRecipe("r1") != nil {
		t.Error("recipe should be gone")
	}
}

func TestSetRegion(t *testing.T) {
	s := newTestStore()

	s.SetRegion(domain.RegionFilter(domain.RegionThai))
	if got := s.State().SelectedRegion; got != domain.RegionFilter(domain.RegionThai) {
		t.Errorf("region: got %s", got)
	}
}

func TestStateSnapshotIsolation(t *testing.T) {
	s := newTestStore()
	id := s.CreateSession("a")
	s.AppendMessage(id, domain.RoleUser, "hello", nil)

	snap := s.State()
	snap.Sessions[0].Title = "mutated"
	snap.Sessions[0].Messages[0].Content = "mutated"

	state := s.State()
	if state.Sessions[0].Title == "mutated" || state.Sessions[0].Messages[0].Content == "mutated" {
		t.Error("mutating a snapshot leaked into the store")
	}
}

func TestListenersAndSink(t *testing.T) {
	sink := &captureSink{}
	s := newTestStore(WithSink(sink))

	var events int
	unsub := s.Subscribe(func(domain.AppState) { events++ })

	s.CreateSession("a")
	s.SetRegion(domain.RegionFilter(domain.RegionGreek))

	if events != 2 {
		t.Errorf("expected 2 listener events, got %d", events)
	}
	if len(sink.states) != 2 {
		t.Errorf("expected 2 sink snapshots, got %d", len(sink.states))
	}

	unsub()
	s.CreateSession("b")
	if events != 2 {
		t.Error("unsubscribed listener still notified")
	}
}

type captureSink struct {
	states []domain.AppState
}

func (c *captureSink) Enqueue(state domain.AppState) {
	c.states = append(c.states, state)
}
