package domain

import "testing"

func TestRecipeValid(t *testing.T) {
	tests := []struct {
		name   string
		recipe Recipe
		want   bool
	}{
		{"no ingredients", Recipe{Name: "x"}, false},
		{"one named ingredient", Recipe{Ingredients: []Ingredient{{Name: "salt"}}}, true},
		{"only empty names", Recipe{Ingredients: []Ingredient{{Amount: "2"}, {Unit: "g"}}}, false},
		{"mixed", Recipe{Ingredients: []Ingredient{{Amount: "2"}, {Name: "flour"}}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.recipe.Valid(); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseRegion(t *testing.T) {
	if got := ParseRegion("thai"); got != RegionThai {
		t.Errorf("got %s", got)
	}
	// Unknown text falls back to international, never an error.
	if got := ParseRegion("klingon"); got != RegionInternational {
		t.Errorf("got %s", got)
	}
	if got := ParseRegion(""); got != RegionInternational {
		t.Errorf("got %s", got)
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in   string
		want Difficulty
	}{
		{"easy", DifficultyEasy},
		{"Easy", DifficultyEasy},
		{"hard", DifficultyHard},
		{"medium", DifficultyMedium},
		{"impossible", DifficultyMedium},
		{"", DifficultyMedium},
	}
	for _, tt := range tests {
		if got := ParseDifficulty(tt.in); got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestRegionFilterMatches(t *testing.T) {
	if !RegionFilterAll.Matches(RegionThai) {
		t.Error("all must match every region")
	}
	f := RegionFilter(RegionItalian)
	if !f.Matches(RegionItalian) {
		t.Error("italian filter must match italian")
	}
	if f.Matches(RegionFrench) {
		t.Error("italian filter must not match french")
	}
}

func TestCloneIsolation(t *testing.T) {
	recipe := Recipe{
		ID:          "r1",
		Name:        "Soup",
		Ingredients: []Ingredient{{Name: "carrot", Amount: "2"}},
		Tags:        []string{"cozy"},
	}
	state := AppState{
		Sessions: []ChatSession{{
			ID:       "s1",
			Title:    "a",
			Messages: []Message{{ID: "m1", Role: RoleAssistant, Content: "x", Recipe: &recipe}},
		}},
		CurrentSessionID: "s1",
		Todos:            []TodoItem{{ID: "t1", Text: "x"}},
		SavedRecipes:     []Recipe{recipe},
		SelectedRegion:   RegionFilterAll,
	}

	clone := state.Clone()
	clone.Sessions[0].Title = "changed"
	clone.Sessions[0].Messages[0].Recipe.Name = "changed"
	clone.Sessions[0].Messages[0].Recipe.Ingredients[0].Name = "changed"
	clone.Todos[0].Text = "changed"
	clone.SavedRecipes[0].Tags[0] = "changed"

	if state.Sessions[0].Title != "a" {
		t.Error("session title shared")
	}
	if state.Sessions[0].Messages[0].Recipe.Name != "Soup" {
		t.Error("embedded recipe shared")
	}
	if state.Sessions[0].Messages[0].Recipe.Ingredients[0].Name != "carrot" {
		t.Error("embedded recipe ingredients shared")
	}
	if state.Todos[0].Text != "x" {
		t.Error("todos shared")
	}
	if state.SavedRecipes[0].Tags[0] != "cozy" {
		t.Error("saved recipe tags shared")
	}
}

func TestStateLookups(t *testing.T) {
	state := DefaultState()
	if state.CurrentSession() != nil {
		t.Error("empty state has no current session")
	}
	if state.Session("x") != nil {
		t.Error("unknown session lookup must be nil")
	}
	if state.SavedRecipe("x") != nil {
		t.Error("unknown recipe lookup must be nil")
	}

	state.Sessions = []ChatSession{{ID: "s1"}}
	state.CurrentSessionID = "s1"
	if state.CurrentSession() == nil {
		t.Error("expected current session")
	}
}

func TestHistory(t *testing.T) {
	sess := ChatSession{Messages: []Message{
		{Role: RoleUser, Content: "hi"},
		{Role: RoleAssistant, Content: "hello"},
	}}
	turns := sess.History()
	if len(turns) != 2 {
		t.Fatalf("got %d turns", len(turns))
	}
	if turns[0].Role != RoleUser || turns[1].Content != "hello" {
		t.Errorf("turns: %+v", turns)
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewID()
		if id == "" || seen[id] {
			t.Fatalf("duplicate or empty id %q", id)
		}
		seen[id] = true
	}
}
