package demo

import (
	"testing"

	"platechat/internal/domain"
	"platechat/internal/logger"
)

func TestRespondMatchesRules(t *testing.T) {
	r := New(logger.New(logger.LevelOff, nil))

	tests := []struct {
		message  string
		wantName string
	}{
		{"suggest a vegetarian dinner", "Vegetable Stir Fry"},
		{"I want pasta tonight", "Chicken Alfredo"},
		{"taco tuesday ideas?", "Black Bean Tacos"},
		{"what's a good breakfast", "Shakshuka"},
		{"something cozy like a soup", "Lentil Soup"},
		{"I need dessert", "Chocolate Mug Cake"},
		{"quick weeknight meal", "Vegetable Stir Fry"},
		{"chicken recipes please", "Chicken Alfredo"},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			text, recipe := r.Respond(tt.message, domain.RegionFilterAll)
			if text == "" {
				t.Fatal("expected non-empty text")
			}
			if recipe == nil {
				t.Fatalf("expected a recipe for %q", tt.message)
			}
			if recipe.Name != tt.wantName {
				t.Errorf("got %q, want %q", recipe.Name, tt.wantName)
			}
			if !recipe.Valid() {
				t.Errorf("demo recipe %q is not valid", recipe.Name)
			}
		})
	}
}

func TestRespondVegetarianDinner(t *testing.T) {
	r := New(logger.New(logger.LevelOff, nil))

	_, recipe := r.Respond("vegetarian dinner", domain.RegionFilterAll)
	if recipe == nil {
		t.Fatal("expected a recipe")
	}
	if !recipe.HasTag("vegetarian") {
		t.Errorf("got %q without a vegetarian tag: %v", recipe.Name, recipe.Tags)
	}
}

// A vegetarian request must never come back with a meat dish: the
// vegetarian rule fires before the pasta/chicken rules.
func TestRespondVegetarianBeatsPasta(t *testing.T) {
	r := New(logger.New(logger.LevelOff, nil))

	_, recipe := r.Respond("vegetarian pasta please", domain.RegionFilterAll)
	if recipe == nil {
		t.Fatal("expected a recipe")
	}
	if !recipe.HasTag("vegetarian") {
		t.Errorf("got %q, want a vegetarian-tagged dish", recipe.Name)
	}
}

func TestRespondDeterministic(t *testing.T) {
	r := New(logger.New(logger.LevelOff, nil))

	t1, r1 := r.Respond("quick dinner", domain.RegionFilterAll)
	t2, r2 := r.Respond("quick dinner", domain.RegionFilterAll)
	if t1 != t2 {
		t.Error("same message produced different text")
	}
	if r1.ID != r2.ID || r1.Name != r2.Name {
		t.Error("same message produced different recipes")
	}
}

func TestRespondFallback(t *testing.T) {
	r := New(logger.New(logger.LevelOff, nil))

	text, recipe := r.Respond("how do I file my taxes", domain.RegionFilterAll)
	if recipe != nil {
		t.Fatal("expected no recipe for an unmatched message")
	}
	if text == "" {
		t.Fatal("expected a fallback suggestion line")
	}

	// Region-flavored fallbacks differ from the generic line.
	italian, _ := r.Respond("zzz", domain.RegionFilter(domain.RegionItalian))
	if italian == text {
		t.Error("expected a region-specific fallback for italian")
	}
}
