// Package domain defines the core types and interfaces for the recipe
// assistant. All other packages depend on domain; domain depends on nothing.
package domain

import "github.com/google/uuid"

// Recipe is the canonical recipe representation. Exactly one shape exists in
// the system: everything the model or the demo responder produces is coerced
// into this before it reaches the store.
type Recipe struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Region       Region       `json:"region"`
	Cuisine      string       `json:"cuisine"`
	Description  string       `json:"description"`
	PrepTime     string       `json:"prepTime"` // free text ("20 minutes"), never parsed
	CookTime     string       `json:"cookTime"`
	Servings     int          `json:"servings"`
	Difficulty   Difficulty   `json:"difficulty"`
	Ingredients  []Ingredient `json:"ingredients"`
	Instructions []string     `json:"instructions"`
	Tips         []string     `json:"tips,omitempty"`
	Tags         []string     `json:"tags"`
}

// Ingredient is a single recipe ingredient with human-style quantities.
// Amount is free text and may be non-numeric ("to taste", "a pinch").
type Ingredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
	Unit   string `json:"unit"`
	Notes  string `json:"notes,omitempty"`
}

// Valid reports whether the recipe has at least one ingredient with a
// non-empty name. Recipes failing this are treated as extraction failures
// and never stored.
func (r *Recipe) Valid() bool {
	for _, ing := range r.Ingredients {
		if ing.Name != "" {
			return true
		}
	}
	return false
}

// HasTag reports whether the recipe carries the given tag (case-sensitive).
func (r *Recipe) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Difficulty is the declared effort level of a recipe.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// ParseDifficulty maps free-text difficulty to the enum, defaulting to Medium.
func ParseDifficulty(s string) Difficulty {
	switch s {
	case "Easy", "easy":
		return DifficultyEasy
	case "Hard", "hard":
		return DifficultyHard
	default:
		return DifficultyMedium
	}
}

// Region is one of the 14 world-cuisine tags.
type Region string

const (
	RegionItalian       Region = "italian"
	RegionFrench        Region = "french"
	RegionSpanish       Region = "spanish"
	RegionGreek         Region = "greek"
	RegionMexican       Region = "mexican"
	RegionAmerican      Region = "american"
	RegionBrazilian     Region = "brazilian"
	RegionChinese       Region = "chinese"
	RegionJapanese      Region = "japanese"
	RegionThai          Region = "thai"
	RegionIndian        Region = "indian"
	RegionMiddleEastern Region = "middle-eastern"
	RegionAfrican       Region = "african"
	RegionInternational Region = "international"
)

// Regions lists every recognized cuisine tag, in display order.
var Regions = []Region{
	RegionItalian, RegionFrench, RegionSpanish, RegionGreek,
	RegionMexican, RegionAmerican, RegionBrazilian,
	RegionChinese, RegionJapanese, RegionThai, RegionIndian,
	RegionMiddleEastern, RegionAfrican, RegionInternational,
}

// ParseRegion maps free text to a Region, defaulting to international.
func ParseRegion(s string) Region {
	for _, r := range Regions {
		if string(r) == s {
			return r
		}
	}
	return RegionInternational
}

// RegionFilter is either a specific Region or "all".
type RegionFilter string

// RegionFilterAll matches every region.
const RegionFilterAll RegionFilter = "all"

// Matches reports whether a recipe region passes the filter.
func (f RegionFilter) Matches(r Region) bool {
	return f == RegionFilterAll || string(f) == string(r)
}

// NewID returns a fresh opaque entity ID. IDs are never reused.
func NewID() string {
	return uuid.NewString()
}
