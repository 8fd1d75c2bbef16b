// Package parser extracts structured recipe payloads out of free-form
// assistant text. Extraction is tolerant end to end: a reply with no block,
// a malformed block, or junk ingredient entries all degrade gracefully and
// never produce an error for the caller — the chat keeps working with
// text-only output.
package parser

import (
	"encoding/json"
	"strconv"
	"strings"

	"platechat/internal/domain"
	"platechat/internal/logger"
)

// Markers delimiting the structured recipe block inside assistant prose.
const (
	openMarker  = "[RECIPE]"
	closeMarker = "[/RECIPE]"
)

// recipeDefaults is the single source of fallback values applied when the
// model omits scalar fields. Keeping the whole default policy in one
// literal makes it auditable and testable as a table.
var recipeDefaults = domain.Recipe{
	Region:     domain.RegionInternational,
	Cuisine:    "International",
	Difficulty: domain.DifficultyMedium,
	Servings:   4,
}

// Result is the outcome of one parse: the human-readable prose with the
// block stripped, and the extracted recipe if one was present and decodable.
type Result struct {
	Prose  string
	Recipe *domain.Recipe
}

// Parser turns raw assistant text into prose + an optional canonical Recipe.
type Parser struct {
	log *logger.Logger
}

// New creates a recipe parser.
func New(log *logger.Logger) *Parser {
	return &Parser{log: log}
}

// Parse locates at most one fenced recipe block in the text. No block is
// the common case (a purely conversational reply), not an error. A block
// that fails to decode is logged and swallowed; the original text comes
// back untouched with a nil recipe.
func (p *Parser) Parse(raw string) Result {
	start := strings.Index(raw, openMarker)
	if start < 0 {
		return Result{Prose: strings.TrimSpace(raw)}
	}
	rest := raw[start+len(openMarker):]
	end := strings.Index(rest, closeMarker)
	if end < 0 {
		p.log.Debug("parser: open marker without close marker, treating as prose")
		return Result{Prose: strings.TrimSpace(raw)}
	}

	payload := stripCodeFence(rest[:end])

	var shape recipeShape
	if err := json.Unmarshal([]byte(payload), &shape); err != nil {
		p.log.Warn("parser: malformed recipe block, keeping prose only: %v", err)
		return Result{Prose: strings.TrimSpace(raw)}
	}

	recipe := p.coerce(shape)

	// Prose is the text around the block, markers stripped, nothing else.
	prose := raw[:start] + rest[end+len(closeMarker):]
	return Result{Prose: strings.TrimSpace(prose), Recipe: recipe}
}

// recipeShape is the tolerant wire form. Every field that models get wrong
// in practice is deferred to coercion via RawMessage.
type recipeShape struct {
	Name         string            `json:"name"`
	Region       string            `json:"region"`
	Cuisine      string            `json:"cuisine"`
	Description  string            `json:"description"`
	PrepTime     string            `json:"prepTime"`
	CookTime     string            `json:"cookTime"`
	Servings     json.RawMessage   `json:"servings"`
	Difficulty   string            `json:"difficulty"`
	Ingredients  []json.RawMessage `json:"ingredients"`
	Instructions json.RawMessage   `json:"instructions"`
	Tips         json.RawMessage   `json:"tips"`
	Tags         json.RawMessage   `json:"tags"`
}

// coerce maps the tolerant wire form onto the canonical Recipe, applying
// recipeDefaults field by field.
func (p *Parser) coerce(shape recipeShape) *domain.Recipe {
	r := &domain.Recipe{
		ID:           domain.NewID(),
		Name:         fallback(shape.Name, "Untitled Recipe"),
		Region:       recipeDefaults.Region,
		Cuisine:      fallback(shape.Cuisine, recipeDefaults.Cuisine),
		Description:  shape.Description,
		PrepTime:     shape.PrepTime,
		CookTime:     shape.CookTime,
		Servings:     recipeDefaults.Servings,
		Difficulty:   recipeDefaults.Difficulty,
		Ingredients:  make([]domain.Ingredient, 0, len(shape.Ingredients)),
		Instructions: stringList(shape.Instructions),
		Tips:         stringList(shape.Tips),
		Tags:         stringList(shape.Tags),
	}

	if shape.Region != "" {
		r.Region = domain.ParseRegion(shape.Region)
	}
	if shape.Difficulty != "" {
		r.Difficulty = domain.ParseDifficulty(shape.Difficulty)
	}
	if n, ok := intValue(shape.Servings); ok && n > 0 {
		r.Servings = n
	}

	// Every entry is coerced independently so one junk element cannot take
	// down the list or shift ordinals.
	for _, entry := range shape.Ingredients {
		r.Ingredients = append(r.Ingredients, coerceIngredient(entry))
	}

	if !r.Valid() {
		p.log.Debug("parser: recipe %q has no usable ingredients", r.Name)
	}
	return r
}

// ── Ingredient coercion ──────────────────────────────────────────

// ingredientKind classifies a raw ingredient entry.
type ingredientKind int

const (
	kindString ingredientKind = iota
	kindObject
	kindUnrecognized
)

// ingredientObject accepts the key aliases models use interchangeably.
type ingredientObject struct {
	Name       string          `json:"name"`
	Ingredient string          `json:"ingredient"`
	Amount     json.RawMessage `json:"amount"`
	Quantity   json.RawMessage `json:"quantity"`
	Unit       string          `json:"unit"`
	Notes      string          `json:"notes"`
}

// classifyIngredient decides which shape a raw entry is.
func classifyIngredient(raw json.RawMessage) ingredientKind {
	trimmed := strings.TrimSpace(string(raw))
	switch {
	case strings.HasPrefix(trimmed, `"`):
		return kindString
	case strings.HasPrefix(trimmed, "{"):
		return kindObject
	default:
		return kindUnrecognized
	}
}

// coerceIngredient resolves one entry. Strings become a full ingredient
// name with amount "1"; objects go through alias resolution; anything else
// becomes a placeholder rather than being dropped, so list length and
// ordering always match what the model intended.
func coerceIngredient(raw json.RawMessage) domain.Ingredient {
	switch classifyIngredient(raw) {
	case kindString:
		var name string
		if err := json.Unmarshal(raw, &name); err != nil || strings.TrimSpace(name) == "" {
			break
		}
		return domain.Ingredient{Name: strings.TrimSpace(name), Amount: "1"}

	case kindObject:
		var obj ingredientObject
		if err := json.Unmarshal(raw, &obj); err != nil {
			break
		}
		name := fallback(obj.Name, obj.Ingredient)
		if strings.TrimSpace(name) == "" {
			break
		}
		amount := rawString(obj.Amount)
		if amount == "" {
			amount = rawString(obj.Quantity)
		}
		return domain.Ingredient{
			Name:   strings.TrimSpace(name),
			Amount: fallback(amount, "1"),
			Unit:   strings.TrimSpace(obj.Unit),
			Notes:  strings.TrimSpace(obj.Notes),
		}
	}

	return domain.Ingredient{Name: "Unknown ingredient", Amount: "1"}
}

// ── Helpers ──────────────────────────────────────────────────────

// stripCodeFence removes ```json ... ``` wrappers that LLMs love to add.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		// Remove opening fence line.
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		}
		// Remove closing fence.
		if idx := strings.LastIndex(s, "```"); idx != -1 {
			s = s[:idx]
		}
	}
	return strings.TrimSpace(s)
}

// stringList decodes a raw value as []string, returning an empty list for
// anything that is not an array of strings.
func stringList(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return []string{}
	}
	return out
}

// intValue reads a raw value as an int, accepting both numbers and
// numeric strings.
func intValue(raw json.RawMessage) (int, bool) {
	if len(raw) == 0 {
		return 0, false
	}
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if v, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return v, true
		}
	}
	return 0, false
}

// rawString renders a raw JSON scalar as display text: strings unquoted,
// numbers as written.
func rawString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}
