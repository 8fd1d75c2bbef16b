package units

import (
	"strings"

	"platechat/internal/domain"
)

// Nutrition is a rough per-serving estimate. Values are ballpark numbers
// for a home cook, not dietary advice.
type Nutrition struct {
	Calories int
	Protein  int // grams
	Carbs    int // grams
	Fat      int // grams
}

// nutritionRow is a per-ingredient contribution, keyed by name fragment.
type nutritionRow struct {
	calories, protein, carbs, fat int
}

// nutritionTable matches ingredient names by substring, regardless of the
// stated quantity or unit. That is the point: this helper trades accuracy
// for always having an answer.
var nutritionTable = map[string]nutritionRow{
	"chicken":   {230, 27, 0, 12},
	"beef":      {290, 24, 0, 20},
	"pork":      {270, 25, 0, 18},
	"fish":      {180, 24, 0, 8},
	"salmon":    {210, 23, 0, 13},
	"shrimp":    {100, 20, 1, 2},
	"tofu":      {90, 10, 2, 5},
	"egg":       {75, 6, 1, 5},
	"pasta":     {220, 8, 43, 1},
	"spaghetti": {220, 8, 43, 1},
	"rice":      {200, 4, 45, 0},
	"noodle":    {190, 7, 38, 1},
	"bread":     {80, 3, 15, 1},
	"flour":     {110, 3, 23, 0},
	"potato":    {160, 4, 37, 0},
	"cheese":    {110, 7, 1, 9},
	"butter":    {100, 0, 0, 11},
	"oil":       {120, 0, 0, 14},
	"cream":     {100, 1, 1, 10},
	"milk":      {50, 3, 5, 2},
	"yogurt":    {60, 5, 5, 2},
	"bean":      {120, 8, 22, 0},
	"lentil":    {115, 9, 20, 0},
	"chickpea":  {135, 7, 22, 2},
	"avocado":   {160, 2, 9, 15},
	"nut":       {170, 6, 6, 15},
	"sugar":     {50, 0, 13, 0},
	"honey":     {60, 0, 17, 0},
}

// vegetableRow is the catch-all for produce that has no dedicated row.
var vegetableRow = nutritionRow{30, 1, 6, 0}

var vegetableNames = []string{
	"onion", "garlic", "pepper", "carrot", "broccoli", "spinach",
	"tomato", "zucchini", "mushroom", "cabbage", "kale", "pea",
	"celery", "cucumber", "lettuce", "eggplant", "cauliflower",
}

// EstimateNutrition sums crude per-ingredient contributions and divides by
// servings. Ingredient names are matched by substring only — "2 large
// chicken breasts" and "chicken stock" both count as chicken. Callers
// should treat the result as an order-of-magnitude hint.
func EstimateNutrition(r domain.Recipe) Nutrition {
	total := Nutrition{}
	for _, ing := range r.Ingredients {
		row, ok := lookupNutrition(ing.Name)
		if !ok {
			continue
		}
		total.Calories += row.calories
		total.Protein += row.protein
		total.Carbs += row.carbs
		total.Fat += row.fat
	}

	servings := r.Servings
	if servings <= 0 {
		servings = 1
	}
	return Nutrition{
		Calories: total.Calories / servings,
		Protein:  total.Protein / servings,
		Carbs:    total.Carbs / servings,
		Fat:      total.Fat / servings,
	}
}

func lookupNutrition(name string) (nutritionRow, bool) {
	lower := strings.ToLower(name)
	for key, row := range nutritionTable {
		if strings.Contains(lower, key) {
			return row, true
		}
	}
	for _, veg := range vegetableNames {
		if strings.Contains(lower, veg) {
			return vegetableRow, true
		}
	}
	return nutritionRow{}, false
}
