package units

import "strings"

// substitutionTable maps ingredient name fragments to workable swaps.
// Matching is substring-based on purpose: "2 boneless chicken breasts"
// should still hit the "chicken" row. Approximate by design.
var substitutionTable = map[string][]string{
	"butter":        {"margarine", "coconut oil", "olive oil (3/4 the amount)"},
	"buttermilk":    {"1 cup milk + 1 tbsp lemon juice, rest 5 minutes"},
	"milk":          {"oat milk", "soy milk", "almond milk"},
	"heavy cream":   {"evaporated milk", "coconut cream", "milk + melted butter"},
	"sour cream":    {"plain greek yogurt", "creme fraiche"},
	"egg":           {"1 tbsp ground flax + 3 tbsp water", "1/4 cup applesauce", "mashed banana"},
	"chicken":       {"firm tofu", "seitan", "chickpeas"},
	"beef":          {"mushrooms", "lentils", "plant-based mince"},
	"fish sauce":    {"soy sauce + splash of lime", "miso paste thinned with water"},
	"soy sauce":     {"tamari", "coconut aminos", "worcestershire sauce"},
	"honey":         {"maple syrup", "agave nectar", "sugar syrup"},
	"sugar":         {"honey (3/4 the amount)", "maple syrup", "coconut sugar"},
	"flour":         {"almond flour", "oat flour", "gluten-free blend"},
	"breadcrumbs":   {"crushed crackers", "rolled oats", "crushed cornflakes"},
	"wine":          {"stock + splash of vinegar", "grape juice"},
	"lemon":         {"lime", "white wine vinegar (half the amount)"},
	"garlic":        {"garlic powder (1/8 tsp per clove)", "shallot"},
	"onion":         {"shallot", "leek", "onion powder (1 tsp per onion)"},
	"fresh herbs":   {"dried herbs (1/3 the amount)"},
	"tomato":        {"canned tomatoes", "tomato paste thinned with water"},
	"parmesan":      {"pecorino", "grana padano", "nutritional yeast"},
	"coconut milk":  {"heavy cream", "cashew cream"},
	"rice":          {"quinoa", "couscous", "cauliflower rice"},
	"pasta":         {"zucchini noodles", "rice noodles", "gluten-free pasta"},
	"cornstarch":    {"arrowroot powder", "flour (double the amount)"},
	"baking powder": {"1/4 tsp baking soda + 1/2 tsp cream of tartar"},
}

// Substitutes returns workable replacements for an ingredient, matched by
// substring against the lookup table. Longer keys win so "heavy cream"
// beats "cream"-ish prefixes. Returns nil when nothing matches.
func Substitutes(name string) []string {
	lower := strings.ToLower(name)

	var bestKey string
	for key := range substitutionTable {
		if strings.Contains(lower, key) && len(key) > len(bestKey) {
			bestKey = key
		}
	}
	if bestKey == "" {
		return nil
	}
	return append([]string(nil), substitutionTable[bestKey]...)
}
