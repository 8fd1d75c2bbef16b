// Package units provides pure kitchen-value conversions: volume, weight,
// and temperature, plus free-text amount parsing, ingredient substitution
// lookup, recipe scaling, and a rough nutrition estimate. No state, no I/O.
package units

import (
	"fmt"
	"strconv"
	"strings"

	"platechat/internal/domain"
)

// volumeML maps recognized volume units to milliliters.
var volumeML = map[string]float64{
	"ml":     1,
	"l":      1000,
	"tsp":    4.92892,
	"tbsp":   14.7868,
	"floz":   29.5735,
	"cup":    236.588,
	"pint":   473.176,
	"quart":  946.353,
	"gallon": 3785.41,
}

// weightG maps recognized weight units to grams.
var weightG = map[string]float64{
	"g":  1,
	"kg": 1000,
	"oz": 28.3495,
	"lb": 453.592,
}

// unitAliases collapses common spellings onto the canonical unit keys.
var unitAliases = map[string]string{
	"milliliter":  "ml",
	"milliliters": "ml",
	"millilitre":  "ml",
	"liter":       "l",
	"liters":      "l",
	"litre":       "l",
	"teaspoon":    "tsp",
	"teaspoons":   "tsp",
	"tablespoon":  "tbsp",
	"tablespoons": "tbsp",
	"fl oz":       "floz",
	"fluid ounce": "floz",
	"cups":        "cup",
	"pints":       "pint",
	"quarts":      "quart",
	"gallons":     "gallon",
	"gram":        "g",
	"grams":       "g",
	"kilogram":    "kg",
	"kilograms":   "kg",
	"ounce":       "oz",
	"ounces":      "oz",
	"pound":       "lb",
	"pounds":      "lb",
	"lbs":         "lb",
}

func canonicalUnit(u string) string {
	u = strings.ToLower(strings.TrimSpace(u))
	if alias, ok := unitAliases[u]; ok {
		return alias
	}
	return u
}

// ConvertVolume converts an amount between two volume units.
func ConvertVolume(amount float64, from, to string) (float64, error) {
	f, ok := volumeML[canonicalUnit(from)]
	if !ok {
		return 0, fmt.Errorf("units: unknown volume unit %q", from)
	}
	t, ok := volumeML[canonicalUnit(to)]
	if !ok {
		return 0, fmt.Errorf("units: unknown volume unit %q", to)
	}
	return amount * f / t, nil
}

// ConvertWeight converts an amount between two weight units.
func ConvertWeight(amount float64, from, to string) (float64, error) {
	f, ok := weightG[canonicalUnit(from)]
	if !ok {
		return 0, fmt.Errorf("units: unknown weight unit %q", from)
	}
	t, ok := weightG[canonicalUnit(to)]
	if !ok {
		return 0, fmt.Errorf("units: unknown weight unit %q", to)
	}
	return amount * f / t, nil
}

// ConvertTemperature converts between "f" and "c".
func ConvertTemperature(value float64, from, to string) (float64, error) {
	from = canonicalUnit(from)
	to = canonicalUnit(to)
	switch {
	case from == to && (from == "f" || from == "c"):
		return value, nil
	case from == "f" && to == "c":
		return (value - 32) * 5 / 9, nil
	case from == "c" && to == "f":
		return value*9/5 + 32, nil
	default:
		return 0, fmt.Errorf("units: unknown temperature pair %q -> %q", from, to)
	}
}

// ParseAmount interprets a free-text ingredient amount as a number.
// Handles plain numbers ("2", "0.5"), fractions ("1/2"), and mixed
// numbers ("1 1/2"). Non-numeric amounts ("to taste") return (0, false).
func ParseAmount(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	// Mixed number: "1 1/2".
	if parts := strings.Fields(s); len(parts) == 2 {
		whole, okW := ParseAmount(parts[0])
		frac, okF := ParseAmount(parts[1])
		if okW && okF {
			return whole + frac, true
		}
		return 0, false
	}

	// Simple fraction: "1/2".
	if num, den, found := strings.Cut(s, "/"); found {
		n, errN := strconv.ParseFloat(strings.TrimSpace(num), 64)
		d, errD := strconv.ParseFloat(strings.TrimSpace(den), 64)
		if errN != nil || errD != nil || d == 0 {
			return 0, false
		}
		return n / d, true
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FormatAmount renders a scaled amount back into cook-friendly text.
// Common fractions are preferred over decimals.
func FormatAmount(v float64) string {
	fractions := []struct {
		value float64
		text  string
	}{
		{0.25, "1/4"}, {0.333, "1/3"}, {0.5, "1/2"},
		{0.667, "2/3"}, {0.75, "3/4"},
	}
	whole := float64(int(v))
	rem := v - whole
	for _, f := range fractions {
		if rem > f.value-0.03 && rem < f.value+0.03 {
			if whole == 0 {
				return f.text
			}
			return fmt.Sprintf("%d %s", int(whole), f.text)
		}
	}
	if v == whole {
		return strconv.Itoa(int(whole))
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// ScaleRecipe returns a copy of the recipe adjusted to the given serving
// count. Numeric-looking amounts are scaled proportionally; free-text
// amounts ("to taste") pass through untouched. Best-effort only.
func ScaleRecipe(r domain.Recipe, servings int) domain.Recipe {
	out := r.CloneDeep()
	if servings <= 0 || r.Servings <= 0 || servings == r.Servings {
		return out
	}

	factor := float64(servings) / float64(r.Servings)
	for i, ing := range out.Ingredients {
		if v, ok := ParseAmount(ing.Amount); ok {
			out.Ingredients[i].Amount = FormatAmount(v * factor)
		}
	}
	out.Servings = servings
	return out
}
