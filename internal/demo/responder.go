// Package demo provides the deterministic offline responder. It keeps the
// product usable with zero external dependencies and gives the chat
// orchestrator a total fallback for every failure class.
package demo

import (
	"strings"

	"platechat/internal/domain"
	"platechat/internal/logger"
)

// Compile-time interface check.
var _ domain.Responder = (*Responder)(nil)

// Responder synthesizes a plausible (text, recipe) pair from keyword rules.
// Pure function of its inputs: the same message and region always produce
// the same reply. First matching rule wins.
type Responder struct {
	log   *logger.Logger
	rules []rule
}

type rule struct {
	keywords []string
	build    func() (string, *domain.Recipe)
}

// New creates the demo responder with its fixed rule list.
func New(log *logger.Logger) *Responder {
	r := &Responder{log: log}
	r.rules = []rule{
		{[]string{"vegetarian", "vegan", "meatless", "plant"}, vegetableStirFry},
		{[]string{"pasta", "spaghetti", "noodle", "alfredo"}, chickenAlfredo},
		{[]string{"taco", "mexican", "burrito"}, blackBeanTacos},
		{[]string{"breakfast", "brunch", "morning", "egg"}, shakshuka},
		{[]string{"soup", "stew", "cozy", "cold day"}, lentilSoup},
		{[]string{"dessert", "sweet", "cake", "chocolate"}, chocolateMugCake},
		{[]string{"quick", "easy", "fast", "simple", "weeknight"}, vegetableStirFry},
		{[]string{"chicken"}, chickenAlfredo},
	}
	return r
}

// Respond matches the message against the rule list and returns the first
// hit. With no hit it returns a region-flavored suggestion line and no
// recipe — never an error, never a panic.
func (r *Responder) Respond(message string, region domain.RegionFilter) (string, *domain.Recipe) {
	lower := strings.ToLower(message)

	for _, rule := range r.rules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				text, recipe := rule.build()
				r.log.Debug("demo: matched %q via keyword %q -> %s", message, kw, recipe.Name)
				return text, recipe
			}
		}
	}

	r.log.Debug("demo: no rule matched %q, returning fallback line", message)
	return fallbackLine(region), nil
}

// fallbackLine nudges the user toward something cookable, biased by the
// selected region.
func fallbackLine(region domain.RegionFilter) string {
	if line, ok := regionLines[region]; ok {
		return line
	}
	return "I can help you find something to cook! Try asking for a quick dinner, " +
		"a vegetarian dish, pasta, tacos, soup, or dessert."
}

var regionLines = map[domain.RegionFilter]string{
	domain.RegionFilter(domain.RegionItalian):       "In the mood for Italian? Ask me about pasta — I make a mean alfredo.",
	domain.RegionFilter(domain.RegionFrench):        "Feeling French tonight? Ask me for something with butter and confidence.",
	domain.RegionFilter(domain.RegionSpanish):       "Spanish flavors it is — ask me for something with smoked paprika.",
	domain.RegionFilter(domain.RegionGreek):         "Greek sounds great — ask me for something fresh with lemon and herbs.",
	domain.RegionFilter(domain.RegionMexican):       "Craving Mexican? Ask me about tacos and I'll hook you up.",
	domain.RegionFilter(domain.RegionAmerican):      "Classic American comfort food — ask me for a weeknight dinner idea.",
	domain.RegionFilter(domain.RegionBrazilian):     "Brazilian cooking is all about beans and big flavors — ask for a stew.",
	domain.RegionFilter(domain.RegionChinese):       "For Chinese flavors, ask me about a stir fry — hot pan, fast hands.",
	domain.RegionFilter(domain.RegionJapanese):      "Japanese home cooking is simpler than you'd think — ask for a rice bowl.",
	domain.RegionFilter(domain.RegionThai):          "Thai food balances sweet, sour, salty, and hot — ask for a curry or soup.",
	domain.RegionFilter(domain.RegionIndian):        "Indian cooking rewards a well-stocked spice drawer — ask for a lentil dish.",
	domain.RegionFilter(domain.RegionMiddleEastern): "Middle Eastern flavors? Ask me about shakshuka — eggs, tomatoes, magic.",
	domain.RegionFilter(domain.RegionAfrican):       "African cuisines are wonderfully diverse — ask for a hearty stew.",
	domain.RegionFilter(domain.RegionInternational): "Ask me for a dinner idea and I'll pull something from the world pantry.",
}
