package classifier

import (
	"regexp"
	"strings"
)

// Intent is the routing decision for an incoming message.
type Intent string

const (
	IntentGreeting     Intent = "greeting"
	IntentPregnancy    Intent = "pregnancy"
	IntentWomensHealth Intent = "womens_health"
	IntentNutrition    Intent = "nutrition"
	IntentExercise     Intent = "exercise"
	IntentGeneral      Intent = "general"
)

// rule pairs an intent with its keyword set. Rules are evaluated in slice
// order, so the routing priority (pregnancy over women's health over
// nutrition over exercise) is declared once, here, as fixed policy.
type rule struct {
	intent   Intent
	keywords []string
}

// Router performs rule-based intent routing: greeting check first, then
// keyword-set membership in a fixed priority order, else General (which
// defers to the retrieval engine). Pure function of the message text and
// the static tables; safe for concurrent use.
type Router struct {
	greetings       map[string]struct{}
	rules           []rule
	spaceNormalizer *regexp.Regexp
}

// NewRouter creates the intent router with its fixed keyword tables.
func NewRouter() *Router {
	greetings := []string{
		"hi", "hello", "hey", "hiya", "yo",
		"good morning", "good afternoon", "good evening",
		"how are you", "what's up",
	}
	set := make(map[string]struct{}, len(greetings))
	for _, g := range greetings {
		set[g] = struct{}{}
	}

	return &Router{
		greetings:       set,
		spaceNormalizer: regexp.MustCompile(`\s+`),
		rules: []rule{
			{IntentPregnancy, []string{"pregnancy", "pregnant", "baby", "trimester", "prenatal"}},
			{IntentWomensHealth, []string{"period", "menstrual", "menstruation", "cramps", "pcos", "menopause"}},
			{IntentNutrition, []string{"nutrition", "diet", "food", "eat", "meal", "calorie", "calories", "weight loss", "lose weight"}},
			{IntentExercise, []string{"exercise", "workout", "fitness", "gym", "training"}},
		},
	}
}

// Route classifies a message into an intent. A message that matches the
// greeting set, or that has at most two words, is a greeting. Multiple
// keyword sets may match; the first rule in priority order wins.
func (r *Router) Route(message string) Intent {
	normalized := r.normalize(message)
	if normalized == "" {
		return IntentGreeting
	}

	if _, ok := r.greetings[normalized]; ok {
		return IntentGreeting
	}
	if len(strings.Fields(normalized)) <= 2 {
		return IntentGreeting
	}

	for _, rule := range r.rules {
		for _, keyword := range rule.keywords {
			if strings.Contains(normalized, keyword) {
				return rule.intent
			}
		}
	}

	return IntentGeneral
}

// normalize lowercases, trims, collapses runs of whitespace and strips
// trailing punctuation.
func (r *Router) normalize(message string) string {
	text := strings.ToLower(strings.TrimSpace(message))
	text = r.spaceNormalizer.ReplaceAllString(text, " ")
	return strings.TrimRight(text, "!?.,;:")
}
