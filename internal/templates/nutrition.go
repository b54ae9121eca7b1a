package templates

import (
	"fmt"
	"math"
	"strings"

	"github.com/healthnest/healthnest-be/internal/knowledge"
	"github.com/healthnest/healthnest-be/internal/metrics"
	"github.com/healthnest/healthnest-be/internal/profile"
)

// Nutrition builds the nutrition answer. A complete profile adds a personal
// daily-needs section (calories, protein, water) ahead of the general macro
// and meal-timing guidance.
func Nutrition(p *profile.Profile, store *knowledge.Store) string {
	var b strings.Builder
	b.WriteString("🥗 **Your Nutrition Plan:**\n\n")

	if p.IsComplete() {
		calories := metrics.CalorieNeeds(*p.Age, *p.Gender, *p.WeightKg, *p.HeightCm, *p.Activity)
		water := metrics.DailyWaterLiters(*p.WeightKg, store.Water)
		protein := int(math.Round(*p.WeightKg * 0.8))
		b.WriteString("**Daily Needs:**\n")
		fmt.Fprintf(&b, "• Calories: %d kcal\n", calories)
		fmt.Fprintf(&b, "• Protein: %dg\n", protein)
		fmt.Fprintf(&b, "• Water: %.1fL\n\n", water)
	}

	b.WriteString("**Macros:**\n")
	b.WriteString("• Protein: 0.8-1g per kg body weight. Sources: chicken, fish, eggs, dal, paneer, tofu\n")
	b.WriteString("• Carbs: 45-65% of daily calories. Choose: brown rice, oats, quinoa, sweet potato\n")
	b.WriteString("• Fats: 20-35% of daily calories. Choose: nuts, seeds, avocado, olive oil, fish oil\n\n")
	b.WriteString("**Meal Timing:**\n")
	for _, t := range []string{
		"Breakfast within 1 hour of waking",
		"Lunch 12-2pm",
		"Healthy snack 3-4pm",
		"Dinner before 8pm",
		"No eating 2 hours before sleep",
	} {
		b.WriteString("• " + t + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
