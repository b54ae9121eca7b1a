package templates

import (
	"fmt"
	"strings"

	"github.com/healthnest/healthnest-be/internal/metrics"
	"github.com/healthnest/healthnest-be/internal/profile"
)

// Exercise builds the fitness answer: exercise types, a beginner plan and
// general tips. A profile with an activity level adds the matching step
// goal.
func Exercise(p *profile.Profile) string {
	var b strings.Builder
	b.WriteString("💪 **Your Fitness Plan:**\n\n")
	b.WriteString("**Exercise Types:**\n")
	b.WriteString("• Cardio: Running, cycling, swimming, brisk walking - burns calories, improves heart health\n")
	b.WriteString("• Strength: Weight lifting, resistance bands, bodyweight - builds muscle, boosts metabolism\n")
	b.WriteString("• Flexibility: Yoga, stretching - prevents injury, improves mobility\n")
	b.WriteString("• HIIT: High-intensity intervals - maximum calorie burn in short time\n\n")
	b.WriteString("**Beginner Plan:**\n")
	for _, step := range []string{
		"Week 1-2: 20 min walking daily",
		"Week 3-4: 30 min brisk walking + 10 min bodyweight exercises",
		"Week 5-6: Add light jogging intervals",
		"Week 7-8: 40 min cardio + 20 min strength training",
	} {
		b.WriteString("• " + step + "\n")
	}
	b.WriteString("\n**Tips:**\n")
	for _, tip := range []string{
		"Warm up 5-10 minutes before exercise",
		"Cool down and stretch after workout",
		"Rest days are important for recovery",
		"Stay consistent - exercise same time daily",
	} {
		b.WriteString("• " + tip + "\n")
	}

	if p != nil && p.Activity != nil {
		fmt.Fprintf(&b, "\n**Step Goal:** aim for %d steps per day.", metrics.StepGoal(*p.Activity))
		return b.String()
	}
	return strings.TrimRight(b.String(), "\n")
}
