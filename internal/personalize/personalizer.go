// Package personalize appends profile-derived BMI and calorie sentences to
// an answer when the profile carries enough fields to compute them.
package personalize

import (
	"fmt"

	"github.com/healthnest/healthnest-be/internal/knowledge"
	"github.com/healthnest/healthnest-be/internal/metrics"
	"github.com/healthnest/healthnest-be/internal/profile"
)

// Personalize returns the answer with BMI and/or calorie sentences appended.
// With a nil profile, or one missing the fields for both computations, the
// answer comes back unchanged.
func Personalize(answer string, p *profile.Profile, store *knowledge.Store) string {
	if p == nil {
		return answer
	}

	if p.HasBodyMetrics() {
		bmi := metrics.BMI(*p.WeightKg, *p.HeightCm/100)
		if r, ok := metrics.Categorize(bmi, store.BMIRanges); ok {
			answer += fmt.Sprintf("\n\n💡 Your BMI (%.1f) is %s. %s", bmi, r.Category, r.Advice)
		}
	}

	if p.IsComplete() {
		calories := metrics.CalorieNeeds(*p.Age, *p.Gender, *p.WeightKg, *p.HeightCm, *p.Activity)
		answer += fmt.Sprintf("\n\n🔥 Your daily calorie needs: approximately %d kcal", calories)
	}

	return answer
}
