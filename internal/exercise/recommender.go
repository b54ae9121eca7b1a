// Package exercise produces rule-based exercise recommendations with
// calorie estimates scaled to body weight.
package exercise

import (
	"math"
	"strings"
)

// Recommendation is one suggested exercise. Duration and Sets are mutually
// exclusive depending on the exercise style.
type Recommendation struct {
	Name     string `json:"name"`
	Duration string `json:"duration,omitempty"`
	Sets     string `json:"sets,omitempty"`
	Calories int    `json:"calories"`
}

// referenceWeightKg is the body weight the base calorie figures assume;
// estimates scale linearly around it.
const referenceWeightKg = 70.0

// Recommend returns the exercise list for a goal. Goals are weight_loss,
// muscle_gain, or anything else for the general plan.
func Recommend(weightKg float64, goal string) []Recommendation {
	scale := weightKg / referenceWeightKg

	switch strings.ToLower(strings.TrimSpace(goal)) {
	case "weight_loss":
		return []Recommendation{
			{Name: "Running", Duration: "30 min", Calories: scaled(600, 0.5, scale)},
			{Name: "Cycling", Duration: "45 min", Calories: scaled(400, 0.75, scale)},
			{Name: "Swimming", Duration: "30 min", Calories: scaled(500, 0.5, scale)},
		}
	case "muscle_gain":
		return []Recommendation{
			{Name: "Weight Lifting", Duration: "45 min", Calories: scaled(300, 0.75, scale)},
			{Name: "Push-ups", Sets: "3x15", Calories: 100},
			{Name: "Squats", Sets: "3x20", Calories: 150},
		}
	default:
		return []Recommendation{
			{Name: "Walking", Duration: "30 min", Calories: scaled(200, 0.5, scale)},
			{Name: "Yoga", Duration: "30 min", Calories: scaled(180, 0.5, scale)},
			{Name: "Dancing", Duration: "30 min", Calories: scaled(350, 0.5, scale)},
		}
	}
}

// TotalCalories sums the calorie estimates of a recommendation list.
func TotalCalories(recs []Recommendation) int {
	total := 0
	for _, r := range recs {
		total += r.Calories
	}
	return total
}

func scaled(perHour, fraction, scale float64) int {
	return int(math.Round(perHour * scale * fraction))
}
