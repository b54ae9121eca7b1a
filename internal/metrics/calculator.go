// Package metrics implements the fixed health formulas: BMI, daily water
// intake, and calorie needs via the revised Harris-Benedict equation.
package metrics

import (
	"math"
	"strings"

	"github.com/healthnest/healthnest-be/internal/knowledge"
)

// activityMultipliers map activity level to the TDEE multiplier.
// Unknown levels fall back to moderate.
var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// BMI computes body mass index from weight in kg and height in meters.
func BMI(weightKg, heightM float64) float64 {
	return weightKg / (heightM * heightM)
}

// Categorize scans the BMI range table in order and returns the first range
// containing the value. The table partitions [0,100), but a value outside it
// reports ok=false rather than panicking.
func Categorize(bmi float64, ranges []knowledge.BMIRange) (knowledge.BMIRange, bool) {
	for _, r := range ranges {
		if bmi >= r.Lower && bmi < r.Upper {
			return r, true
		}
	}
	return knowledge.BMIRange{}, false
}

// DailyWaterLiters computes the daily water target: weight * liters-per-kg,
// clamped to the configured min/max, rounded to one decimal.
func DailyWaterLiters(weightKg float64, w knowledge.WaterDefaults) float64 {
	liters := weightKg * w.LitersPerKg
	if liters < w.Min {
		liters = w.Min
	}
	if liters > w.Max {
		liters = w.Max
	}
	return math.Round(liters*10) / 10
}

// BMR computes basal metabolic rate with the revised Harris-Benedict
// equation. A gender of "male" (case-insensitive) selects the male formula;
// any other value uses the female formula, preserving the source behavior.
func BMR(age int, gender string, weightKg, heightCm float64) float64 {
	if strings.EqualFold(strings.TrimSpace(gender), "male") {
		return 88.362 + 13.397*weightKg + 4.799*heightCm - 5.677*float64(age)
	}
	return 447.593 + 9.247*weightKg + 3.098*heightCm - 4.330*float64(age)
}

// CalorieNeeds computes total daily energy expenditure: BMR times the
// activity multiplier, rounded to the nearest integer.
func CalorieNeeds(age int, gender string, weightKg, heightCm float64, activity string) int {
	multiplier, ok := activityMultipliers[strings.ToLower(strings.TrimSpace(activity))]
	if !ok {
		multiplier = activityMultipliers["moderate"]
	}
	return int(math.Round(BMR(age, gender, weightKg, heightCm) * multiplier))
}

// StepGoal returns the daily step target for an activity level.
func StepGoal(activity string) int {
	switch strings.ToLower(strings.TrimSpace(activity)) {
	case "active", "very_active":
		return 10000
	default:
		return 7500
	}
}
