package metrics

import (
	"math"
	"testing"

	"github.com/healthnest/healthnest-be/internal/knowledge"
)

func TestBMI(t *testing.T) {
	got := BMI(65, 1.65)
	if math.Abs(got-23.875) > 0.01 {
		t.Errorf("BMI(65, 1.65) = %v, want ≈23.875", got)
	}
}

func TestCategorize_Boundaries(t *testing.T) {
	ranges := knowledge.Defaults().BMIRanges

	tests := []struct {
		bmi  float64
		want string
	}{
		{18.4, "underweight"},
		{18.5, "normal"},
		{24.9, "normal"},
		{25.0, "overweight"},
		{29.9, "overweight"},
		{30.0, "obese"},
	}

	for _, tt := range tests {
		rng, ok := Categorize(tt.bmi, ranges)
		if !ok {
			t.Errorf("Categorize(%v) ok = false, want a category", tt.bmi)
			continue
		}
		if rng.Category != tt.want {
			t.Errorf("Categorize(%v) = %q, want %q", tt.bmi, rng.Category, tt.want)
		}
	}
}

func TestCategorize_OutOfBounds(t *testing.T) {
	ranges := knowledge.Defaults().BMIRanges

	if _, ok := Categorize(150, ranges); ok {
		t.Error("Categorize(150) ok = true, want false outside the partition")
	}
	if _, ok := Categorize(-1, ranges); ok {
		t.Error("Categorize(-1) ok = true, want false outside the partition")
	}
}

func TestCategorize_ContainsValue(t *testing.T) {
	ranges := knowledge.Defaults().BMIRanges

	for bmi := 1.0; bmi < 100; bmi += 0.7 {
		rng, ok := Categorize(bmi, ranges)
		if !ok {
			t.Errorf("Categorize(%v) found no category inside [0,100)", bmi)
			continue
		}
		if bmi < rng.Lower || bmi >= rng.Upper {
			t.Errorf("Categorize(%v) returned range [%v,%v) not containing the value", bmi, rng.Lower, rng.Upper)
		}
	}
}

func TestDailyWaterLiters(t *testing.T) {
	w := knowledge.Defaults().Water

	tests := []struct {
		weight float64
		want   float64
	}{
		{65, 2.1},  // 65 * 0.033 = 2.145
		{40, 2.0},  // clamped to min
		{150, 4.0}, // clamped to max
		{100, 3.3},
	}

	for _, tt := range tests {
		got := DailyWaterLiters(tt.weight, w)
		if got != tt.want {
			t.Errorf("DailyWaterLiters(%v) = %v, want %v", tt.weight, got, tt.want)
		}
	}
}

func TestDailyWaterLiters_Monotonic(t *testing.T) {
	w := knowledge.Defaults().Water

	prev := 0.0
	for weight := 30.0; weight <= 160; weight += 2.5 {
		got := DailyWaterLiters(weight, w)
		if got < prev {
			t.Errorf("DailyWaterLiters(%v) = %v decreased from %v", weight, got, prev)
		}
		prev = got
	}
}

func TestBMR(t *testing.T) {
	tests := []struct {
		name           string
		age            int
		gender         string
		weight, height float64
		want           float64
	}{
		{"female", 30, "female", 65, 165, 1429.918},
		{"male", 25, "male", 80, 180, 1882.017},
		{"male case-insensitive", 25, "Male", 80, 180, 1882.017},
		{"unspecified uses female formula", 30, "", 65, 165, 1429.918},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BMR(tt.age, tt.gender, tt.weight, tt.height)
			if math.Abs(got-tt.want) > 0.01 {
				t.Errorf("BMR() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCalorieNeeds(t *testing.T) {
	tests := []struct {
		name     string
		age      int
		gender   string
		weight   float64
		height   float64
		activity string
		want     int
	}{
		{"moderate female", 30, "female", 65, 165, "moderate", 2216},
		{"sedentary male", 25, "male", 80, 180, "sedentary", 2258},
		{"unknown activity falls back to moderate", 30, "female", 65, 165, "extreme", 2216},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalorieNeeds(tt.age, tt.gender, tt.weight, tt.height, tt.activity)
			if got != tt.want {
				t.Errorf("CalorieNeeds() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStepGoal(t *testing.T) {
	tests := []struct {
		activity string
		want     int
	}{
		{"sedentary", 7500},
		{"light", 7500},
		{"moderate", 7500},
		{"active", 10000},
		{"very_active", 10000},
		{"", 7500},
	}

	for _, tt := range tests {
		if got := StepGoal(tt.activity); got != tt.want {
			t.Errorf("StepGoal(%q) = %v, want %v", tt.activity, got, tt.want)
		}
	}
}
