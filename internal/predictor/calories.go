// Package predictor estimates food calories from macronutrients with a
// linear model loaded from a JSON coefficient file.
package predictor

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// Model holds the fitted linear coefficients: one weight per macronutrient
// gram plus an intercept.
type Model struct {
	Intercept float64 `json:"intercept"`
	Protein   float64 `json:"protein"`
	Carbs     float64 `json:"carbs"`
	Fat       float64 `json:"fat"`
}

// Load reads a coefficient file. A missing or malformed file is an error;
// callers are expected to treat that as "predictor unavailable" rather than
// aborting.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read calorie model: %w", err)
	}

	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse calorie model: %w", err)
	}
	if m.Protein == 0 && m.Carbs == 0 && m.Fat == 0 {
		return nil, fmt.Errorf("calorie model has no coefficients")
	}
	return &m, nil
}

// Predict estimates calories for the given macronutrient grams, rounded to
// the nearest integer.
func (m *Model) Predict(proteinG, carbsG, fatG float64) int {
	return int(math.Round(m.Intercept + m.Protein*proteinG + m.Carbs*carbsG + m.Fat*fatG))
}
