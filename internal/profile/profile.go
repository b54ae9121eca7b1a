package profile

import "strings"

// Profile carries the optional user details sent with a chat or health-check
// request. Every field is optional; each computation declares its own
// minimum-field requirement and is skipped when it is not met.
type Profile struct {
	Age      *int     `json:"age,omitempty"`
	Gender   *string  `json:"gender,omitempty"`
	WeightKg *float64 `json:"weight,omitempty"`
	HeightCm *float64 `json:"height,omitempty"`
	Activity *string  `json:"activity,omitempty"`
}

// HasBodyMetrics reports whether weight and height are both present,
// which is enough to compute BMI.
func (p *Profile) HasBodyMetrics() bool {
	return p != nil && p.WeightKg != nil && p.HeightCm != nil
}

// IsComplete reports whether every field needed for a calorie calculation
// is present.
func (p *Profile) IsComplete() bool {
	return p != nil && p.Age != nil && p.Gender != nil &&
		p.WeightKg != nil && p.HeightCm != nil && p.Activity != nil
}

// ActivityLevel returns the normalized activity level, or "moderate" when
// the field is absent.
func (p *Profile) ActivityLevel() string {
	if p == nil || p.Activity == nil {
		return "moderate"
	}
	return strings.ToLower(strings.TrimSpace(*p.Activity))
}
