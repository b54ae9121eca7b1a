package api

import (
	"fmt"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/healthnest/healthnest-be/internal/knowledge"
	"github.com/healthnest/healthnest-be/internal/metrics"
)

// HealthCheckHandler runs the full body-metrics analysis
type HealthCheckHandler struct {
	store *knowledge.Store
}

// NewHealthCheckHandler creates a new health-check handler
func NewHealthCheckHandler(store *knowledge.Store) *HealthCheckHandler {
	return &HealthCheckHandler{store: store}
}

// HealthCheckRequest represents the health-check request. Weight is in kg,
// height in cm.
type HealthCheckRequest struct {
	Age      *int     `json:"age"`
	Gender   *string  `json:"gender"`
	Weight   *float64 `json:"weight"`
	Height   *float64 `json:"height"`
	Activity string   `json:"activity"`
}

// Metrics is the computed metrics block of the health-check response.
type Metrics struct {
	BMI              float64 `json:"bmi"`
	BMICategory      string  `json:"bmi_category"`
	DailyWaterLiters float64 `json:"daily_water_liters"`
	DailyCalories    int     `json:"daily_calories"`
	StepGoal         int     `json:"step_goal"`
}

// Recommendation is one piece of advice in the health-check response.
type Recommendation struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// HealthCheck computes BMI, hydration, calorie and step targets for a
// profile and returns them with per-metric recommendations.
func (h *HealthCheckHandler) HealthCheck(c *gin.Context) {
	var req HealthCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	if req.Age == nil || req.Gender == nil || req.Weight == nil || req.Height == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	activity := req.Activity
	if activity == "" {
		activity = "moderate"
	}

	bmi := metrics.BMI(*req.Weight, *req.Height/100)
	water := metrics.DailyWaterLiters(*req.Weight, h.store.Water)
	calories := metrics.CalorieNeeds(*req.Age, *req.Gender, *req.Weight, *req.Height, activity)
	stepGoal := metrics.StepGoal(activity)

	category := "unknown"
	var recommendations []Recommendation

	if rng, ok := metrics.Categorize(bmi, h.store.BMIRanges); ok {
		category = rng.Category
		recommendations = append(recommendations, Recommendation{
			Type:    "BMI",
			Message: fmt.Sprintf("Your BMI is %.1f (%s). %s", bmi, rng.Category, rng.Advice),
		})
	}

	recommendations = append(recommendations,
		Recommendation{
			Type:    "Hydration",
			Message: fmt.Sprintf("Drink at least %.1f liters of water daily.", water),
		},
		Recommendation{
			Type:    "Calories",
			Message: fmt.Sprintf("Your daily calorie target: %d kcal (based on %s activity level).", calories, activity),
		},
		Recommendation{
			Type:    "Steps",
			Message: fmt.Sprintf("Aim for %d steps per day to stay healthy.", stepGoal),
		},
	)

	c.JSON(http.StatusOK, gin.H{
		"metrics": Metrics{
			BMI:              math.Round(bmi*10) / 10,
			BMICategory:      category,
			DailyWaterLiters: water,
			DailyCalories:    calories,
			StepGoal:         stepGoal,
		},
		"recommendations": recommendations,
	})
}
