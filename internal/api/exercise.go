package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/healthnest/healthnest-be/internal/exercise"
)

// ExerciseHandler serves rule-based exercise recommendations
type ExerciseHandler struct{}

// NewExerciseHandler creates a new exercise handler
func NewExerciseHandler() *ExerciseHandler {
	return &ExerciseHandler{}
}

// RecommendExerciseRequest represents the exercise recommendation request.
// Weight is in kg; goal is weight_loss, muscle_gain or general.
type RecommendExerciseRequest struct {
	Weight *float64 `json:"weight"`
	Goal   string   `json:"goal"`
}

// RecommendExercise returns the exercise plan for a goal
func (h *ExerciseHandler) RecommendExercise(c *gin.Context) {
	var req RecommendExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Weight is required"})
		return
	}

	if req.Weight == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Weight is required"})
		return
	}

	goal := req.Goal
	if goal == "" {
		goal = "general"
	}

	recs := exercise.Recommend(*req.Weight, goal)

	c.JSON(http.StatusOK, gin.H{
		"goal":                  goal,
		"recommended_exercises": recs,
		"total_calories":        exercise.TotalCalories(recs),
	})
}
