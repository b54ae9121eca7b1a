package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/healthnest/healthnest-be/internal/predictor"
)

// CaloriesHandler predicts food calories from macronutrients. model is nil
// when the coefficient file failed to load.
type CaloriesHandler struct {
	model *predictor.Model
}

// NewCaloriesHandler creates a new calorie prediction handler
func NewCaloriesHandler(model *predictor.Model) *CaloriesHandler {
	return &CaloriesHandler{model: model}
}

// PredictCaloriesRequest represents the calorie prediction request, all
// values in grams.
type PredictCaloriesRequest struct {
	Protein *float64 `json:"protein"`
	Carbs   *float64 `json:"carbs"`
	Fat     *float64 `json:"fat"`
}

// PredictCalories estimates calories for the given macros
func (h *CaloriesHandler) PredictCalories(c *gin.Context) {
	var req PredictCaloriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing protein, carbs, or fat values"})
		return
	}

	if req.Protein == nil || req.Carbs == nil || req.Fat == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing protein, carbs, or fat values"})
		return
	}

	if h.model == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Calorie predictor not available"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"protein_g":          *req.Protein,
		"carbs_g":            *req.Carbs,
		"fat_g":              *req.Fat,
		"predicted_calories": h.model.Predict(*req.Protein, *req.Carbs, *req.Fat),
	})
}
