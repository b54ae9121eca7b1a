package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports liveness and which optional resources loaded
type HealthHandler struct {
	qaLoaded        func() bool
	predictorLoaded bool
	dbConnected     bool
}

// NewHealthHandler creates a new health handler. qaLoaded is queried per
// request so it reflects the retrieval engine's actual state.
func NewHealthHandler(qaLoaded func() bool, predictorLoaded, dbConnected bool) *HealthHandler {
	return &HealthHandler{
		qaLoaded:        qaLoaded,
		predictorLoaded: predictorLoaded,
		dbConnected:     dbConnected,
	}
}

// Health returns the liveness response with per-resource flags
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"models_loaded": gin.H{
			"qa_model":          h.qaLoaded(),
			"calorie_predictor": h.predictorLoaded,
			"knowledge_base":    true,
			"database":          h.dbConnected,
		},
	})
}

// Home returns the service banner with the endpoint list
func (h *HealthHandler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "HealthNest Backend API",
		"version": "1.0.0",
		"status":  "running",
		"endpoints": gin.H{
			"/chat":               "POST - Chat with health assistant",
			"/health-check":       "POST - Get personalized health analysis",
			"/predict-calories":   "POST - Predict food calories",
			"/recommend-exercise": "POST - Get exercise recommendations",
			"/pregnancy-info":     "GET - Get pregnancy week info",
			"/health":             "GET - API health status",
			"/ws/chat":            "GET - WebSocket chat",
		},
	})
}
