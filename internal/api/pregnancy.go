package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/healthnest/healthnest-be/internal/knowledge"
)

// PregnancyHandler serves the week-by-week pregnancy table
type PregnancyHandler struct {
	store *knowledge.Store
}

// NewPregnancyHandler creates a new pregnancy info handler
func NewPregnancyHandler(store *knowledge.Store) *PregnancyHandler {
	return &PregnancyHandler{store: store}
}

// PregnancyInfo returns the record for the ?week=N query parameter
func (h *PregnancyHandler) PregnancyInfo(c *gin.Context) {
	week, err := strconv.Atoi(c.Query("week"))
	if err != nil || week < 1 || week > 42 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid week number (1-42)"})
		return
	}

	info, err := h.store.Week(week)
	if err != nil {
		if errors.Is(err, knowledge.ErrWeekNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Week data not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"week":             info.Week,
		"baby_development": info.BabyDevelopment,
		"mother_changes":   info.MotherChanges,
		"advice":           info.Advice,
		"trimester":        info.Trimester,
	})
}
