package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/healthnest/healthnest-be/internal/api/middleware"
	"github.com/healthnest/healthnest-be/internal/db"
	"github.com/healthnest/healthnest-be/internal/retrieval"
	"golang.org/x/crypto/bcrypt"
)

// AdminHandler handles the operator endpoints. The database is optional and
// may be nil.
type AdminHandler struct {
	engine       *retrieval.Engine
	db           *db.DB
	adminKeyHash string
	jwtSecret    string
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(engine *retrieval.Engine, database *db.DB, adminKeyHash, jwtSecret string) *AdminHandler {
	return &AdminHandler{
		engine:       engine,
		db:           database,
		adminKeyHash: adminKeyHash,
		jwtSecret:    jwtSecret,
	}
}

// LoginRequest represents the admin login request
type LoginRequest struct {
	Key string `json:"key" binding:"required"`
}

// Login exchanges the admin API key for a short-lived JWT
func (h *AdminHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(h.adminKeyHash), []byte(req.Key)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	claims := &middleware.JWTClaims{
		Admin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(12 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.jwtSecret))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Stats reports retrieval-engine and chat-log figures
func (h *AdminHandler) Stats(c *gin.Context) {
	stats := gin.H{
		"corpus_size":     h.engine.CorpusSize(),
		"vocabulary_size": h.engine.VocabularySize(),
		"cache_entries":   h.engine.CacheLen(),
	}

	if h.db != nil {
		count, err := h.db.CountChatLogs(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count chat logs"})
			return
		}
		stats["chat_logs"] = count
	}

	c.JSON(http.StatusOK, stats)
}

// RecentLogs returns the latest recorded chat exchanges
func (h *AdminHandler) RecentLogs(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Chat logging is not enabled"})
		return
	}

	logs, err := h.db.RecentChatLogs(c.Request.Context(), 50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load chat logs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs})
}
