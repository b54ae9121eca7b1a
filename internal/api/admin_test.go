package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/healthnest/healthnest-be/internal/api/middleware"
	"github.com/healthnest/healthnest-be/internal/knowledge"
	"github.com/healthnest/healthnest-be/internal/retrieval"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "test-secret"

func adminRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-key"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}

	store := knowledge.Defaults()
	engine := retrieval.New(store.Corpus, retrieval.Options{})
	handler := NewAdminHandler(engine, nil, string(hash), testJWTSecret)

	router := gin.New()
	group := router.Group("/api/admin")
	group.POST("/login", handler.Login)
	protected := group.Group("")
	protected.Use(middleware.AdminAuth(testJWTSecret))
	protected.GET("/stats", handler.Stats)
	protected.GET("/logs", handler.RecentLogs)
	return router
}

func TestAdminLogin(t *testing.T) {
	router := adminRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/admin/login", `{"key": "correct-key"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("POST /api/admin/login status = %d, want 200", w.Code)
	}

	resp := decode(t, w)
	if token, ok := resp["token"].(string); !ok || token == "" {
		t.Errorf("login response = %v, want a token", resp)
	}
}

func TestAdminLogin_WrongKey(t *testing.T) {
	router := adminRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/admin/login", `{"key": "wrong-key"}`)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("POST /api/admin/login status = %d, want 401", w.Code)
	}
}

func TestAdminStats_RequiresToken(t *testing.T) {
	router := adminRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/admin/stats", "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("GET /api/admin/stats status = %d without a token, want 401", w.Code)
	}
}

func TestAdminStats_WithToken(t *testing.T) {
	router := adminRouter(t)

	login := doJSON(t, router, http.MethodPost, "/api/admin/login", `{"key": "correct-key"}`)
	if login.Code != http.StatusOK {
		t.Fatalf("login status = %d, want 200", login.Code)
	}
	token := decode(t, login)["token"].(string)

	req := newAuthedRequest(t, http.MethodGet, "/api/admin/stats", token)
	w := doRequest(router, req)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/admin/stats status = %d, want 200", w.Code)
	}

	resp := decode(t, w)
	if resp["corpus_size"] == 0.0 {
		t.Errorf("corpus_size = %v, want the fitted corpus size", resp["corpus_size"])
	}
	if _, ok := resp["vocabulary_size"]; !ok {
		t.Errorf("stats = %v, want a vocabulary_size figure", resp)
	}
}

func TestAdminStats_RejectsGarbageToken(t *testing.T) {
	router := adminRouter(t)

	req := newAuthedRequest(t, http.MethodGet, "/api/admin/stats", "not-a-jwt")
	w := doRequest(router, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("GET /api/admin/stats status = %d with a garbage token, want 401", w.Code)
	}
}

func TestAdminLogs_WithoutDatabase(t *testing.T) {
	router := adminRouter(t)

	login := doJSON(t, router, http.MethodPost, "/api/admin/login", `{"key": "correct-key"}`)
	token := decode(t, login)["token"].(string)

	req := newAuthedRequest(t, http.MethodGet, "/api/admin/logs", token)
	w := doRequest(router, req)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("GET /api/admin/logs status = %d without a database, want 503", w.Code)
	}
}
