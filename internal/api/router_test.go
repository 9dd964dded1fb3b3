package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"jalmitra/internal/config"

	"github.com/gin-gonic/gin"
)

func TestSetupRouter_BasicRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	r := SetupRouter(cfg, Deps{Chat: &stubChat{}})

	// Health route should exist and return 200
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/health", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("GET /health should return 200, got %d", w.Code)
	}

	// Suggestions route should exist and return 200
	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest("GET", "/suggestions", nil)
	r.ServeHTTP(w2, req2)
	if w2.Code != http.StatusOK {
		t.Errorf("GET /suggestions should return 200, got %d", w2.Code)
	}
}

func TestSetupRouter_Subpath(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Server.Subpath = "/jalmitra"
	r := SetupRouter(cfg, Deps{Chat: &stubChat{}})

	// Should correctly prefix routes with subpath
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/jalmitra/health", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("GET /jalmitra/health should return 200, got %d", w.Code)
	}
}
