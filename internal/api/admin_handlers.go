package api

import (
	"log"
	"net/http"
	"time"

	"jalmitra/internal/auth"
	"jalmitra/internal/config"
	"jalmitra/internal/ratings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

const adminUsername = "admin"

type LoginRequest struct {
	Password string `json:"password"`
}

type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// POST /admin/login
func AdminLoginHandler(cfg *config.Config, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.Server.AdminPasswordHash == "" {
			c.JSON(http.StatusForbidden, gin.H{"error": gin.H{"message": "Admin access not configured"}})
			return
		}
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Invalid request"}})
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(cfg.Server.AdminPasswordHash), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Invalid password"}})
			return
		}
		token, err := auth.GenerateJWT(cfg.Server.JWTSecret, adminUsername, auth.RoleAdmin, 7*24*time.Hour)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to generate token"}})
			return
		}
		_ = auth.SetSession(rdb, adminUsername, token, 7*24*time.Hour)
		c.JSON(http.StatusOK, LoginResponse{
			Token:    token,
			Username: adminUsername,
			Role:     auth.RoleAdmin,
		})
	}
}

// POST /admin/logout
func AdminLogoutHandler(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, exists := c.Get("username")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Not authenticated"}})
			return
		}
		_ = auth.DeleteSession(rdb, username.(string))
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

// POST /admin/reload
func ReloadHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps.Reloader == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": gin.H{"message": "Reload not available"}})
			return
		}
		count, err := deps.Reloader.Reload()
		if err != nil {
			log.Printf("[API] Knowledge base reload failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Reload failed"}})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Knowledge base reloaded", "indexed_chunks": count})
	}
}

// GET /admin/ratings.csv
func RatingsCSVHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps.Ratings == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": gin.H{"message": "Ratings not available"}})
			return
		}
		list, err := deps.Ratings.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to load ratings"}})
			return
		}
		c.Header("Content-Disposition", `attachment; filename="ratings.csv"`)
		c.Header("Content-Type", "text/csv")
		c.Status(http.StatusOK)
		if err := ratings.WriteCSV(c.Writer, list); err != nil {
			log.Printf("[API] Failed to write ratings CSV: %v", err)
		}
	}
}
