package api

import (
	"context"
	"net/http"
	"time"

	"jalmitra/internal/db"
	"jalmitra/internal/lang"

	"github.com/gin-gonic/gin"
)

// GET /health
func HealthHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := gin.H{
			"status": "ok",
		}
		if deps.Index != nil {
			resp["indexed_chunks"] = deps.Index.Len()
		}
		if deps.Breaker != nil {
			resp["ollama"] = deps.Breaker.Stats()
		}
		if deps.Redis != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			if err := deps.Redis.Ping(ctx).Err(); err != nil {
				resp["redis"] = "down"
			} else {
				resp["redis"] = "up"
			}
			cancel()
		}
		if db.DB != nil {
			if sqlDB, err := db.DB.DB(); err != nil || sqlDB.Ping() != nil {
				resp["db"] = "down"
			} else {
				resp["db"] = "up"
			}
		}
		c.JSON(http.StatusOK, resp)
	}
}

// GET /suggestions?language=hi
func SuggestionsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		language := c.Query("language")
		if !lang.Supported(language) {
			language = lang.English
		}
		c.JSON(http.StatusOK, gin.H{
			"language":    language,
			"suggestions": lang.SuggestedQuestions(language),
		})
	}
}
