package api

import (
	"context"

	"jalmitra/internal/auth"
	"jalmitra/internal/config"
	"jalmitra/internal/engine"
	"jalmitra/internal/ollama"
	"jalmitra/internal/rag"
	"jalmitra/internal/ratings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Chat is the dialogue surface exposed to the HTTP layer.
type Chat interface {
	ProcessTurn(ctx context.Context, sessionID, input, language string) (engine.Turn, error)
	EndSession(ctx context.Context, sessionID string) error
}

// HistoryStore records and serves per-session transcripts.
type HistoryStore interface {
	Append(ctx context.Context, sessionID string, entries ...engine.HistoryEntry) error
	List(ctx context.Context, sessionID string) ([]engine.HistoryEntry, error)
	Clear(ctx context.Context, sessionID string) error
}

// RatingsLister serves collected ratings for the admin export.
type RatingsLister interface {
	List(ctx context.Context) ([]ratings.Rating, error)
}

// Reloader rebuilds the knowledge base behind the answering pipeline.
type Reloader interface {
	Reload() (int, error)
}

// Deps carries everything the handlers need. History, Grievances,
// Ratings, Breaker and Reloader may be nil when the corresponding
// backend is not deployed; the affected endpoints degrade gracefully.
type Deps struct {
	Chat       Chat
	History    HistoryStore
	Grievances engine.GrievanceLookup
	Ratings    RatingsLister
	Index      *rag.Index
	Breaker    *ollama.Breaker
	Reloader   Reloader
	Redis      *redis.Client
}

func SetupRouter(cfg *config.Config, deps Deps) *gin.Engine {
	r := gin.Default()
	subpath := cfg.Server.Subpath // e.g. "/jalmitra" or any custom path, always starts with '/'

	group := r.Group(subpath)
	{
		group.GET("/health", HealthHandler(deps))
		group.GET("/suggestions", SuggestionsHandler())

		// Chat
		group.POST("/query", QueryHandler(deps))
		group.POST("/sessions/start", StartSessionHandler(deps))
		group.DELETE("/sessions/:id", EndSessionHandler(deps))
		group.GET("/chat-history", ChatHistoryHandler(deps))

		// Direct status lookup, bypassing the dialogue flow
		group.POST("/grievance/status", GrievanceStatusHandler(deps))

		// Streaming chat
		group.GET("/ws/chat", WSChatHandler(deps))

		// Admin
		group.POST("/admin/login", AdminLoginHandler(cfg, deps.Redis))
		group.POST("/admin/logout", auth.AuthMiddleware(cfg, deps.Redis, true), AdminLogoutHandler(deps.Redis))
		group.POST("/admin/reload", auth.AuthMiddleware(cfg, deps.Redis, true), ReloadHandler(deps))
		group.GET("/admin/ratings.csv", auth.AuthMiddleware(cfg, deps.Redis, true), RatingsCSVHandler(deps))
	}
	return r
}
