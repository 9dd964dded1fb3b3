package api

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"jalmitra/internal/engine"
	"jalmitra/internal/grievance"
	"jalmitra/internal/intent"
	"jalmitra/internal/lang"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type QueryRequest struct {
	SessionID string `json:"session_id"`
	InputText string `json:"input_text"`
	Language  string `json:"language"`
}

type QueryResponse struct {
	SessionID string       `json:"session_id"`
	Reply     string       `json:"reply"`
	Language  string       `json:"language"`
	Stage     engine.Stage `json:"stage"`
}

// POST /query
func QueryHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req QueryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Invalid request"}})
			return
		}
		if strings.TrimSpace(req.InputText) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "input_text is required"}})
			return
		}
		if req.SessionID == "" {
			req.SessionID = uuid.NewString()
		}
		turn, err := deps.Chat.ProcessTurn(c.Request.Context(), req.SessionID, req.InputText, req.Language)
		if err != nil {
			log.Printf("[API] ProcessTurn failed for session %s: %v", req.SessionID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to process message"}})
			return
		}
		recordHistory(c, deps, req.SessionID, req.InputText, turn)
		c.JSON(http.StatusOK, QueryResponse{
			SessionID: req.SessionID,
			Reply:     turn.Reply,
			Language:  turn.Language,
			Stage:     turn.Stage,
		})
	}
}

func recordHistory(c *gin.Context, deps Deps, sessionID, input string, turn engine.Turn) {
	if deps.History == nil {
		return
	}
	now := time.Now()
	entries := []engine.HistoryEntry{}
	if input != "" {
		entries = append(entries, engine.HistoryEntry{Role: "user", Text: input, Language: turn.Language, At: now})
	}
	entries = append(entries, engine.HistoryEntry{Role: "bot", Text: turn.Reply, Language: turn.Language, At: now})
	if err := deps.History.Append(c.Request.Context(), sessionID, entries...); err != nil {
		log.Printf("[API] Failed to record history for session %s: %v", sessionID, err)
	}
}

type StartSessionRequest struct {
	Language string `json:"language"`
}

// POST /sessions/start
func StartSessionHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req StartSessionRequest
		// Body is optional; an empty one means auto-detect later.
		_ = c.ShouldBindJSON(&req)

		sessionID := uuid.NewString()
		turn, err := deps.Chat.ProcessTurn(c.Request.Context(), sessionID, "", req.Language)
		if err != nil {
			log.Printf("[API] Failed to start session: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to start session"}})
			return
		}
		recordHistory(c, deps, sessionID, "", turn)
		c.JSON(http.StatusOK, QueryResponse{
			SessionID: sessionID,
			Reply:     turn.Reply,
			Language:  turn.Language,
			Stage:     turn.Stage,
		})
	}
}

// DELETE /sessions/:id
func EndSessionHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("id")
		if err := deps.Chat.EndSession(c.Request.Context(), sessionID); err != nil {
			log.Printf("[API] Failed to end session %s: %v", sessionID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to end session"}})
			return
		}
		if deps.History != nil {
			_ = deps.History.Clear(c.Request.Context(), sessionID)
		}
		c.JSON(http.StatusOK, gin.H{"message": "Session ended"})
	}
}

// GET /chat-history?session_id=...
func ChatHistoryHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Query("session_id")
		if sessionID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "session_id is required"}})
			return
		}
		if deps.History == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": gin.H{"message": "History not available"}})
			return
		}
		entries, err := deps.History.List(c.Request.Context(), sessionID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Failed to load history"}})
			return
		}
		c.JSON(http.StatusOK, gin.H{"session_id": sessionID, "history": entries})
	}
}

type StatusRequest struct {
	Identifier string `json:"identifier"`
	Language   string `json:"language"`
}

// POST /grievance/status
func GrievanceStatusHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req StatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Invalid request"}})
			return
		}
		language := req.Language
		if !lang.Supported(language) {
			language = lang.English
		}
		if deps.Grievances == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": gin.H{"message": "Status lookup not available"}})
			return
		}

		value, kind, ok := intent.Resolve(req.Identifier)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": lang.Message(lang.MsgBadIdentifier, language)}})
			return
		}

		var status string
		var err error
		if kind == intent.KindMobile {
			var recs []grievance.Record
			recs, err = deps.Grievances.ByMobile(c.Request.Context(), value)
			if err == nil {
				status = grievance.FormatStatusList(recs, language)
			}
		} else {
			var rec *grievance.Record
			rec, err = deps.Grievances.ByID(c.Request.Context(), value)
			if err == nil {
				status = grievance.FormatStatus(rec, language)
			}
		}
		if errors.Is(err, grievance.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": lang.Message(lang.MsgStatusNotFound, language)}})
			return
		}
		if err != nil {
			log.Printf("[API] Status lookup failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": lang.Message(lang.MsgGenericError, language)}})
			return
		}
		c.JSON(http.StatusOK, gin.H{"language": language, "status": status})
	}
}
