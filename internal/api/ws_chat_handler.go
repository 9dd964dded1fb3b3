package api

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var wsUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WebSocket connection wrapper with mutex for thread-safe writes
type safeWSConn struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (s *safeWSConn) WriteJSON(v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteJSON(v)
}

func (s *safeWSConn) ReadMessage() (int, []byte, error) {
	return s.conn.ReadMessage()
}

func (s *safeWSConn) Close() error {
	return s.conn.Close()
}

// WSChatHandler runs the dialogue over a WebSocket. Each client message
// is a QueryRequest; each reply is a QueryResponse. The session sticks
// to the connection after the first message.
func WSChatHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawConn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Println("WebSocket upgrade failed:", err)
			return
		}
		conn := &safeWSConn{conn: rawConn}
		defer conn.Close()

		sessionID := c.Query("session_id")
		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var req QueryRequest
			if err := json.Unmarshal(msg, &req); err != nil {
				conn.WriteJSON(map[string]string{"error": "invalid JSON"})
				continue
			}
			if req.SessionID != "" {
				sessionID = req.SessionID
			}

			turn, err := deps.Chat.ProcessTurn(c.Request.Context(), sessionID, req.InputText, req.Language)
			if err != nil {
				log.Printf("[API] WS ProcessTurn failed for session %s: %v", sessionID, err)
				conn.WriteJSON(map[string]string{"error": "failed to process message"})
				continue
			}
			recordHistory(c, deps, sessionID, req.InputText, turn)
			conn.WriteJSON(QueryResponse{
				SessionID: sessionID,
				Reply:     turn.Reply,
				Language:  turn.Language,
				Stage:     turn.Stage,
			})
		}
	}
}
