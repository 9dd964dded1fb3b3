package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// HistoryEntry is one recorded turn of a conversation.
type HistoryEntry struct {
	Role     string    `json:"role"` // "user" or "bot"
	Text     string    `json:"text"`
	Language string    `json:"language"`
	At       time.Time `json:"at"`
}

// History keeps a capped per-session transcript in a Redis list.
type History struct {
	rdb   *redis.Client
	limit int64
	ttl   time.Duration
}

// NewHistory caps each transcript at limit entries.
func NewHistory(rdb *redis.Client, limit int, ttl time.Duration) *History {
	if limit <= 0 {
		limit = 50
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &History{rdb: rdb, limit: int64(limit), ttl: ttl}
}

func historyKey(sessionID string) string {
	return fmt.Sprintf("chat_history:%s", sessionID)
}

// Append records a turn and trims the transcript to the cap.
func (h *History) Append(ctx context.Context, sessionID string, entries ...HistoryEntry) error {
	if len(entries) == 0 {
		return nil
	}
	key := historyKey(sessionID)
	pipe := h.rdb.TxPipeline()
	for _, e := range entries {
		raw, err := json.Marshal(e)
		if err != nil {
			return err
		}
		pipe.RPush(ctx, key, raw)
	}
	pipe.LTrim(ctx, key, -h.limit, -1)
	pipe.Expire(ctx, key, h.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	return nil
}

// List returns the transcript oldest first.
func (h *History) List(ctx context.Context, sessionID string) ([]HistoryEntry, error) {
	raws, err := h.rdb.LRange(ctx, historyKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	entries := make([]HistoryEntry, 0, len(raws))
	for _, raw := range raws {
		var e HistoryEntry
		if err := json.Unmarshal([]byte(raw), &e); err != nil {
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Clear removes the transcript.
func (h *History) Clear(ctx context.Context, sessionID string) error {
	return h.rdb.Del(ctx, historyKey(sessionID)).Err()
}
