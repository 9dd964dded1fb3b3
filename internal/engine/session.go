// Package engine drives the conversation: per-session dialogue stages,
// scripted flows, grievance status lookup and the hand-off to the
// retrieval pipeline for free-text questions.
package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Stage is the dialogue position of a session.
type Stage string

const (
	StageInitial                 Stage = "initial"
	StageAwaitingInitialResponse Stage = "awaiting_initial_response"
	StageRegistrationInfoShown   Stage = "registration_info_shown"
	StageFeedbackQuestion        Stage = "feedback_question"
	StageRatingRequest           Stage = "rating_request"
	StageWaitingForIdentifier    Stage = "waiting_for_identifier"
	StageStatusShown             Stage = "status_shown"
	StageCompleted               Stage = "completed"
)

// ErrSessionNotFound is returned by stores for unknown session IDs.
var ErrSessionNotFound = errors.New("engine: session not found")

// Session is the persisted dialogue state.
type Session struct {
	ID           string    `json:"id"`
	Stage        Stage     `json:"stage"`
	Language     string    `json:"language"`
	LastActivity time.Time `json:"last_activity"`
}

// Store persists sessions. Implementations must be safe for concurrent
// use.
type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Put(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
}

// RedisStore keeps sessions as JSON values with a sliding TTL.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStore wraps rdb. Sessions idle longer than ttl expire.
func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func sessionKey(id string) string {
	return fmt.Sprintf("chat_session:%s", id)
}

func (s *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	raw, err := s.rdb.Get(ctx, sessionKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	var sess Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &sess, nil
}

func (s *RedisStore) Put(ctx context.Context, sess *Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, sessionKey(sess.ID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("put session: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.rdb.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// MemoryStore is an in-process Store used in tests and single-node
// deployments without Redis.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]Session)}
}

func (m *MemoryStore) Get(_ context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	out := s
	return &out, nil
}

func (m *MemoryStore) Put(_ context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = *s
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}
