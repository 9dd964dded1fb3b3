package ollama

import (
	"log"
	"sync"
	"time"
)

// BreakerState is the current mode of the circuit breaker.
type BreakerState string

const (
	StateClosed   BreakerState = "closed"
	StateOpen     BreakerState = "open"
	StateHalfOpen BreakerState = "half-open"
)

// Breaker stops requests to the model server after repeated failures and
// probes it again once the reset timeout elapses.
type Breaker struct {
	mu              sync.RWMutex
	state           BreakerState
	failureCount    int
	probeSuccesses  int
	lastFailureTime time.Time

	failureThreshold int
	successThreshold int
	resetTimeout     time.Duration

	totalRequests   int64
	totalFailures   int64
	totalRejections int64
}

// NewBreaker opens after failureThreshold consecutive failures and stays
// open for resetTimeout before probing again.
func NewBreaker(failureThreshold int, resetTimeout time.Duration) *Breaker {
	if failureThreshold < 1 {
		failureThreshold = 3
	}
	if resetTimeout < time.Second {
		resetTimeout = time.Minute
	}
	return &Breaker{
		state:            StateClosed,
		failureThreshold: failureThreshold,
		successThreshold: 2,
		resetTimeout:     resetTimeout,
	}
}

// Call runs fn unless the circuit is open.
func (b *Breaker) Call(fn func() error) error {
	if err := b.before(); err != nil {
		return err
	}
	err := fn()
	b.after(err)
	return err
}

func (b *Breaker) before() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.totalRequests++
	switch b.state {
	case StateOpen:
		if time.Since(b.lastFailureTime) > b.resetTimeout {
			b.state = StateHalfOpen
			b.probeSuccesses = 0
			log.Printf("[Ollama] Breaker open -> half-open, probing model server")
			return nil
		}
		b.totalRejections++
		return ErrCircuitOpen
	default:
		return nil
	}
}

func (b *Breaker) after(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err != nil {
		b.totalFailures++
		b.failureCount++
		b.probeSuccesses = 0
		b.lastFailureTime = time.Now()
		switch b.state {
		case StateClosed:
			if b.failureCount >= b.failureThreshold {
				b.state = StateOpen
				log.Printf("[Ollama] Breaker closed -> open after %d failures", b.failureCount)
			}
		case StateHalfOpen:
			b.state = StateOpen
			log.Printf("[Ollama] Breaker half-open -> open, probe failed")
		}
		return
	}

	switch b.state {
	case StateClosed:
		b.failureCount = 0
	case StateHalfOpen:
		b.probeSuccesses++
		if b.probeSuccesses >= b.successThreshold {
			b.state = StateClosed
			b.failureCount = 0
			log.Printf("[Ollama] Breaker half-open -> closed, model server recovered")
		}
	}
}

// State returns the current breaker state.
func (b *Breaker) State() BreakerState {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.state
}

// Stats reports counters for the health endpoint.
func (b *Breaker) Stats() map[string]any {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return map[string]any{
		"state":            string(b.state),
		"total_requests":   b.totalRequests,
		"total_failures":   b.totalFailures,
		"total_rejections": b.totalRejections,
		"failure_count":    b.failureCount,
	}
}
