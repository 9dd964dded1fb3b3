package ollama

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"response": "Jal Jeevan Mission provides tap water to rural households."}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "gemma3", 5*time.Second, nil)
	got, err := c.Generate(context.Background(), "what is jal jeevan mission", Options{MaxTokens: 100})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if got == "" {
		t.Fatal("expected non-empty response")
	}
}

func TestGenerateClassifiesConnectionError(t *testing.T) {
	// Nothing listens on this port.
	c := NewClient("http://127.0.0.1:1", "gemma3", time.Second, nil)
	_, err := c.Generate(context.Background(), "hello", Options{})
	if err == nil {
		t.Fatal("expected error")
	}
	if KindOf(err) != KindConnection {
		t.Errorf("expected connection kind, got %v", KindOf(err))
	}
	if !Retryable(err) {
		t.Error("connection errors must be retryable")
	}
}

func TestGenerateContextTooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "request too large", http.StatusRequestEntityTooLarge)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "gemma3", time.Second, nil)
	_, err := c.Generate(context.Background(), "everything", Options{})
	if KindOf(err) != KindContextTooLarge {
		t.Errorf("expected context-too-large kind, got %v", KindOf(err))
	}
	if Retryable(err) {
		t.Error("context-too-large must not be retryable")
	}
}

func TestKindOfDeadline(t *testing.T) {
	if KindOf(context.DeadlineExceeded) != KindTimeout {
		t.Error("deadline exceeded should classify as timeout")
	}
}

func TestRetryPolicyStopsOnSuccess(t *testing.T) {
	calls := 0
	p := RetryPolicy{
		MaxAttempts: 3,
		Backoff:     func(int) time.Duration { return 0 },
		Retryable:   func(error) bool { return true },
	}
	err := p.Do(context.Background(), func() error {
		calls++
		if calls < 2 {
			return &RequestError{Kind: KindConnection, Err: errors.New("connection refused")}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if calls != 2 {
		t.Errorf("expected 2 calls, got %d", calls)
	}
}

func TestRetryPolicyNonRetryable(t *testing.T) {
	calls := 0
	p := DefaultRetryPolicy(3)
	p.Backoff = func(int) time.Duration { return 0 }
	fatal := &RequestError{Kind: KindContextTooLarge, Err: errors.New("request too large")}
	err := p.Do(context.Background(), func() error {
		calls++
		return fatal
	})
	if !errors.Is(err, fatal) {
		t.Fatalf("expected the original error, got %v", err)
	}
	if calls != 1 {
		t.Errorf("non-retryable error must stop after 1 call, got %d", calls)
	}
}

func TestRetryPolicyExhaustsAttempts(t *testing.T) {
	calls := 0
	p := RetryPolicy{
		MaxAttempts: 3,
		Backoff:     func(int) time.Duration { return 0 },
		Retryable:   func(error) bool { return true },
	}
	err := p.Do(context.Background(), func() error {
		calls++
		return errors.New("connection refused")
	})
	if err == nil {
		t.Fatal("expected error after exhausting attempts")
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestBreakerOpensAndRejects(t *testing.T) {
	b := NewBreaker(2, time.Minute)
	fail := func() error { return errors.New("connection refused") }

	for i := 0; i < 2; i++ {
		if err := b.Call(fail); err == nil {
			t.Fatal("expected failure")
		}
	}
	if b.State() != StateOpen {
		t.Fatalf("expected open state, got %s", b.State())
	}
	err := b.Call(func() error { return nil })
	if !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected ErrCircuitOpen, got %v", err)
	}
}

func TestBreakerRecovers(t *testing.T) {
	b := NewBreaker(1, time.Second)
	b.Call(func() error { return errors.New("connection refused") })
	if b.State() != StateOpen {
		t.Fatal("expected open state")
	}

	// Force the reset window to elapse.
	b.mu.Lock()
	b.lastFailureTime = time.Now().Add(-2 * time.Second)
	b.mu.Unlock()

	for i := 0; i < 2; i++ {
		if err := b.Call(func() error { return nil }); err != nil {
			t.Fatalf("probe call failed: %v", err)
		}
	}
	if b.State() != StateClosed {
		t.Fatalf("expected closed state after probes, got %s", b.State())
	}
}
