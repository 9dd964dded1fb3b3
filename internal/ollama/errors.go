// Package ollama talks to a local Ollama server for text generation and
// classifies its failures so callers can decide between retrying,
// simplifying the prompt or giving up.
package ollama

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

// ErrCircuitOpen is returned while the breaker is rejecting calls.
var ErrCircuitOpen = errors.New("ollama: circuit open")

// Kind classifies a generation failure.
type Kind int

const (
	KindOther Kind = iota
	KindConnection
	KindTimeout
	KindContextTooLarge
)

// RequestError wraps a failed generation call with its classification.
type RequestError struct {
	Kind Kind
	Err  error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("ollama: %s: %v", e.Kind, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

func (k Kind) String() string {
	switch k {
	case KindConnection:
		return "connection"
	case KindTimeout:
		return "timeout"
	case KindContextTooLarge:
		return "context too large"
	default:
		return "error"
	}
}

// Classify wraps err as a RequestError with the right kind.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return err
	}
	return &RequestError{Kind: kindOf(err), Err: err}
}

func kindOf(err error) Kind {
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return KindTimeout
		}
		return KindConnection
	}
	if errors.Is(err, ErrCircuitOpen) {
		return KindConnection
	}
	if errors.Is(err, context.Canceled) {
		return KindOther
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "connection refused"), strings.Contains(msg, "connection reset"),
		strings.Contains(msg, "no such host"), strings.Contains(msg, "connection"):
		return KindConnection
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "deadline"):
		return KindTimeout
	case strings.Contains(msg, "request too large"), strings.Contains(msg, "context length"),
		strings.Contains(msg, "context window"), strings.Contains(msg, "too large"):
		return KindContextTooLarge
	}
	return KindOther
}

// KindOf returns the classification of err, KindOther when unclassified.
func KindOf(err error) Kind {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Kind
	}
	return kindOf(err)
}

// Retryable reports whether the failure is transient. Only connection
// and timeout failures are worth retrying.
func Retryable(err error) bool {
	k := KindOf(err)
	return k == KindConnection || k == KindTimeout
}
