package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Options tune a single generation call.
type Options struct {
	Temperature float64
	MaxTokens   int
}

// Client calls the Ollama HTTP API. All generation goes through the
// circuit breaker so a dead model server stops burning request timeouts.
type Client struct {
	baseURL string
	model   string
	http    *http.Client
	breaker *Breaker
}

// NewClient builds a client for the given server and model. timeout caps
// the whole HTTP exchange for one generation.
func NewClient(baseURL, model string, timeout time.Duration, breaker *Breaker) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		http:    &http.Client{Timeout: timeout},
		breaker: breaker,
	}
}

type generateRequest struct {
	Model   string         `json:"model"`
	Prompt  string         `json:"prompt"`
	Stream  bool           `json:"stream"`
	Options map[string]any `json:"options,omitempty"`
}

type generateResponse struct {
	Response string `json:"response"`
	Error    string `json:"error,omitempty"`
}

// Generate produces a completion for prompt. Failures come back as
// RequestError values classified by kind; the caller's context bounds
// the call.
func (c *Client) Generate(ctx context.Context, prompt string, opts Options) (string, error) {
	var text string
	call := func() error {
		var err error
		text, err = c.generate(ctx, prompt, opts)
		return err
	}
	var err error
	if c.breaker != nil {
		err = c.breaker.Call(call)
	} else {
		err = call()
	}
	if err != nil {
		return "", Classify(err)
	}
	return text, nil
}

func (c *Client) generate(ctx context.Context, prompt string, opts Options) (string, error) {
	payload := generateRequest{
		Model:  c.model,
		Prompt: prompt,
		Stream: false,
	}
	opt := map[string]any{}
	if opts.Temperature > 0 {
		opt["temperature"] = opts.Temperature
	}
	if opts.MaxTokens > 0 {
		opt["num_predict"] = opts.MaxTokens
	}
	if len(opt) > 0 {
		payload.Options = opt
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}
	if resp.StatusCode == http.StatusRequestEntityTooLarge {
		return "", &RequestError{Kind: KindContextTooLarge, Err: fmt.Errorf("status %d: %s", resp.StatusCode, raw)}
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama returned status %d: %s", resp.StatusCode, raw)
	}

	var out generateResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if out.Error != "" {
		return "", fmt.Errorf("ollama error: %s", out.Error)
	}
	return out.Response, nil
}

// Ping verifies the server is reachable and lists its models.
func (c *Client) Ping(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tags", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, Classify(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ollama returned status %d", resp.StatusCode)
	}

	var out struct {
		Models []struct {
			Name string `json:"name"`
		} `json:"models"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(out.Models))
	for _, m := range out.Models {
		names = append(names, m.Name)
	}
	return names, nil
}

// Model returns the configured model name.
func (c *Client) Model() string { return c.model }
