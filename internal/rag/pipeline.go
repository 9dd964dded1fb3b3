// Package rag implements the answering pipeline: lexical retrieval over
// the knowledge base, bounded Ollama generation with retries, response
// cleaning and language enforcement, fronted by a FIFO answer cache.
package rag

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"jalmitra/internal/lang"
	"jalmitra/internal/ollama"
)

// Generator produces a completion for a prompt. *ollama.Client satisfies
// it; tests swap in counters and canned failures.
type Generator interface {
	Generate(ctx context.Context, prompt string, opts ollama.Options) (string, error)
}

// Outcome is the typed result of one bounded generation call.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeTimedOut
	OutcomeFailed
)

type genResult struct {
	outcome Outcome
	text    string
	err     error
}

// Config carries the pipeline tunables.
type Config struct {
	TopK               int
	RelevanceThreshold float64
	Timeout            time.Duration
	Temperature        float64
	MaxTokens          int
}

// Pipeline answers free-text questions from the knowledge base.
type Pipeline struct {
	index *Index
	cache *Cache
	gen   Generator
	retry ollama.RetryPolicy
	cfg   Config
}

// New wires a pipeline. index and gen are required.
func New(index *Index, cache *Cache, gen Generator, retry ollama.RetryPolicy, cfg Config) (*Pipeline, error) {
	if index == nil {
		return nil, errors.New("rag: nil index")
	}
	if gen == nil {
		return nil, errors.New("rag: nil generator")
	}
	if cache == nil {
		cache = NewCache(100)
	}
	if cfg.TopK <= 0 {
		cfg.TopK = 4
	}
	if cfg.RelevanceThreshold <= 0 {
		cfg.RelevanceThreshold = 0.1
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &Pipeline{index: index, cache: cache, gen: gen, retry: retry, cfg: cfg}, nil
}

// Cache exposes the answer cache so a knowledge-base reload can clear it.
func (p *Pipeline) Cache() *Cache { return p.cache }

// Index exposes the underlying index for reloads and health reporting.
func (p *Pipeline) Index() *Index { return p.index }

// Answer resolves a question in the given language. Every expected
// failure (unreachable model, timeout, irrelevant query, oversized
// prompt) is converted to fixed user-facing text; the error return is
// reserved for invariant violations.
func (p *Pipeline) Answer(ctx context.Context, query, language string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return lang.Message(lang.MsgEmptyInput, language), nil
	}

	key := CacheKey(query, language)
	if cached, ok := p.cache.Get(key); ok {
		log.Printf("[RAG] Cache hit for query in %s", language)
		return cached, nil
	}

	if IsComprehensiveQuery(query) {
		answer := p.answerSchemes(ctx, language)
		p.cache.Put(key, answer)
		return answer, nil
	}

	retrieved := p.index.Search(query, p.cfg.TopK)
	if !isRelevant(query, retrieved, p.cfg.RelevanceThreshold) {
		answer := lang.Message(lang.MsgKBRefusal, language)
		p.cache.Put(key, answer)
		return answer, nil
	}

	res := p.generateWithRetry(ctx, buildPrompt(retrieved, query, language))
	switch res.outcome {
	case OutcomeTimedOut:
		log.Printf("[RAG] Generation timed out for query in %s", language)
		return lang.Message(lang.MsgTimeout, language), nil
	case OutcomeFailed:
		return p.failureText(res.err, language), nil
	}

	answer := CleanResponse(res.text, language)
	answer = EnforceLanguage(answer, language)
	p.cache.Put(key, answer)
	return answer, nil
}

// generateWithRetry runs one prompt through the retry policy with each
// attempt bounded by the configured timeout.
func (p *Pipeline) generateWithRetry(ctx context.Context, prompt string) genResult {
	var text string
	err := p.retry.Do(ctx, func() error {
		var genErr error
		text, genErr = p.generateBounded(ctx, prompt)
		return genErr
	})
	if err == nil {
		return genResult{outcome: OutcomeOK, text: text}
	}
	if ollama.KindOf(err) == ollama.KindTimeout {
		return genResult{outcome: OutcomeTimedOut, err: err}
	}
	return genResult{outcome: OutcomeFailed, err: err}
}

// generateBounded issues one generation call under a deadline. The model
// call runs in its own goroutine writing to a buffered channel, so an
// abandoned attempt cannot leak.
func (p *Pipeline) generateBounded(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()

	type reply struct {
		text string
		err  error
	}
	ch := make(chan reply, 1)
	go func() {
		text, err := p.gen.Generate(ctx, prompt, ollama.Options{
			Temperature: p.cfg.Temperature,
			MaxTokens:   p.cfg.MaxTokens,
		})
		ch <- reply{text, err}
	}()

	select {
	case r := <-ch:
		return r.text, r.err
	case <-ctx.Done():
		return "", ollama.Classify(ctx.Err())
	}
}

func (p *Pipeline) failureText(err error, language string) string {
	switch ollama.KindOf(err) {
	case ollama.KindConnection:
		log.Printf("[RAG] Model server unreachable: %v", err)
		return lang.Message(lang.MsgConnection, language)
	case ollama.KindContextTooLarge:
		return lang.Message(lang.MsgTooComplex, language)
	default:
		log.Printf("[RAG] Generation failed: %v", err)
		return lang.Message(lang.MsgGenericError, language)
	}
}

// answerSchemes aggregates scheme names across the corpus using broad
// probe queries, falling back to one simplified generation pass when the
// assembled prompt overflows the model context.
func (p *Pipeline) answerSchemes(ctx context.Context, language string) string {
	found := make(map[string]struct{})
	var names []string
	add := func(text string) {
		for _, n := range ExtractSchemeNames(text) {
			key := strings.ToLower(n)
			if _, dup := found[key]; dup {
				continue
			}
			found[key] = struct{}{}
			names = append(names, n)
		}
	}

	for _, q := range schemeQueries(language) {
		retrieved := p.index.Search(q, p.cfg.TopK)
		for _, s := range retrieved {
			add(s.Chunk.Text)
		}
		if len(retrieved) == 0 {
			continue
		}
		res := p.generateWithRetry(ctx, buildPrompt(retrieved, q, language))
		if res.outcome == OutcomeFailed && ollama.KindOf(res.err) == ollama.KindContextTooLarge {
			res = p.generateWithRetry(ctx, simplifiedPrompt(q, language))
		}
		if res.outcome == OutcomeOK {
			add(res.text)
		}
	}

	if len(names) == 0 {
		return lang.Message(lang.MsgKBRefusal, language)
	}
	if len(names) > maxSchemes {
		names = names[:maxSchemes]
	}
	return formatSchemeList(names, language)
}
