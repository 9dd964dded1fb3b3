package rag

import (
	"errors"
	"math"
	"regexp"
	"sort"
	"strings"
	"sync"
)

// ErrEmptyCorpus is returned when an index is built with no text.
var ErrEmptyCorpus = errors.New("rag: no chunks to index")

var tokenRe = regexp.MustCompile(`[\p{L}\p{N}]+`)

func tokenize(text string) []string {
	return tokenRe.FindAllString(strings.ToLower(text), -1)
}

// Scored pairs a chunk with its similarity to a query.
type Scored struct {
	Chunk Chunk
	Score float64
}

// Index is a TF-IDF index over document chunks. Build once, search from
// any goroutine; Rebuild swaps the whole index under a lock.
type Index struct {
	mu     sync.RWMutex
	chunks []Chunk
	tf     []map[string]float64
	df     map[string]int
	norms  []float64
}

// Build constructs an index from chunks. An empty corpus is an error so
// callers surface a misconfigured knowledge base at startup.
func Build(chunks []Chunk) (*Index, error) {
	idx := &Index{}
	if err := idx.rebuild(chunks); err != nil {
		return nil, err
	}
	return idx, nil
}

// Rebuild replaces the index contents. Used by the admin reload endpoint.
func (idx *Index) Rebuild(chunks []Chunk) error {
	return idx.rebuild(chunks)
}

func (idx *Index) rebuild(chunks []Chunk) error {
	var kept []Chunk
	for _, c := range chunks {
		if strings.TrimSpace(c.Text) != "" {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		return ErrEmptyCorpus
	}

	tf := make([]map[string]float64, len(kept))
	df := make(map[string]int)
	for i, c := range kept {
		counts := make(map[string]float64)
		for _, tok := range tokenize(c.Text) {
			counts[tok]++
		}
		tf[i] = counts
		for tok := range counts {
			df[tok]++
		}
	}

	n := float64(len(kept))
	norms := make([]float64, len(kept))
	for i, counts := range tf {
		var sum float64
		for tok, f := range counts {
			w := f * idfWeight(n, df[tok])
			sum += w * w
		}
		norms[i] = math.Sqrt(sum)
	}

	idx.mu.Lock()
	idx.chunks = kept
	idx.tf = tf
	idx.df = df
	idx.norms = norms
	idx.mu.Unlock()
	return nil
}

func idfWeight(n float64, df int) float64 {
	return 1 + math.Log(n/float64(df))
}

// Len returns the number of indexed chunks.
func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.chunks)
}

// Search returns the top k chunks by TF-IDF similarity to query, best
// first. Chunks with zero overlap are omitted.
func (idx *Index) Search(query string, k int) []Scored {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	qCounts := make(map[string]float64)
	for _, tok := range tokenize(query) {
		qCounts[tok]++
	}
	if len(qCounts) == 0 || len(idx.chunks) == 0 {
		return nil
	}

	n := float64(len(idx.chunks))
	var qNorm float64
	qw := make(map[string]float64, len(qCounts))
	for tok, f := range qCounts {
		df, ok := idx.df[tok]
		if !ok {
			continue
		}
		w := f * idfWeight(n, df)
		qw[tok] = w
		qNorm += w * w
	}
	if len(qw) == 0 {
		return nil
	}
	qNorm = math.Sqrt(qNorm)

	scored := make([]Scored, 0, len(idx.chunks))
	for i, counts := range idx.tf {
		var dot float64
		for tok, w := range qw {
			if f, ok := counts[tok]; ok {
				dot += w * f * idfWeight(n, idx.df[tok])
			}
		}
		if dot == 0 {
			continue
		}
		score := dot / (qNorm * idx.norms[i])
		scored = append(scored, Scored{Chunk: idx.chunks[i], Score: score})
	}

	sort.SliceStable(scored, func(a, b int) bool {
		return scored[a].Score > scored[b].Score
	})
	if k > 0 && len(scored) > k {
		scored = scored[:k]
	}
	return scored
}
