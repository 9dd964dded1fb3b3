package rag

import "strings"

// Separator cascade for recursive splitting. Ordered from strongest break
// to weakest; the empty string means "split anywhere" and guarantees
// progress on pathological input. The Devanagari danda is included so
// Hindi and Marathi documents split on sentence ends too.
var splitSeparators = []string{"\n\n", "\n", ". ", "! ", "? ", "। ", ", ", " ", ""}

// Chunk is one indexed slice of a source document.
type Chunk struct {
	Text   string
	Source string
}

// DefaultOverlap returns the chunk overlap for a given chunk size: at
// least 80 characters, or 15% of the size when that is larger.
func DefaultOverlap(chunkSize int) int {
	o := chunkSize * 15 / 100
	if o < 80 {
		o = 80
	}
	return o
}

// Split breaks text into pieces of at most chunkSize characters with the
// given overlap, preferring the strongest separator that keeps pieces
// under the limit.
func Split(text string, chunkSize, overlap int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if chunkSize <= 0 {
		chunkSize = 500
	}
	if overlap >= chunkSize {
		overlap = chunkSize / 2
	}
	parts := splitRecursive(text, chunkSize, splitSeparators)
	return mergeWithOverlap(parts, chunkSize, overlap)
}

func splitRecursive(text string, chunkSize int, separators []string) []string {
	if len(text) <= chunkSize {
		return []string{text}
	}
	sep := separators[len(separators)-1]
	rest := separators
	for i, s := range separators {
		if s == "" {
			sep = ""
			rest = nil
			break
		}
		if strings.Contains(text, s) {
			sep = s
			rest = separators[i+1:]
			break
		}
	}

	if sep == "" {
		// Hard split on rune boundaries.
		var out []string
		runes := []rune(text)
		for len(runes) > 0 {
			n := chunkSize
			if n > len(runes) {
				n = len(runes)
			}
			out = append(out, string(runes[:n]))
			runes = runes[n:]
		}
		return out
	}

	var out []string
	for _, piece := range strings.Split(text, sep) {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		if len(piece) <= chunkSize {
			out = append(out, piece)
		} else {
			out = append(out, splitRecursive(piece, chunkSize, rest)...)
		}
	}
	return out
}

// mergeWithOverlap packs split pieces back into chunks close to chunkSize
// and carries a tail of the previous chunk into the next one.
func mergeWithOverlap(parts []string, chunkSize, overlap int) []string {
	var chunks []string
	var cur strings.Builder
	for _, p := range parts {
		if cur.Len() > 0 && cur.Len()+len(p)+1 > chunkSize {
			chunk := cur.String()
			chunks = append(chunks, chunk)
			cur.Reset()
			if overlap > 0 {
				cur.WriteString(tail(chunk, overlap))
				cur.WriteString(" ")
			}
		}
		if cur.Len() > 0 {
			cur.WriteString(" ")
		}
		cur.WriteString(p)
	}
	if strings.TrimSpace(cur.String()) != "" {
		chunks = append(chunks, strings.TrimSpace(cur.String()))
	}
	return chunks
}

func tail(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	t := string(runes[len(runes)-n:])
	// Cut at a word boundary so the overlap does not start mid-word.
	if i := strings.IndexByte(t, ' '); i >= 0 && i+1 < len(t) {
		t = t[i+1:]
	}
	return t
}
