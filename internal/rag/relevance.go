package rag

import (
	"regexp"
	"strings"
)

// Common words across the three supported languages that carry no
// relevance signal on their own.
var stopwords = map[string]struct{}{
	"what": {}, "how": {}, "when": {}, "where": {}, "who": {}, "which": {},
	"why": {}, "can": {}, "will": {}, "would": {}, "should": {}, "could": {},
	"the": {}, "and": {}, "for": {}, "are": {}, "you": {}, "have": {},
	"get": {}, "know": {}, "tell": {}, "give": {}, "show": {}, "find": {},
	"help": {}, "need": {}, "want": {}, "about": {}, "information": {},
	"details": {}, "please": {},
	"करें": {}, "है": {}, "के": {}, "में": {}, "से": {}, "को": {}, "का": {},
	"की": {}, "पर": {},
	"आहे": {}, "च्या": {}, "ला": {}, "ने": {}, "या": {}, "ची": {}, "कर": {},
}

var wordRe = regexp.MustCompile(`[\p{L}\p{N}]{3,}`)

// meaningfulTerms extracts the query words that should appear in relevant
// context: length three or more, stopwords removed.
func meaningfulTerms(query string) []string {
	seen := make(map[string]struct{})
	var terms []string
	for _, w := range wordRe.FindAllString(strings.ToLower(query), -1) {
		if _, stop := stopwords[w]; stop {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		terms = append(terms, w)
	}
	return terms
}

// isRelevant reports whether the retrieved chunks actually cover the
// query. A query with no meaningful terms left is assumed relevant so
// short conversational questions are not refused outright.
func isRelevant(query string, retrieved []Scored, threshold float64) bool {
	if len(retrieved) == 0 {
		return false
	}
	terms := meaningfulTerms(query)
	if len(terms) == 0 {
		return true
	}

	matches := 0
	for _, s := range retrieved {
		text := strings.ToLower(s.Chunk.Text)
		for _, t := range terms {
			if strings.Contains(text, t) {
				matches++
			}
		}
	}
	score := float64(matches) / float64(len(terms)*len(retrieved))
	return score > threshold || matches > 0
}
