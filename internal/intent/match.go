// Package intent classifies short user inputs against per-language rule
// tables and extracts grievance identifiers. All classifiers share one
// matcher; adding a language means adding table rows, not code.
package intent

import (
	"regexp"
	"strings"

	"jalmitra/internal/lang"
)

// Rule maps a compiled pattern to a result key.
type Rule struct {
	Pattern *regexp.Regexp
	Key     string
}

var normalizeRe = regexp.MustCompile(`[!?.,;:'"()\x60]+`)

// normalize lowercases, strips common punctuation and collapses spaces so
// table patterns stay simple.
func normalize(text string) string {
	t := strings.ToLower(strings.TrimSpace(text))
	t = normalizeRe.ReplaceAllString(t, " ")
	return strings.Join(strings.Fields(t), " ")
}

// match runs text through the rule table for language, then the English
// table as a baseline. First hit wins.
func match(tables map[string][]Rule, language, text string) (string, bool) {
	t := normalize(text)
	if t == "" {
		return "", false
	}
	for _, r := range tables[language] {
		if r.Pattern.MatchString(t) {
			return r.Key, true
		}
	}
	if language != lang.English {
		for _, r := range tables[lang.English] {
			if r.Pattern.MatchString(t) {
				return r.Key, true
			}
		}
	}
	return "", false
}
