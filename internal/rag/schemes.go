package rag

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"jalmitra/internal/lang"
)

// Queries like "list all schemes" need aggregation over the whole corpus
// rather than a single retrieval, so they get a dedicated path.
var comprehensiveKeywords = []string{
	"all schemes", "list schemes", "complete list", "total schemes",
	"how many schemes", "scheme names", "सभी योजना", "सर्व योजना",
	"योजनाओं की सूची", "योजनांची यादी", "सर्व", "यादी",
}

// IsComprehensiveQuery reports whether the query asks for a full scheme
// listing.
func IsComprehensiveQuery(query string) bool {
	q := strings.ToLower(query)
	for _, kw := range comprehensiveKeywords {
		if strings.Contains(q, kw) {
			return true
		}
	}
	return false
}

// Scheme names end in a small set of indicator words in all three
// languages, or start with a ministerial prefix.
var schemeRes = []*regexp.Regexp{
	regexp.MustCompile(`(?:[A-Z][\w'-]+(?: [A-Z][\w'-]+)* )?(?:योजना|कार्यक्रम|अभियान|मिशन|धोरण|निधी|कार्ड|Scheme|Yojana|Programme|Abhiyan|Mission|Initiative|Program|Policy|Fund|Card)\b`),
	regexp.MustCompile(`(?:Pradhan Mantri|Mukhyamantri|CM|PM|National|Rashtriya|State|Rajya|प्रधानमंत्री|मुख्यमंत्री|राष्ट्रीय|राज्य) (?:[A-Z][\w'-]+ ?)+`),
	regexp.MustCompile(`[A-Z]{2,}(?:-[A-Z]{2,})? Scheme\b`),
}

const maxSchemes = 8

// ExtractSchemeNames pulls plausible scheme names out of free text,
// deduplicated and capped at eight.
func ExtractSchemeNames(text string) []string {
	flat := strings.Join(strings.Fields(text), " ")
	seen := make(map[string]struct{})
	var names []string
	for _, re := range schemeRes {
		for _, m := range re.FindAllString(flat, -1) {
			name := titleCase(strings.TrimRight(strings.TrimSpace(m), ".,:;-"))
			if len(name) <= 4 || len(strings.Fields(name)) >= 10 {
				continue
			}
			key := strings.ToLower(name)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			names = append(names, name)
		}
	}
	sort.Strings(names)
	if len(names) > maxSchemes {
		names = names[:maxSchemes]
	}
	return names
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		if r[0] >= 'a' && r[0] <= 'z' {
			r[0] = r[0] - 'a' + 'A'
			words[i] = string(r)
		}
	}
	return strings.Join(words, " ")
}

// schemeQueries are the broad retrieval probes used to sweep the corpus
// for scheme mentions, per language.
func schemeQueries(language string) []string {
	switch language {
	case lang.Hindi:
		return []string{
			"सभी सरकारी योजनाओं की सूची",
			"योजना नाम और विवरण",
			"उपलब्ध कार्यक्रम और अभियान",
		}
	case lang.Marathi:
		return []string{
			"सर्व सरकारी योजनांची यादी",
			"योजना नावे आणि तपशील",
			"उपलब्ध कार्यक्रम आणि अभियान",
		}
	default:
		return []string{
			"List all government schemes mentioned in documents",
			"Available schemes and programs",
			"Government initiatives and policies",
		}
	}
}

// formatSchemeList renders the aggregated names as a localized answer.
func formatSchemeList(names []string, language string) string {
	switch language {
	case lang.Hindi:
		return fmt.Sprintf("%d मुख्य योजनाएं मिलीं: %s", len(names), strings.Join(names, ", "))
	case lang.Marathi:
		return fmt.Sprintf("%d मुख्य योजना सापडल्या: %s", len(names), strings.Join(names, ", "))
	default:
		return fmt.Sprintf("Found %d main schemes: %s", len(names), strings.Join(names, ", "))
	}
}
