package rag

import (
	"regexp"
	"strings"

	"jalmitra/internal/lang"
)

// Generation models occasionally echo parts of the system prompt back.
// These patterns strip template and instruction artifacts before the
// answer is shown to the user.
var templateRes = []*regexp.Regexp{
	regexp.MustCompile(`(?is)you are an? .*?assistant.*?(?:\n|\.)`),
	regexp.MustCompile(`(?is)your task is.*?(?:\n|\.)`),
	regexp.MustCompile(`(?i)guidelines:.*?(?:\n|$)`),
	regexp.MustCompile(`(?is)based on the context.*?(?:\n|\.)`),
	regexp.MustCompile(`(?is)keep the answer.*?(?:\n|\.)`),
	regexp.MustCompile(`(?m)^\*.*$`),
	regexp.MustCompile(`(?i)context:.*?(?:\n|$)`),
	regexp.MustCompile(`(?i)question:.*?(?:\n|$)`),
	regexp.MustCompile(`(?i)brief answer:.*?(?:\n|$)`),
	regexp.MustCompile(`(?i)answer:.*?(?:\n|$)`),
	regexp.MustCompile(`(?is)answer in \w+ only.*?(?:\n|\.)`),
	regexp.MustCompile(`केवल हिंदी में.*?(?:\n|।)`),
	regexp.MustCompile(`फक्त मराठीत.*?(?:\n|।)`),
}

var (
	bulletRe     = regexp.MustCompile(`[•\-*]\s*`)
	newlineRe    = regexp.MustCompile(`\n+`)
	multiSpaceRe = regexp.MustCompile(`\s+`)
	sentenceRe   = regexp.MustCompile(`[.!?।]+`)
)

// CleanResponse strips prompt leakage and formatting noise, caps the
// answer at two to three sentences and ensures terminal punctuation in
// the target language's convention. Answers that clean down to nothing
// become the fixed helpline fallback.
func CleanResponse(text, language string) string {
	cleaned := text
	for _, re := range templateRes {
		cleaned = re.ReplaceAllString(cleaned, "")
	}
	cleaned = bulletRe.ReplaceAllString(cleaned, "")
	cleaned = newlineRe.ReplaceAllString(cleaned, " ")
	cleaned = multiSpaceRe.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)

	sentences := nonEmptySentences(cleaned)
	if len(sentences) > 3 {
		cleaned = joinSentences(sentences[:2], language)
	} else if len(sentences) > 0 && !hasTerminal(cleaned) {
		cleaned += terminal(language)
	}

	if len(strings.TrimSpace(cleaned)) < 10 {
		return lang.Message(lang.MsgLangFallback, language)
	}
	return strings.TrimSpace(cleaned)
}

// EnforceLanguage verifies the answer is written in the session
// language's script and substitutes the fixed fallback when it is not.
func EnforceLanguage(text, language string) string {
	if lang.HasScript(text, language) {
		return text
	}
	return lang.Message(lang.MsgLangFallback, language)
}

func nonEmptySentences(text string) []string {
	var out []string
	for _, s := range sentenceRe.Split(text, -1) {
		if strings.TrimSpace(s) != "" {
			out = append(out, strings.TrimSpace(s))
		}
	}
	return out
}

func joinSentences(sentences []string, language string) string {
	return strings.Join(sentences, ". ") + terminal(language)
}

func hasTerminal(text string) bool {
	return strings.HasSuffix(text, ".") || strings.HasSuffix(text, "।") ||
		strings.HasSuffix(text, "?") || strings.HasSuffix(text, "!")
}

func terminal(language string) string {
	if language == lang.Hindi || language == lang.Marathi {
		return "।"
	}
	return "."
}
