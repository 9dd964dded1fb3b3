package rag

import (
	"fmt"
	"strings"

	"jalmitra/internal/lang"
)

// Per-language system instructions. The model drifts into English
// without an instruction written in the target language itself.
var languageInstructions = map[string]string{
	lang.English: "Answer in English only. Use only the provided context to answer. Be concise and direct.",
	lang.Hindi:   "केवल हिंदी में उत्तर दें। प्रदान किए गए संदर्भ का उपयोग करके उत्तर दें। संक्षिप्त और स्पष्ट जवाब दें।",
	lang.Marathi: "फक्त मराठीत उत्तर द्या। प्रदान केलेल्या संदर्भाचा वापर करून उत्तर द्या। संक्षिप्त आणि स्पष्ट उत्तर द्या।",
}

func languageInstruction(language string) string {
	if s, ok := languageInstructions[language]; ok {
		return s
	}
	return languageInstructions[lang.English]
}

// buildPrompt assembles the generation prompt from retrieved chunks and
// the user question.
func buildPrompt(retrieved []Scored, query, language string) string {
	var ctx strings.Builder
	for i, s := range retrieved {
		if i > 0 {
			ctx.WriteString("\n\n")
		}
		ctx.WriteString(s.Chunk.Text)
	}
	return fmt.Sprintf(`You are a helpful water supply grievance assistant for rural citizens.
%s
Keep the answer to a maximum of 2-3 sentences.

Context:
%s

Question: %s

Brief Answer:`, languageInstruction(language), ctx.String(), query)
}

// simplifiedPrompt is the shorter retry used when the full prompt
// overflows the model's context window.
func simplifiedPrompt(query, language string) string {
	return fmt.Sprintf("%s\n\nQuestion: %s\n\nBrief Answer:", languageInstruction(language), query)
}
