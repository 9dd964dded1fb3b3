package lang

import (
	"strings"
	"unicode"
)

// Supported language codes.
const (
	English = "en"
	Hindi   = "hi"
	Marathi = "mr"
)

// Marathi-specific tokens that distinguish it from Hindi. Both share the
// Devanagari script, so script share alone cannot separate them.
var marathiMarkers = []string{
	"आहे", "आहेत", "नाही", "होय", "काय", "कसे", "कुठे", "कोणती",
	"मध्ये", "साठी", "तक्रार", "योजना आहेत", "पाण्याची", "माझ्या",
	"तुमच्या", "करावे", "मिळेल", "सांगा",
}

// Hindi tokens used as a tie-breaker when no Marathi marker is present.
var hindiMarkers = []string{
	"है", "हैं", "नहीं", "हाँ", "क्या", "कैसे", "कहाँ", "कौन",
	"में", "के लिए", "शिकायत", "पानी", "मेरी", "आपकी", "बताइए",
}

// Supported reports whether code is a language this service answers in.
func Supported(code string) bool {
	switch code {
	case English, Hindi, Marathi:
		return true
	}
	return false
}

// Detect guesses the language of text from its script and a small set of
// word markers. Devanagari-dominant text is Hindi unless Marathi markers
// outweigh Hindi ones; everything else defaults to English.
func Detect(text string) string {
	var devanagari, latin int
	for _, r := range text {
		switch {
		case r >= 0x0900 && r <= 0x097F:
			devanagari++
		case unicode.Is(unicode.Latin, r):
			latin++
		}
	}
	if devanagari == 0 {
		return English
	}
	if latin > devanagari*2 {
		return English
	}

	mr := countMarkers(text, marathiMarkers)
	hi := countMarkers(text, hindiMarkers)
	if mr > hi {
		return Marathi
	}
	return Hindi
}

func countMarkers(text string, markers []string) int {
	n := 0
	for _, m := range markers {
		if strings.Contains(text, m) {
			n++
		}
	}
	return n
}

// HasScript reports whether text contains at least one rune of the script
// expected for the given language. Used to verify generated answers match
// the session language.
func HasScript(text, language string) bool {
	for _, r := range text {
		switch language {
		case Hindi, Marathi:
			if r >= 0x0900 && r <= 0x097F {
				return true
			}
		default:
			if unicode.Is(unicode.Latin, r) {
				return true
			}
		}
	}
	return false
}
