package intent

import (
	"regexp"

	"jalmitra/internal/lang"
)

// Answer is the result of the yes/no classifier.
type Answer int

const (
	Unknown Answer = iota
	Yes
	No
)

func re(p string) *regexp.Regexp { return regexp.MustCompile(p) }

// Greeting reply keys reuse the message keys so the engine can answer
// directly from the table result.
var greetingTables = map[string][]Rule{
	lang.English: {
		{re(`^good\s*morning\b`), lang.MsgGreetingMorning},
		{re(`^good\s*(afternoon|day)\b`), lang.MsgGreetingDay},
		{re(`^good\s*evening\b`), lang.MsgGreetingEvening},
		{re(`^(hello|hi|hii+|hey|namaste|namaskar)\b`), lang.MsgGreetingHello},
	},
	lang.Hindi: {
		{re(`^सुप्रभात`), lang.MsgGreetingMorning},
		{re(`^शुभ\s*संध्या`), lang.MsgGreetingEvening},
		{re(`^(नमस्ते|नमस्कार|हेलो|हाय)`), lang.MsgGreetingHello},
	},
	lang.Marathi: {
		{re(`^सुप्रभात`), lang.MsgGreetingMorning},
		{re(`^शुभ\s*संध्याकाळ`), lang.MsgGreetingEvening},
		{re(`^(नमस्कार|नमस्ते|हॅलो|हाय)`), lang.MsgGreetingHello},
	},
}

var yesNoTables = map[string][]Rule{
	lang.English: {
		{re(`^(yes|y|yeah|yep|yup|sure|ok|okay|of course)\b`), "yes"},
		{re(`^(no|n|nope|nah|not now|never)\b`), "no"},
	},
	lang.Hindi: {
		{re(`^(हाँ|हां|जी हाँ|जी हां|जी|ठीक है|बिल्कुल)`), "yes"},
		{re(`^(नहीं|ना|नही|बिल्कुल नहीं)`), "no"},
	},
	lang.Marathi: {
		{re(`^(होय|हो|हं|चालेल|नक्की)`), "yes"},
		{re(`^(नाही|नको|अजिबात नाही)`), "no"},
	},
}

var statusTables = map[string][]Rule{
	lang.English: {
		{re(`\b(check|track|know|tell).{0,30}\b(grievance|complaint)\b.{0,20}\bstatus\b`), "status"},
		{re(`\b(grievance|complaint)\s+status\b`), "status"},
		{re(`\bstatus\b.{0,20}\b(grievance|complaint)\b`), "status"},
	},
	lang.Hindi: {
		{re(`शिकायत.{0,20}स्थिति`), "status"},
		{re(`स्थिति.{0,20}शिकायत`), "status"},
		{re(`शिकायत.{0,15}(जांच|ट्रैक)`), "status"},
	},
	lang.Marathi: {
		{re(`तक्रार.{0,20}स्थिती`), "status"},
		{re(`स्थिती.{0,20}तक्रार`), "status"},
		{re(`तक्रार.{0,15}(तपासा|ट्रॅक)`), "status"},
	},
}

var feedbackTables = map[string][]Rule{
	lang.English: {
		{re(`\bfeed\s*back\b`), "feedback"},
	},
	lang.Hindi: {
		{re(`प्रतिक्रिया|फीडबैक`), "feedback"},
	},
	lang.Marathi: {
		{re(`अभिप्राय|प्रतिक्रिया|फीडबॅक`), "feedback"},
	},
}

var registrationTables = map[string][]Rule{
	lang.English: {
		{re(`\b(register|registration|file|lodge|raise)\b.{0,30}\b(grievance|complaint)\b`), "register"},
		{re(`\b(new)\s+(grievance|complaint)\b`), "register"},
	},
	lang.Hindi: {
		{re(`शिकायत.{0,15}(दर्ज|रजिस्टर)`), "register"},
		{re(`(दर्ज|रजिस्टर).{0,15}शिकायत`), "register"},
	},
	lang.Marathi: {
		{re(`तक्रार.{0,15}(नोंदव|नोंदणी|दाखल)`), "register"},
		{re(`(नोंदव|नोंदणी|दाखल).{0,15}तक्रार`), "register"},
	},
}

// Greeting classifies text as a greeting and returns the message key of
// the canned reply.
func Greeting(text, language string) (string, bool) {
	return match(greetingTables, language, text)
}

// YesNo classifies an affirmative or negative reply.
func YesNo(text, language string) Answer {
	key, ok := match(yesNoTables, language, text)
	if !ok {
		return Unknown
	}
	if key == "yes" {
		return Yes
	}
	return No
}

// IsStatusQuery reports whether text asks to check grievance status.
func IsStatusQuery(text, language string) bool {
	_, ok := match(statusTables, language, text)
	return ok
}

// IsFeedback reports whether text mentions giving feedback.
func IsFeedback(text, language string) bool {
	_, ok := match(feedbackTables, language, text)
	return ok
}

// IsRegistration reports whether text asks how to register a grievance.
func IsRegistration(text, language string) bool {
	_, ok := match(registrationTables, language, text)
	return ok
}
