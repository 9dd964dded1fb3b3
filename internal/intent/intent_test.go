package intent

import (
	"testing"

	"jalmitra/internal/lang"
)

func TestGreeting(t *testing.T) {
	cases := []struct {
		text, language string
		wantKey        string
		wantOK         bool
	}{
		{"Good morning!", "en", lang.MsgGreetingMorning, true},
		{"hello there", "en", lang.MsgGreetingHello, true},
		{"नमस्ते", "hi", lang.MsgGreetingHello, true},
		{"नमस्कार", "mr", lang.MsgGreetingHello, true},
		{"what is jal jeevan mission", "en", "", false},
	}
	for _, c := range cases {
		key, ok := Greeting(c.text, c.language)
		if ok != c.wantOK || key != c.wantKey {
			t.Errorf("Greeting(%q, %q) = (%q, %v), want (%q, %v)",
				c.text, c.language, key, ok, c.wantKey, c.wantOK)
		}
	}
}

func TestYesNo(t *testing.T) {
	cases := []struct {
		text, language string
		want           Answer
	}{
		{"Yes", "en", Yes},
		{"yeah sure", "en", Yes},
		{"No", "en", No},
		{"nope", "en", No},
		{"हाँ", "hi", Yes},
		{"नहीं", "hi", No},
		{"होय", "mr", Yes},
		{"नाही", "mr", No},
		{"tell me about water schemes", "en", Unknown},
	}
	for _, c := range cases {
		if got := YesNo(c.text, c.language); got != c.want {
			t.Errorf("YesNo(%q, %q) = %v, want %v", c.text, c.language, got, c.want)
		}
	}
}

func TestIsStatusQuery(t *testing.T) {
	positive := []struct{ text, language string }{
		{"Check my grievance status", "en"},
		{"I want to know my complaint status", "en"},
		{"मेरी शिकायत की स्थिति जांचें", "hi"},
		{"माझ्या तक्रारीची स्थिती तपासा", "mr"},
		{"check grievance status G-12safeg7678", "en"},
	}
	for _, c := range positive {
		if !IsStatusQuery(c.text, c.language) {
			t.Errorf("IsStatusQuery(%q, %q) = false, want true", c.text, c.language)
		}
	}
	if IsStatusQuery("what is the status of water supply in india", "en") {
		t.Error("general status question must not trigger the grievance intent")
	}
}

func TestIsFeedbackAndRegistration(t *testing.T) {
	if !IsFeedback("I want to give feedback", "en") {
		t.Error("expected feedback intent")
	}
	if !IsFeedback("अभिप्राय", "mr") {
		t.Error("expected feedback intent for Marathi")
	}
	if !IsRegistration("how do I register a complaint", "en") {
		t.Error("expected registration intent")
	}
	if !IsRegistration("शिकायत दर्ज करनी है", "hi") {
		t.Error("expected registration intent for Hindi")
	}
}

func TestResolveIdentifier(t *testing.T) {
	cases := []struct {
		text     string
		want     string
		wantKind Kind
		wantOK   bool
	}{
		{"G-12safeg7678", "G-12safeg7678", KindGrievanceID, true},
		{"9876543210", "9876543210", KindMobile, true},
		{"12345", "", KindNone, false},
		{"abcdefgh", "", KindNone, false},
		{"my id is GRV2024001 please check", "GRV2024001", KindGrievanceID, true},
		{"call me at +91 9876543210", "9876543210", KindMobile, true},
		{"registered with 09123456789", "9123456789", KindMobile, true},
		{"check grievance status for G-12safeg7678", "G-12safeg7678", KindGrievanceID, true},
		{"", "", KindNone, false},
	}
	for _, c := range cases {
		got, kind, ok := Resolve(c.text)
		if got != c.want || kind != c.wantKind || ok != c.wantOK {
			t.Errorf("Resolve(%q) = (%q, %v, %v), want (%q, %v, %v)",
				c.text, got, kind, ok, c.want, c.wantKind, c.wantOK)
		}
	}
}
