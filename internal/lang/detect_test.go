package lang

import "testing"

func TestDetectEnglish(t *testing.T) {
	cases := []string{
		"What is the Jal Jeevan Mission?",
		"hello",
		"check my grievance status",
	}
	for _, c := range cases {
		if got := Detect(c); got != English {
			t.Errorf("Detect(%q) = %q, want en", c, got)
		}
	}
}

func TestDetectHindi(t *testing.T) {
	cases := []string{
		"जल जीवन मिशन क्या है?",
		"मेरी शिकायत की स्थिति क्या है",
	}
	for _, c := range cases {
		if got := Detect(c); got != Hindi {
			t.Errorf("Detect(%q) = %q, want hi", c, got)
		}
	}
}

func TestDetectMarathi(t *testing.T) {
	cases := []string{
		"जल जीवन मिशन काय आहे?",
		"माझ्या तक्रारीची स्थिती काय आहे",
	}
	for _, c := range cases {
		if got := Detect(c); got != Marathi {
			t.Errorf("Detect(%q) = %q, want mr", c, got)
		}
	}
}

func TestDetectMixedScriptPrefersDominant(t *testing.T) {
	// A couple of Devanagari runes inside an English sentence should not
	// flip the result.
	text := "Please tell me about जल schemes in my district and how to apply online"
	if got := Detect(text); got != English {
		t.Errorf("Detect(%q) = %q, want en", text, got)
	}
}

func TestHasScript(t *testing.T) {
	if !HasScript("यह हिंदी है", Hindi) {
		t.Error("expected Devanagari detection for Hindi text")
	}
	if HasScript("this is latin only", Marathi) {
		t.Error("Latin-only text must not pass the Marathi script check")
	}
	if !HasScript("plain english", English) {
		t.Error("expected Latin detection for English text")
	}
}

func TestMessageFallsBackToEnglish(t *testing.T) {
	if Message(MsgWelcome, "fr") != Message(MsgWelcome, English) {
		t.Error("unknown language should fall back to English")
	}
	if Message("no_such_key", English) != "" {
		t.Error("unknown key should return empty string")
	}
}

func TestSupported(t *testing.T) {
	for _, c := range []string{"en", "hi", "mr"} {
		if !Supported(c) {
			t.Errorf("expected %q to be supported", c)
		}
	}
	if Supported("ta") {
		t.Error("ta must not be supported")
	}
}
