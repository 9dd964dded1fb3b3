package rag

import (
	"strings"
	"testing"
)

func TestSplitEmpty(t *testing.T) {
	if got := Split("   ", 500, 80); got != nil {
		t.Errorf("expected nil for blank input, got %v", got)
	}
}

func TestSplitShortTextSingleChunk(t *testing.T) {
	text := "Jal Jeevan Mission provides tap water connections."
	got := Split(text, 500, 80)
	if len(got) != 1 || got[0] != text {
		t.Errorf("expected single chunk, got %v", got)
	}
}

func TestSplitRespectsChunkSize(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 60; i++ {
		b.WriteString("The scheme provides piped water supply to every rural household in the district. ")
	}
	chunks := Split(b.String(), 400, 80)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		// Overlap may push a chunk slightly past the target size but
		// never to a multiple of it.
		if len(c) > 600 {
			t.Errorf("chunk %d too large: %d chars", i, len(c))
		}
	}
}

func TestSplitOverlapCarriesTail(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 40; i++ {
		b.WriteString("Households apply at the gram panchayat office for new water connections. ")
	}
	chunks := Split(b.String(), 300, 80)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	// The start of the second chunk should repeat text from the first.
	head := strings.Fields(chunks[1])[0]
	if !strings.Contains(chunks[0], head) {
		t.Errorf("expected overlap between chunks, second starts with %q", head)
	}
}

func TestSplitParagraphBoundariesPreferred(t *testing.T) {
	text := strings.Repeat("First paragraph about water quality testing in villages. ", 5) +
		"\n\n" +
		strings.Repeat("Second paragraph about grievance registration steps. ", 5)
	chunks := Split(text, 320, 0)
	if len(chunks) < 2 {
		t.Fatalf("expected a paragraph split, got %d chunks", len(chunks))
	}
	if strings.Contains(chunks[0], "Second paragraph") {
		t.Error("paragraph boundary not respected")
	}
}

func TestDefaultOverlap(t *testing.T) {
	if got := DefaultOverlap(400); got != 80 {
		t.Errorf("DefaultOverlap(400) = %d, want 80", got)
	}
	if got := DefaultOverlap(1000); got != 150 {
		t.Errorf("DefaultOverlap(1000) = %d, want 150", got)
	}
}

func TestSplitDevanagariSentences(t *testing.T) {
	text := strings.Repeat("जल जीवन मिशन ग्रामीण घरों को नल का पानी देता है। ", 20)
	chunks := Split(text, 300, 80)
	if len(chunks) < 2 {
		t.Fatalf("expected Devanagari text to split, got %d chunks", len(chunks))
	}
}
