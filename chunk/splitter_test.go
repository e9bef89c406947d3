package chunk

import (
	"strings"
	"testing"
)

func TestSplitTextEmpty(t *testing.T) {
	if got := splitText("", 100); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
	if got := splitText("   \n\n  ", 100); got != nil {
		t.Errorf("expected nil for whitespace, got %v", got)
	}
}

func TestSplitTextShort(t *testing.T) {
	got := splitText("Hello, world.", 100)
	if len(got) != 1 || got[0] != "Hello, world." {
		t.Errorf("expected single piece, got %v", got)
	}
}

func TestSplitTextRespectsMax(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 60; i++ {
		sb.WriteString("The insured shall provide prompt notice of loss. ")
	}
	pieces := splitText(sb.String(), 200)
	if len(pieces) < 2 {
		t.Fatal("expected multiple pieces")
	}
	for i, p := range pieces {
		if len(p) > 200 {
			t.Errorf("piece %d length %d exceeds max", i, len(p))
		}
	}
}

func TestSplitTextPrefersParagraphs(t *testing.T) {
	text := "First paragraph about the policy terms and premium amounts due.\n\n" +
		"Second paragraph describing exclusions that apply to the coverage.\n\n" +
		"Third paragraph on conditions for filing a claim with the insurer."
	pieces := splitText(text, 80)
	if len(pieces) != 3 {
		t.Fatalf("expected 3 pieces, got %d: %v", len(pieces), pieces)
	}
	for _, p := range pieces {
		if strings.Contains(p, "\n\n") {
			t.Errorf("piece crosses paragraph boundary: %q", p)
		}
	}
}

func TestSplitTextAccumulatesSmallParagraphs(t *testing.T) {
	text := "Short one.\n\nShort two.\n\nShort three."
	pieces := splitText(text, 1000)
	if len(pieces) != 1 {
		t.Fatalf("expected 1 accumulated piece, got %d", len(pieces))
	}
}

func TestSplitTextHardCutsLongSentence(t *testing.T) {
	long := strings.Repeat("x", 500) // one sentence, no boundaries at all
	pieces := splitText(long, 120)
	if len(pieces) < 4 {
		t.Fatalf("expected hard-cut pieces, got %d", len(pieces))
	}
	for _, p := range pieces {
		if len(p) > 120 {
			t.Errorf("piece length %d exceeds max", len(p))
		}
	}
	if strings.Join(pieces, "") != long {
		t.Error("hard cut lost content")
	}
}

func TestHardCutRuneSafe(t *testing.T) {
	text := strings.Repeat("é", 100)
	for _, p := range hardCut(text, 7) {
		if !strings.HasPrefix(p, "é") {
			t.Fatalf("cut split a rune: %q", p)
		}
	}
}

func TestSplitTextReconstructs(t *testing.T) {
	text := "The policy covers fire damage. The deductible is $500. " +
		"Claims must be filed within 60 days.\n\n" +
		"Exclusions apply to flood and earthquake perils in all cases."
	pieces := splitText(text, 70)

	strip := func(s string) string {
		return strings.Join(strings.Fields(s), "")
	}
	if strip(strings.Join(pieces, "")) != strip(text) {
		t.Error("concatenated pieces do not reconstruct input")
	}
}
