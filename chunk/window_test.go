package chunk

import (
	"strings"
	"testing"

	kertas "github.com/prasetya/kertas"
)

func makeSentences(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "The insured reported a covered loss to the adjuster today."
	}
	return out
}

func TestWindowSentencesEmpty(t *testing.T) {
	if got := windowSentences(nil, 900, 0.12); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestWindowSentencesSingle(t *testing.T) {
	got := windowSentences([]string{"One short sentence."}, 900, 0.12)
	if len(got) != 1 {
		t.Fatalf("expected 1 block, got %d", len(got))
	}
	if got[0].Method != kertas.MethodSlidingWindow {
		t.Errorf("unexpected method %q", got[0].Method)
	}
}

func TestWindowSentencesTargetBound(t *testing.T) {
	blocks := windowSentences(makeSentences(40), 300, 0.12)
	if len(blocks) < 2 {
		t.Fatal("expected multiple blocks")
	}
	for i, b := range blocks {
		// Accumulation flushes before exceeding target plus one sentence.
		if len(b.Content) > 300+120 {
			t.Errorf("block %d length %d far exceeds target", i, len(b.Content))
		}
	}
}

func TestWindowSentencesOverlap(t *testing.T) {
	sentences := []string{
		"Alpha coverage applies to the dwelling.",
		"Beta exclusions remove flood peril.",
		"Gamma conditions require prompt notice.",
		"Delta limits cap the payout amount.",
		"Epsilon deductible reduces the claim.",
	}
	blocks := windowSentences(sentences, 80, 0.5)
	if len(blocks) < 2 {
		t.Fatal("expected multiple blocks")
	}
	// With a generous overlap budget the trailing sentence of one block
	// reappears at the start of the next.
	first := blocks[0].Content
	lastSentence := first[strings.LastIndex(first, "Beta"):]
	if !strings.HasPrefix(blocks[1].Content, lastSentence) {
		t.Errorf("expected overlap seed %q at start of %q", lastSentence, blocks[1].Content)
	}
}

func TestWindowSentencesForwardProgress(t *testing.T) {
	// Overlap budget larger than any sentence must still advance.
	blocks := windowSentences(makeSentences(10), 60, 0.5)
	if len(blocks) == 0 || len(blocks) > 10 {
		t.Fatalf("window stalled or exploded: %d blocks", len(blocks))
	}
	all := ""
	for _, b := range blocks {
		all += b.Content + " "
	}
	if strings.Count(all, "adjuster") < 10 {
		t.Error("window dropped sentences")
	}
}

func TestFixedWidthBlocks(t *testing.T) {
	text := strings.Repeat("abcdefghij", 50)
	blocks := fixedWidthBlocks(text, 120, 0.12)
	if len(blocks) < 4 {
		t.Fatalf("expected several blocks, got %d", len(blocks))
	}
	for i, b := range blocks {
		if len(b.Content) > 120 {
			t.Errorf("block %d length %d exceeds target", i, len(b.Content))
		}
		if b.Method != kertas.MethodFixedWidth {
			t.Errorf("block %d unexpected method %q", i, b.Method)
		}
	}
}

func TestFixedWidthBlocksNeverEmpty(t *testing.T) {
	if got := fixedWidthBlocks("x", 900, 0.12); len(got) != 1 {
		t.Fatalf("expected 1 block, got %d", len(got))
	}
	if got := fixedWidthBlocks("", 900, 0.12); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}
}
