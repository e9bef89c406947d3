package chunk

import (
	"strings"
	"testing"

	kertas "github.com/prasetya/kertas"
)

func testConfig(min, target, max int) Config {
	return Config{
		TargetSize:   target,
		MaxSize:      max,
		MinSize:      min,
		OverlapRatio: 0.12,
		Weights:      defaultScoreWeights(),
	}
}

func TestBalanceEmpty(t *testing.T) {
	if got := balance(nil, testConfig(100, 300, 450)); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestBalanceMergesUndersized(t *testing.T) {
	blocks := []Block{
		{Content: "Tiny first piece.", Label: "coverage", Method: kertas.MethodSectionBased},
		{Content: "Tiny second piece.", Label: "exclusions", Method: kertas.MethodSectionBased},
	}
	out := balance(blocks, testConfig(100, 300, 450))
	if len(out) != 1 {
		t.Fatalf("expected 1 merged block, got %d", len(out))
	}
	if out[0].Method != kertas.MethodMerged {
		t.Errorf("expected merged method, got %q", out[0].Method)
	}
	if out[0].Label != "coverage" {
		t.Errorf("merged block must keep first label, got %q", out[0].Label)
	}
	if !strings.Contains(out[0].Content, "second") {
		t.Error("merge lost content")
	}
}

func TestBalanceSplitsOversized(t *testing.T) {
	big := strings.Repeat("The insured must give prompt notice of loss. ", 30)
	blocks := []Block{{Content: strings.TrimSpace(big), Label: "conditions", Method: kertas.MethodSectionBased}}
	out := balance(blocks, testConfig(100, 300, 450))
	if len(out) < 2 {
		t.Fatal("expected split into multiple blocks")
	}
	for i, b := range out {
		if len(b.Content) > 450 {
			t.Errorf("block %d length %d exceeds max", i, len(b.Content))
		}
		if b.Method != kertas.MethodSplit {
			t.Errorf("block %d expected split method, got %q", i, b.Method)
		}
		if b.Label != "conditions" {
			t.Errorf("block %d lost label: %q", i, b.Label)
		}
	}
}

func TestBalanceKeepsInBand(t *testing.T) {
	content := strings.Repeat("Premium due monthly. ", 10)
	blocks := []Block{{Content: strings.TrimSpace(content), Label: "coverage", Method: kertas.MethodSectionBased}}
	out := balance(blocks, testConfig(100, 300, 450))
	if len(out) != 1 || out[0].Method != kertas.MethodSectionBased {
		t.Errorf("in-band block must pass through unchanged: %+v", out)
	}
}

func TestBalanceSingletonBelowMinUnchanged(t *testing.T) {
	// No merge candidate exists, so the undersized block stays as-is.
	blocks := []Block{{Content: "Too small.", Label: "content", Method: kertas.MethodFixedWidth}}
	out := balance(blocks, testConfig(100, 300, 450))
	if len(out) != 1 || out[0].Content != "Too small." || out[0].Method != kertas.MethodFixedWidth {
		t.Errorf("singleton must be unchanged: %+v", out)
	}
}

func TestBalanceNoMergeWhenResultWouldExceedMax(t *testing.T) {
	small := "Below the minimum size."
	big := strings.Repeat("word ", 85)
	blocks := []Block{
		{Content: small, Label: "a", Method: kertas.MethodSectionBased},
		{Content: strings.TrimSpace(big), Label: "b", Method: kertas.MethodSectionBased},
	}
	out := balance(blocks, testConfig(100, 300, 440))
	if len(out) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(out))
	}
	if out[0].Method == kertas.MethodMerged {
		t.Error("merge must not exceed max")
	}
}

func TestBalanceSplitTailMergesForward(t *testing.T) {
	// An oversized block whose re-split leaves a short tail: the tail
	// re-enters the pass and absorbs the next block instead of surviving
	// as an undersized non-terminal chunk.
	coverage := strings.TrimSpace(strings.Repeat("The policy pays for direct physical loss to covered property. ", 23))
	exclusions := strings.TrimSpace(strings.Repeat("Loss caused by flood or earth movement is not covered. ", 7))
	blocks := []Block{
		{Content: coverage, Label: "coverage", Method: kertas.MethodSectionBased},
		{Content: exclusions, Label: "exclusions", Method: kertas.MethodSectionBased},
	}
	out := balance(blocks, testConfig(250, 900, 1400))
	if len(out) < 2 {
		t.Fatalf("expected split plus merged tail, got %d blocks", len(out))
	}
	for i, b := range out {
		if len(b.Content) > 1400 {
			t.Errorf("block %d length %d exceeds max", i, len(b.Content))
		}
		if i < len(out)-1 && len(b.Content) < 250 {
			t.Errorf("non-terminal block %d length %d below min", i, len(b.Content))
		}
	}
	last := out[len(out)-1]
	if last.Method != kertas.MethodMerged {
		t.Errorf("tail should have merged with the next block, got %q", last.Method)
	}
	if !strings.Contains(last.Content, "flood") {
		t.Error("merge lost neighbor content")
	}
}

func TestBalanceSinglePass(t *testing.T) {
	// Ten tiny blocks: merging runs left to right and terminates.
	var blocks []Block
	for i := 0; i < 10; i++ {
		blocks = append(blocks, Block{Content: "Tiny piece here.", Label: "content", Method: kertas.MethodSlidingWindow})
	}
	out := balance(blocks, testConfig(100, 300, 450))
	if len(out) == 0 || len(out) >= 10 {
		t.Fatalf("expected consolidation, got %d blocks", len(out))
	}
	total := 0
	for _, b := range out {
		total += strings.Count(b.Content, "Tiny")
	}
	if total != 10 {
		t.Errorf("content lost or duplicated: %d pieces", total)
	}
}
