package chunk

import (
	"strings"
	"unicode/utf8"

	kertas "github.com/prasetya/kertas"
)

// windowSentences is the full-document fallback when no section structure
// is detected. Sentences accumulate into a block until target bytes are
// reached; the next block is seeded with the trailing sentences of the
// previous one whose combined length stays within ratio*target, preserving
// context across the cut. The window always advances by at least one new
// sentence, so the loop terminates for any input.
func windowSentences(sentences []string, target int, ratio float64) []Block {
	if len(sentences) == 0 {
		return nil
	}

	overlapBudget := int(float64(target) * ratio)

	var blocks []Block
	var current []string
	currentLen := 0

	flush := func() {
		if len(current) == 0 {
			return
		}
		blocks = append(blocks, Block{
			Content: strings.Join(current, " "),
			Label:   "content",
			Method:  kertas.MethodSlidingWindow,
		})

		// Seed the next window with trailing sentences under the overlap
		// budget, never the whole block.
		var seed []string
		seedLen := 0
		for i := len(current) - 1; i > 0; i-- {
			n := len(current[i])
			if seedLen > 0 {
				n++
			}
			if seedLen+n > overlapBudget {
				break
			}
			seed = append([]string{current[i]}, seed...)
			seedLen += n
		}
		current = seed
		currentLen = seedLen
	}

	for _, s := range sentences {
		n := len(s)
		if currentLen > 0 {
			n++
		}
		if currentLen+n > target && currentLen > 0 {
			flush()
			n = len(s)
			if currentLen > 0 {
				n++
			}
		}
		current = append(current, s)
		currentLen += n
	}
	if len(current) > 0 {
		blocks = append(blocks, Block{
			Content: strings.Join(current, " "),
			Label:   "content",
			Method:  kertas.MethodSlidingWindow,
		})
	}
	return blocks
}

// fixedWidthBlocks is the terminal segmentation guarantee: overlapping
// windows of target bytes advancing by target minus the overlap budget.
// It cannot fail for non-empty input and always makes forward progress.
func fixedWidthBlocks(text string, target int, ratio float64) []Block {
	if text == "" {
		return nil
	}

	step := target - int(float64(target)*ratio)
	if step <= 0 {
		step = target
	}

	var blocks []Block
	for start := 0; start < len(text); {
		end := start + target
		if end >= len(text) {
			end = len(text)
		} else {
			for end > start && !utf8.RuneStart(text[end]) {
				end--
			}
		}
		piece := strings.TrimSpace(text[start:end])
		if piece != "" {
			blocks = append(blocks, Block{
				Content: piece,
				Label:   "content",
				Method:  kertas.MethodFixedWidth,
			})
		}
		if end == len(text) {
			break
		}
		next := start + step
		for next < len(text) && !utf8.RuneStart(text[next]) {
			next++
		}
		start = next
	}
	if len(blocks) == 0 {
		blocks = append(blocks, Block{Content: text, Label: "content", Method: kertas.MethodFixedWidth})
	}
	return blocks
}
