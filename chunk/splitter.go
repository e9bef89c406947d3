package chunk

import (
	"strings"
	"unicode/utf8"
)

// splitText reduces text to pieces of at most max bytes. Boundaries are
// tried in order of preference: blank-line paragraphs, then sentences, then
// hard cuts. Each stage only touches pieces that still violate the bound;
// pieces already under max are never re-split. Concatenating the pieces
// (ignoring the separators removed between them) reconstructs the text.
func splitText(text string, max int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if len(text) <= max {
		return []string{text}
	}

	var pieces []string
	for _, p := range splitParagraphs(text, max) {
		if len(p) <= max {
			pieces = append(pieces, p)
			continue
		}
		for _, s := range splitOnSentences(p, max) {
			if len(s) <= max {
				pieces = append(pieces, s)
			} else {
				pieces = append(pieces, hardCut(s, max)...)
			}
		}
	}
	return pieces
}

// splitParagraphs accumulates blank-line-separated paragraphs into pieces
// of at most max bytes, flushing whenever the next paragraph would not fit.
// A single paragraph over max is emitted as-is for the next stage.
func splitParagraphs(text string, max int) []string {
	paragraphs := strings.Split(text, "\n\n")

	var pieces []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			pieces = append(pieces, current.String())
			current.Reset()
		}
	}

	for _, p := range paragraphs {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if len(p) > max {
			flush()
			pieces = append(pieces, p)
			continue
		}

		needed := len(p)
		if current.Len() > 0 {
			needed += current.Len() + 2
		}
		if needed > max {
			flush()
		}
		if current.Len() > 0 {
			current.WriteString("\n\n")
		}
		current.WriteString(p)
	}
	flush()
	return pieces
}

// splitOnSentences accumulates sentences into pieces of at most max bytes.
// A single sentence over max is emitted as-is for the hard-cut stage.
func splitOnSentences(text string, max int) []string {
	sentences := splitSentences(text)
	if len(sentences) == 0 {
		return nil
	}

	var pieces []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			pieces = append(pieces, current.String())
			current.Reset()
		}
	}

	for _, s := range sentences {
		if len(s) > max {
			flush()
			pieces = append(pieces, s)
			continue
		}

		needed := len(s)
		if current.Len() > 0 {
			needed += current.Len() + 1
		}
		if needed > max {
			flush()
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(s)
	}
	flush()
	return pieces
}

// hardCut slices text at max-byte boundaries, backing off so a cut never
// lands inside a multi-byte rune. Terminal guarantee for pathologically
// long sentences.
func hardCut(text string, max int) []string {
	if max <= 0 {
		return []string{text}
	}

	var pieces []string
	for len(text) > max {
		cut := max
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		if cut == 0 {
			cut = max // malformed input; take the bytes as they are
		}
		pieces = append(pieces, text[:cut])
		text = text[cut:]
	}
	if text != "" {
		pieces = append(pieces, text)
	}
	return pieces
}
