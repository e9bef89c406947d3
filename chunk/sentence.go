package chunk

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// abbreviations that should NOT be treated as sentence boundaries. The set
// leans toward insurance and corporate text (Co., Ins., No. as in "Policy
// No. 12345") on top of the common English ones.
var abbreviations = map[string]bool{
	"mr": true, "mrs": true, "ms": true, "dr": true,
	"prof": true, "sr": true, "jr": true,
	"vs": true, "etc": true, "inc": true, "ltd": true,
	"co": true, "corp": true, "ins": true, "dept": true,
	"e.g": true, "i.e": true, "viz": true, "al": true,
	"approx": true, "est": true, "no": true, "vol": true,
	"sec": true, "para": true, "art": true,
}

// isAbbreviation checks if the word ending at the '.' at dotPos is a
// known abbreviation.
func isAbbreviation(text string, dotPos int) bool {
	start := dotPos
	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:start])
		if !unicode.IsLetter(r) && r != '.' {
			break
		}
		start -= size
	}
	word := strings.ToLower(text[start:dotPos])
	return abbreviations[word]
}

// isDecimalDot checks if the dot at dotPos is part of a number, as in
// 3.14 or $1,250.00.
func isDecimalDot(text string, dotPos int) bool {
	if dotPos == 0 || dotPos+1 >= len(text) {
		return false
	}
	prev := text[dotPos-1]
	next := text[dotPos+1]
	return prev >= '0' && prev <= '9' && next >= '0' && next <= '9'
}

// sentenceBoundaries returns byte positions suitable for splitting text at
// sentence boundaries. Handles ASCII terminators (.!?) with abbreviation
// and decimal awareness, plus CJK sentence-ending punctuation (。！？).
func sentenceBoundaries(text string) []int {
	var boundaries []int
	runes := []rune(text)
	n := len(runes)

	byteOffsets := make([]int, n+1)
	off := 0
	for i, r := range runes {
		byteOffsets[i] = off
		off += utf8.RuneLen(r)
	}
	byteOffsets[n] = off

	for i := 0; i < n; i++ {
		r := runes[i]

		if r == '。' || r == '！' || r == '？' {
			boundaries = append(boundaries, byteOffsets[i+1])
			continue
		}

		if r != '.' && r != '!' && r != '?' {
			continue
		}

		dotBytePos := byteOffsets[i]
		if r == '.' && isDecimalDot(text, dotBytePos) {
			continue
		}
		if r == '.' && isAbbreviation(text, dotBytePos) {
			continue
		}

		// Need whitespace after the terminator to call it a boundary.
		if i+1 < n && (runes[i+1] == ' ' || runes[i+1] == '\n') {
			if runes[i+1] == '\n' {
				boundaries = append(boundaries, byteOffsets[i+1])
			} else if i+2 < n && unicode.IsUpper(runes[i+2]) {
				boundaries = append(boundaries, byteOffsets[i+2])
			} else if i+2 >= n {
				boundaries = append(boundaries, byteOffsets[n])
			}
		} else if i+1 == n {
			boundaries = append(boundaries, byteOffsets[n])
		}
	}
	return boundaries
}

// splitSentences cuts text into trimmed sentences. Text with no detected
// boundary comes back as a single sentence.
func splitSentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	boundaries := sentenceBoundaries(text)
	var sentences []string
	start := 0
	for _, b := range boundaries {
		if b <= start {
			continue
		}
		s := strings.TrimSpace(text[start:b])
		if s != "" {
			sentences = append(sentences, s)
		}
		start = b
	}
	if rest := strings.TrimSpace(text[start:]); rest != "" {
		sentences = append(sentences, rest)
	}
	return sentences
}

// countSentenceTerminators counts sentence-ending punctuation marks. Used
// by the quality scorer to reward chunks with complete sentences.
func countSentenceTerminators(text string) int {
	n := 0
	for _, r := range text {
		switch r {
		case '.', '!', '?', '。', '！', '？':
			n++
		}
	}
	return n
}
