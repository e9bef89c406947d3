package chunk

import (
	"regexp"
	"sort"

	kertas "github.com/prasetya/kertas"
)

// SectionBoundary marks a contiguous labeled span of the document text.
// Boundaries produced by detectSections are non-overlapping, sorted by
// Start, and together cover the full text.
type SectionBoundary struct {
	Start int
	End   int
	Label string
}

// introLabel names the span before the first detected heading.
const introLabel = "introduction"

type headingPattern struct {
	re    *regexp.Regexp
	label string
}

// optional "SECTION II -" / "PART 3." / "ARTICLE IV:" prefix before a
// heading term.
const secPrefix = `(?:(?:section|part|article)\s+[ivxlc\d]+[\s:.–-]*)?`

// sectionPatterns holds one ordered heading table per document class.
// Patterns are anchored to line starts and cap the tail length so body
// prose mentioning a term does not register as a heading. Go's regexp is
// RE2, so matching stays linear even on adversarial input. Compiled once
// at init; a bad pattern fails at startup, never per document.
var sectionPatterns = map[kertas.DocumentClass][]headingPattern{
	kertas.ClassPolicy: {
		{regexp.MustCompile(`(?im)^[ \t]*` + secPrefix + `declarations?\b.{0,60}$`), "declarations"},
		{regexp.MustCompile(`(?im)^[ \t]*` + secPrefix + `coverages?\b.{0,60}$`), "coverage"},
		{regexp.MustCompile(`(?im)^[ \t]*` + secPrefix + `exclusions?\b.{0,60}$`), "exclusions"},
		{regexp.MustCompile(`(?im)^[ \t]*` + secPrefix + `conditions?\b.{0,60}$`), "conditions"},
		{regexp.MustCompile(`(?im)^[ \t]*` + secPrefix + `deductibles?\b.{0,60}$`), "deductible"},
		{regexp.MustCompile(`(?im)^[ \t]*` + secPrefix + `limits?(?:\s+of\s+(?:liability|insurance))?\b.{0,60}$`), "limits"},
		{regexp.MustCompile(`(?im)^[ \t]*` + secPrefix + `definitions?\b.{0,60}$`), "definitions"},
	},
	kertas.ClassClaim: {
		{regexp.MustCompile(`(?im)^[ \t]*claim\s+(?:information|details?|summary)\b.{0,60}$`), "claim_info"},
		{regexp.MustCompile(`(?im)^[ \t]*(?:loss|damage)\s+description\b.{0,60}$`), "loss_description"},
		{regexp.MustCompile(`(?im)^[ \t]*(?:date\s+of\s+loss|incident\s+report)\b.{0,60}$`), "loss_description"},
		{regexp.MustCompile(`(?im)^[ \t]*adjuster(?:'s)?\s+(?:notes?|reports?)\b.{0,60}$`), "adjuster_notes"},
		{regexp.MustCompile(`(?im)^[ \t]*settlements?\b.{0,60}$`), "settlement"},
		{regexp.MustCompile(`(?im)^[ \t]*payments?\s+(?:summary|details?)\b.{0,60}$`), "settlement"},
	},
	kertas.ClassFiling: {
		{regexp.MustCompile(`(?im)^[ \t]*` + secPrefix + `filing\s+(?:information|summary)\b.{0,60}$`), "filing_info"},
		{regexp.MustCompile(`(?im)^[ \t]*` + secPrefix + `financial\s+statements?\b.{0,60}$`), "financial_statements"},
		{regexp.MustCompile(`(?im)^[ \t]*` + secPrefix + `risk\s+factors?\b.{0,60}$`), "risk_factors"},
		{regexp.MustCompile(`(?im)^[ \t]*` + secPrefix + `management'?s?\s+discussion\b.{0,60}$`), "management_discussion"},
		{regexp.MustCompile(`(?im)^[ \t]*` + secPrefix + `exhibits?\b.{0,60}$`), "exhibits"},
	},
	kertas.ClassGeneric: {
		{regexp.MustCompile(`(?im)^[ \t]*` + secPrefix + `(?:executive\s+)?summary\b.{0,60}$`), "summary"},
		{regexp.MustCompile(`(?im)^[ \t]*` + secPrefix + `background\b.{0,60}$`), "background"},
		{regexp.MustCompile(`(?im)^[ \t]*` + secPrefix + `terms?(?:\s+and\s+conditions)?\b.{0,60}$`), "terms"},
		{regexp.MustCompile(`(?im)^[ \t]*` + secPrefix + `(?:conclusion|appendix)\b.{0,60}$`), "appendix"},
	},
}

// detectSections locates labeled headings in text and returns the covering
// section spans. Content before the first heading becomes an introduction
// section. Fewer than two labeled boundaries returns nil: a single heading
// is not treated as reliable structure, and the caller falls back to
// window-based segmentation.
func detectSections(text string, class kertas.DocumentClass) []SectionBoundary {
	patterns, ok := sectionPatterns[class]
	if !ok {
		patterns = sectionPatterns[kertas.ClassGeneric]
	}

	type match struct {
		start int
		label string
	}
	var matches []match
	for _, p := range patterns {
		for _, loc := range p.re.FindAllStringIndex(text, -1) {
			matches = append(matches, match{start: loc[0], label: p.label})
		}
	}
	if len(matches) < 2 {
		return nil
	}

	sort.SliceStable(matches, func(i, j int) bool { return matches[i].start < matches[j].start })

	// Two patterns can claim the same line; the earlier table entry wins.
	deduped := matches[:1]
	for _, m := range matches[1:] {
		if m.start != deduped[len(deduped)-1].start {
			deduped = append(deduped, m)
		}
	}
	if len(deduped) < 2 {
		return nil
	}

	var sections []SectionBoundary
	if deduped[0].start > 0 {
		sections = append(sections, SectionBoundary{Start: 0, End: deduped[0].start, Label: introLabel})
	}
	for i, m := range deduped {
		end := len(text)
		if i+1 < len(deduped) {
			end = deduped[i+1].start
		}
		sections = append(sections, SectionBoundary{Start: m.start, End: end, Label: m.label})
	}
	return sections
}

// hasHeading reports whether any heading pattern for the class matches.
// Used to pick the chunking method for short documents that bypass the
// cascade entirely.
func hasHeading(text string, class kertas.DocumentClass) bool {
	patterns, ok := sectionPatterns[class]
	if !ok {
		patterns = sectionPatterns[kertas.ClassGeneric]
	}
	for _, p := range patterns {
		if p.re.MatchString(text) {
			return true
		}
	}
	return false
}
