package chunk

import (
	"strings"

	kertas "github.com/prasetya/kertas"
)

// categoryFamilies classifies chunk content by first-match keyword family.
// Checked in order; the first family with a hit wins.
var categoryFamilies = []struct {
	name  string
	terms []string
}{
	{"financial", []string{"$", "premium", "payment", "revenue", "deductible", "reimburs"}},
	{"regulatory", []string{"regulat", "compliance", "statute", "pursuant", "filing", "jurisdiction"}},
	{"procedural", []string{"procedure", "shall notify", "must submit", "process", "steps", "within 30 days"}},
	{"definition", []string{"means", "defined as", "definition", "refers to"}},
}

func classifyContent(content string) string {
	lower := strings.ToLower(content)
	for _, fam := range categoryFamilies {
		for _, t := range fam.terms {
			if strings.Contains(lower, t) {
				return fam.name
			}
		}
	}
	return "general"
}

// enrich turns balanced blocks into final chunks: sequential index, the
// deterministic (class, index) identifier, size counts, quality score and
// keywords, content category, and the citation-support flags. Caller hints
// from the document are copied into Extra verbatim, no re-extraction.
func enrich(blocks []Block, doc kertas.Document, cfg Config) []kertas.Chunk {
	if len(blocks) == 0 {
		return nil
	}

	chunks := make([]kertas.Chunk, 0, len(blocks))
	for i, b := range blocks {
		score, keywords := scoreChunk(b.Content, doc.Class, cfg)

		var extra map[string]string
		if len(doc.Hints) > 0 {
			extra = make(map[string]string, len(doc.Hints))
			for k, v := range doc.Hints {
				extra[k] = v
			}
		}

		chunks = append(chunks, kertas.Chunk{
			ID:           kertas.ChunkID(doc.Class, i),
			DocumentID:   doc.SourceID,
			Content:      b.Content,
			Index:        i,
			SectionLabel: b.Label,
			Method:       b.Method,

			CharLen:      len(b.Content),
			WordLen:      len(strings.Fields(b.Content)),
			QualityScore: score,
			Keywords:     keywords,
			Category:     classifyContent(b.Content),

			ContainsFinancialData: currencyRe.MatchString(b.Content),
			ContainsDates:         dateRe.MatchString(b.Content),

			Extra: extra,
		})
	}
	return chunks
}
