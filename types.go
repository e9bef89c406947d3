package kertas

// --- Domain types ---

// DocumentClass identifies the kind of document being chunked. It selects
// the heading-pattern table, keyword vocabulary, and default size band.
type DocumentClass string

const (
	ClassPolicy  DocumentClass = "policy"
	ClassClaim   DocumentClass = "claim"
	ClassGeneric DocumentClass = "generic"
	ClassFiling  DocumentClass = "filing"
)

// Valid reports whether dc is one of the known document classes.
func (dc DocumentClass) Valid() bool {
	switch dc {
	case ClassPolicy, ClassClaim, ClassGeneric, ClassFiling:
		return true
	}
	return false
}

// ParseDocumentClass maps a string to a DocumentClass, defaulting to
// ClassGeneric for unknown values.
func ParseDocumentClass(s string) DocumentClass {
	dc := DocumentClass(s)
	if dc.Valid() {
		return dc
	}
	return ClassGeneric
}

// Document is the immutable input to the chunking engine: raw extracted
// text plus a class tag. The engine only reads it; the caller owns it.
type Document struct {
	SourceID  string            `json:"source_id"`
	Title     string            `json:"title,omitempty"`
	Source    string            `json:"source,omitempty"`
	Class     DocumentClass     `json:"document_class"`
	Content   string            `json:"content"`
	Hints     map[string]string `json:"hints,omitempty"` // structured values known upstream, copied into chunks verbatim
	CreatedAt int64             `json:"created_at,omitempty"`
}

// ChunkMethod records which segmentation strategy produced a chunk.
type ChunkMethod string

const (
	MethodSectionBased  ChunkMethod = "section_based"
	MethodSlidingWindow ChunkMethod = "sliding_window"
	MethodFixedWidth    ChunkMethod = "fixed_width"
	MethodMerged        ChunkMethod = "merged"
	MethodSplit         ChunkMethod = "split"
)

// Chunk is the atomic unit of retrieval: a bounded span of document text
// plus the metadata downstream indexing and citation layers depend on.
//
// ID is deterministic and derived from (document class, index); consumers
// must treat it as the stable join key for citation back-references. Index
// values form a contiguous 0..n-1 sequence within one document.
type Chunk struct {
	ID           string        `json:"id"`
	DocumentID   string        `json:"document_id"`
	Content      string        `json:"content"`
	Index        int           `json:"index"`
	SectionLabel string        `json:"section_label"`
	Method       ChunkMethod   `json:"chunking_method"`

	CharLen      int      `json:"char_len"`
	WordLen      int      `json:"word_len"`
	QualityScore float64  `json:"quality_score"`
	Keywords     []string `json:"keywords,omitempty"`

	// Category is the content classification: financial, regulatory,
	// procedural, definition, or general.
	Category string `json:"category"`

	ContainsFinancialData bool `json:"contains_financial_data"`
	ContainsDates         bool `json:"contains_dates"`

	// Extra carries document-class-specific passthrough values (e.g. an
	// already-known policy number) copied verbatim from Document.Hints.
	Extra map[string]string `json:"extra,omitempty"`
}
