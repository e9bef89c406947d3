// Package kertas turns raw extracted document text into retrieval-ready
// chunks with bounded size, controlled overlap, and citation-grade metadata.
//
// It is built for insurance and financial document processing: policies,
// claims, regulatory filings, and generic text. The engine reconciles
// semantic coherence, size bounds, and overlap continuity through a layered
// fallback cascade that is guaranteed to produce at least one chunk for any
// non-empty input.
//
// # Quick Start
//
// Create a pipeline for a document class and chunk a document:
//
//	p, err := chunk.New(kertas.ClassPolicy)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	doc := kertas.Document{
//		SourceID: kertas.NewID(),
//		Class:    kertas.ClassPolicy,
//		Content:  text,
//	}
//	chunks := p.Chunk(doc)
//
// # Layout
//
// The root package defines the domain types shared by all components:
//
//   - [Document] — immutable input: text plus a document class tag
//   - [Chunk] — the atomic output unit indexed for retrieval
//   - [DocumentClass] — policy, claim, generic, filing
//   - [ChunkMethod] — which segmentation strategy produced a chunk
//
// Subpackages:
//
// Engine: chunk (section detection, splitting, windowing, balancing,
// scoring, enrichment, and the fallback pipeline).
// Extraction: extract (plain text, markdown, HTML), extract/pdf.
// Storage: store/sqlite (local), store/postgres (pgx).
// Observability: observer (OTEL traces, metrics, logs).
//
// See cmd/kertas for a complete command-line application.
package kertas
