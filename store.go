package kertas

import "context"

// Sink persists chunked documents for a downstream indexing collaborator.
// The engine itself never reads chunks back; Chunks exists so consumers
// (embedding and citation services) can re-fetch records by document.
type Sink interface {
	// StoreDocument persists a document and its chunks atomically.
	// Re-storing the same SourceID replaces the previous chunk set.
	StoreDocument(ctx context.Context, doc Document, chunks []Chunk) error

	// Chunks returns the stored chunks for a document, ordered by index.
	Chunks(ctx context.Context, documentID string) ([]Chunk, error)

	// Init creates any required schema.
	Init(ctx context.Context) error
	Close() error
}
