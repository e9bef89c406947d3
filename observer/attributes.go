package observer

import "go.opentelemetry.io/otel/attribute"

// Attribute keys for chunking observability spans and metrics.
var (
	AttrDocumentClass = attribute.Key("document.class")
	AttrDocumentID    = attribute.Key("document.id")
	AttrDocumentBytes = attribute.Key("document.bytes")

	AttrChunkCount  = attribute.Key("chunking.chunk_count")
	AttrChunkMethod = attribute.Key("chunking.method")
)
