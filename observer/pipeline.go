package observer

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	otellog "go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	kertas "github.com/prasetya/kertas"
	"github.com/prasetya/kertas/chunk"
)

// ObservedPipeline wraps a chunk.Pipeline with OTEL instrumentation. The
// inner pipeline stays pure and synchronous; the wrapper only records what
// happened around each call.
type ObservedPipeline struct {
	inner *chunk.Pipeline
	inst  *Instruments
}

// WrapPipeline returns an instrumented pipeline.
func WrapPipeline(inner *chunk.Pipeline, inst *Instruments) *ObservedPipeline {
	return &ObservedPipeline{inner: inner, inst: inst}
}

// Class returns the document class of the wrapped pipeline.
func (o *ObservedPipeline) Class() kertas.DocumentClass { return o.inner.Class() }

// Chunk runs the wrapped pipeline and records a span, counters, and
// histograms for the call. The context carries trace propagation only;
// the chunking itself does no I/O.
func (o *ObservedPipeline) Chunk(ctx context.Context, doc kertas.Document) []kertas.Chunk {
	ctx, span := o.inst.Tracer.Start(ctx, "chunking.document", trace.WithAttributes(
		AttrDocumentClass.String(string(o.inner.Class())),
		AttrDocumentID.String(doc.SourceID),
		AttrDocumentBytes.Int(len(doc.Content)),
	))
	defer span.End()
	start := time.Now()

	chunks := o.inner.Chunk(doc)

	durationMs := float64(time.Since(start).Milliseconds())
	method := ""
	fellBack := false
	if len(chunks) > 0 {
		method = string(chunks[0].Method)
		fellBack = chunks[0].Method == kertas.MethodSlidingWindow ||
			chunks[0].Method == kertas.MethodFixedWidth
	}
	span.SetAttributes(
		AttrChunkCount.Int(len(chunks)),
		AttrChunkMethod.String(method),
	)

	attrs := metric.WithAttributes(
		AttrDocumentClass.String(string(o.inner.Class())),
	)
	o.inst.DocumentsChunked.Add(ctx, 1, attrs)
	o.inst.ChunksProduced.Add(ctx, int64(len(chunks)), attrs)
	if fellBack {
		o.inst.FallbacksUsed.Add(ctx, 1, metric.WithAttributes(
			AttrDocumentClass.String(string(o.inner.Class())),
			attribute.String("chunking.method", method),
		))
	}
	o.inst.ChunkDuration.Record(ctx, durationMs, attrs)
	for _, c := range chunks {
		o.inst.ChunkSize.Record(ctx, int64(c.CharLen), attrs)
		o.inst.QualityScore.Record(ctx, c.QualityScore, attrs)
	}

	var rec otellog.Record
	rec.SetSeverity(otellog.SeverityInfo)
	rec.SetBody(otellog.StringValue("document chunked"))
	rec.AddAttributes(
		otellog.String("document.class", string(o.inner.Class())),
		otellog.String("document.id", doc.SourceID),
		otellog.Int("chunking.chunk_count", len(chunks)),
		otellog.Float64("chunking.duration_ms", durationMs),
	)
	o.inst.Logger.Emit(ctx, rec)

	return chunks
}
