// Package chunk implements the adaptive multi-strategy chunking engine.
//
// A Pipeline turns raw extracted document text into a sequence of bounded,
// overlapping, metadata-enriched chunks. Segmentation strategies are tried
// in a fallback cascade: labeled section detection first, then a sliding
// sentence window, then fixed-width slicing, which cannot fail. Every
// successful path ends in balancing, quality scoring, and metadata
// enrichment, and the result is fully deterministic for a given
// (text, class, config) triple.
package chunk

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/text/unicode/norm"

	kertas "github.com/prasetya/kertas"
)

// Pipeline chunks documents of a single class. It holds no mutable state,
// so one Pipeline may be shared across goroutines chunking different
// documents concurrently.
type Pipeline struct {
	class  kertas.DocumentClass
	cfg    Config
	logger *slog.Logger
}

// nopLogger discards all output.
var nopLogger = slog.New(discardHandler{})

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }

// New creates a Pipeline for the given document class. Size bounds default
// to the class-specific band and can be overridden with options. Invalid
// bounds are rejected here with a descriptive error; per-document calls
// never fail.
func New(class kertas.DocumentClass, opts ...Option) (*Pipeline, error) {
	if !class.Valid() {
		class = kertas.ClassGeneric
	}
	p := &Pipeline{
		class:  class,
		cfg:    defaultConfig(class),
		logger: nopLogger,
	}
	for _, o := range opts {
		o(p)
	}
	if err := p.cfg.validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Config returns the effective configuration.
func (p *Pipeline) Config() Config { return p.cfg }

// Class returns the document class the pipeline was built for.
func (p *Pipeline) Class() kertas.DocumentClass { return p.class }

// Chunk runs the fallback cascade over one document and returns its
// chunks. Empty or whitespace-only input returns nil: an empty document
// legitimately has nothing to index, so that is not an error. For any
// non-empty input the result is non-empty.
func (p *Pipeline) Chunk(doc kertas.Document) []kertas.Chunk {
	doc.Class = p.class
	text := normalizeText(doc.Content)
	if text == "" {
		p.logger.Debug("chunk: empty input", "source_id", doc.SourceID)
		return nil
	}

	// A document shorter than the minimum chunk size is emitted verbatim
	// as a single chunk; there is nothing to merge it with.
	if len(text) < p.cfg.MinSize {
		method := kertas.MethodFixedWidth
		if hasHeading(text, p.class) {
			method = kertas.MethodSectionBased
		}
		return enrich([]Block{{Content: text, Label: "content", Method: method}}, doc, p.cfg)
	}

	if blocks := p.sectionPass(text); len(blocks) > 0 {
		p.logger.Debug("chunk: section pass succeeded",
			"source_id", doc.SourceID, "blocks", len(blocks))
		return enrich(blocks, doc, p.cfg)
	}

	if blocks := p.windowPass(text); len(blocks) > 0 {
		p.logger.Debug("chunk: window fallback used",
			"source_id", doc.SourceID, "blocks", len(blocks))
		return enrich(blocks, doc, p.cfg)
	}

	blocks := balance(fixedWidthBlocks(text, p.cfg.TargetSize, p.cfg.OverlapRatio), p.cfg)
	p.logger.Debug("chunk: fixed-width fallback used",
		"source_id", doc.SourceID, "blocks", len(blocks))
	return enrich(blocks, doc, p.cfg)
}

// sectionPass segments along detected section boundaries and balances the
// result. Returns nil when fewer than two labeled headings are found.
func (p *Pipeline) sectionPass(text string) []Block {
	sections := detectSections(text, p.class)
	if len(sections) == 0 {
		return nil
	}

	var blocks []Block
	for _, s := range sections {
		content := strings.TrimSpace(text[s.Start:s.End])
		if content == "" {
			continue
		}
		blocks = append(blocks, Block{
			Content: content,
			Label:   s.Label,
			Method:  kertas.MethodSectionBased,
		})
	}
	return balance(blocks, p.cfg)
}

// windowPass segments with the sliding sentence window and balances the
// result.
func (p *Pipeline) windowPass(text string) []Block {
	sentences := splitSentences(text)
	if len(sentences) == 0 {
		return nil
	}
	blocks := windowSentences(sentences, p.cfg.TargetSize, p.cfg.OverlapRatio)
	return balance(blocks, p.cfg)
}

// normalizeText applies Unicode NFC and newline normalization and trims
// surrounding whitespace. Chunk offsets and the coverage guarantee are
// relative to this normalized form.
func normalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = norm.NFC.String(text)
	return strings.TrimSpace(text)
}
