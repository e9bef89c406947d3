package chunk

import (
	"log/slog"

	kertas "github.com/prasetya/kertas"
)

// Config holds the per-invocation size band and overlap settings. All
// behavior is reproducible from these explicit parameters; nothing is read
// from the environment at chunking time.
type Config struct {
	// TargetSize is the preferred chunk length in bytes.
	TargetSize int

	// MaxSize is the hard upper bound. Blocks over it are re-split.
	MaxSize int

	// MinSize is the soft lower bound. Blocks under it are merge candidates;
	// a single terminal chunk may still fall below it.
	MinSize int

	// OverlapRatio is the fraction of TargetSize repeated at the start of
	// the next chunk when windowing. Default 0.12.
	OverlapRatio float64

	// Weights tunes the quality score. Zero value means defaults.
	Weights ScoreWeights
}

// ScoreWeights are the quality score components. The defaults are a
// starting policy, not a calibrated model; callers may tune them.
type ScoreWeights struct {
	LengthInBand   float64 // length within [target-200, target+200]
	LengthInBounds float64 // length within [min, max] but outside the band
	LengthOutside  float64 // length outside [min, max]
	Currency       float64 // contains a currency amount
	Date           float64 // contains a recognized date
	Sentences      float64 // has at least two sentence terminators
	VocabularyMax  float64 // cap for per-class vocabulary matches
}

func defaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		LengthInBand:   0.3,
		LengthInBounds: 0.2,
		LengthOutside:  0.1,
		Currency:       0.1,
		Date:           0.1,
		Sentences:      0.1,
		VocabularyMax:  0.3,
	}
}

// defaultConfig returns the class-specific size band. Targets differ per
// class: filings run long and benefit from larger chunks, claims are
// shorter and denser.
func defaultConfig(class kertas.DocumentClass) Config {
	var target int
	switch class {
	case kertas.ClassPolicy:
		target = 1000
	case kertas.ClassClaim:
		target = 800
	case kertas.ClassFiling:
		target = 1400
	default:
		target = 900
	}
	return Config{
		TargetSize:   target,
		MaxSize:      target * 3 / 2,
		MinSize:      target * 3 / 10,
		OverlapRatio: 0.12,
		Weights:      defaultScoreWeights(),
	}
}

// validate rejects bounds that would make the pipeline misbehave. Called
// once at construction; per-document calls never re-validate.
func (c Config) validate() error {
	if c.TargetSize <= 0 {
		return &kertas.ErrConfig{Field: "target_size", Message: "must be positive"}
	}
	if c.MinSize < 0 {
		return &kertas.ErrConfig{Field: "min_size", Message: "must not be negative"}
	}
	if c.MinSize >= c.MaxSize {
		return &kertas.ErrConfig{Field: "min_size", Message: "must be smaller than max_size"}
	}
	if c.TargetSize > c.MaxSize {
		return &kertas.ErrConfig{Field: "target_size", Message: "must not exceed max_size"}
	}
	if c.OverlapRatio <= 0 || c.OverlapRatio > 0.5 {
		return &kertas.ErrConfig{Field: "overlap_ratio", Message: "must be in (0, 0.5]"}
	}
	return nil
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithTargetSize sets the preferred chunk size in bytes. MaxSize and
// MinSize are rescaled around it unless set explicitly.
func WithTargetSize(n int) Option {
	return func(p *Pipeline) {
		p.cfg.TargetSize = n
		p.cfg.MaxSize = n * 3 / 2
		p.cfg.MinSize = n * 3 / 10
	}
}

// WithSizeBounds sets the min/max chunk size explicitly.
func WithSizeBounds(min, max int) Option {
	return func(p *Pipeline) {
		p.cfg.MinSize = min
		p.cfg.MaxSize = max
	}
}

// WithOverlapRatio sets the sliding-window overlap ratio.
func WithOverlapRatio(r float64) Option {
	return func(p *Pipeline) { p.cfg.OverlapRatio = r }
}

// WithScoreWeights overrides the quality score weighting.
func WithScoreWeights(w ScoreWeights) Option {
	return func(p *Pipeline) { p.cfg.Weights = w }
}

// WithLogger sets a structured logger for the pipeline. When set, the
// pipeline emits debug logs for each cascade stage. If not set, no logs
// are emitted.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}
