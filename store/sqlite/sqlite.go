// Package sqlite implements kertas.Sink using pure-Go SQLite.
// Zero CGO required; suitable for local ingestion runs and tests.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kertas "github.com/prasetya/kertas"

	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

// Option configures a SQLite Sink.
type Option func(*Sink)

// WithLogger sets a structured logger for the sink. When set, the sink
// emits debug logs for every operation with timing and row counts. If not
// set, no logs are emitted.
func WithLogger(l *slog.Logger) Option {
	return func(s *Sink) { s.logger = l }
}

// Sink implements kertas.Sink backed by a local SQLite file.
type Sink struct {
	db     *sql.DB
	logger *slog.Logger
}

var _ kertas.Sink = (*Sink)(nil)

// nopLogger discards all output.
var nopLogger = slog.New(discardHandler{})

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }

// New creates a Sink using a local SQLite file at dbPath. A single shared
// connection serializes writers, eliminating SQLITE_BUSY errors from
// concurrent ingestion goroutines.
func New(dbPath string, opts ...Option) *Sink {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		// sql.Open only fails when the driver is not registered; with the
		// blank import above that never happens.
		panic(fmt.Sprintf("sqlite: open driver: %v", err))
	}
	db.SetMaxOpenConns(1)
	s := &Sink{db: db, logger: nopLogger}
	for _, o := range opts {
		o(s)
	}
	s.logger.Debug("sqlite: sink opened", "path", dbPath)
	return s
}

// Init creates all required tables.
func (s *Sink) Init(ctx context.Context) error {
	start := time.Now()
	tables := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL DEFAULT '',
			source TEXT NOT NULL DEFAULT '',
			class TEXT NOT NULL,
			content TEXT NOT NULL,
			created_at INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS chunks (
			document_id TEXT NOT NULL,
			id TEXT NOT NULL,
			content TEXT NOT NULL,
			chunk_index INTEGER NOT NULL,
			section_label TEXT NOT NULL,
			method TEXT NOT NULL,
			char_len INTEGER NOT NULL,
			word_len INTEGER NOT NULL,
			quality_score REAL NOT NULL,
			keywords TEXT NOT NULL DEFAULT '[]',
			category TEXT NOT NULL DEFAULT 'general',
			contains_financial INTEGER NOT NULL DEFAULT 0,
			contains_dates INTEGER NOT NULL DEFAULT 0,
			extra TEXT NOT NULL DEFAULT '{}',
			PRIMARY KEY (document_id, id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_chunks_document
			ON chunks(document_id, chunk_index)`,
	}
	for _, q := range tables {
		if _, err := s.db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("init: %w", err)
		}
	}
	s.logger.Debug("sqlite: init done", "elapsed", time.Since(start))
	return nil
}

// StoreDocument persists a document and its chunks in one transaction.
// Existing chunks for the same document are replaced, so re-ingesting an
// updated document never leaves stale records behind.
func (s *Sink) StoreDocument(ctx context.Context, doc kertas.Document, chunks []kertas.Chunk) error {
	start := time.Now()
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	createdAt := doc.CreatedAt
	if createdAt == 0 {
		createdAt = kertas.NowUnix()
	}
	_, err = tx.ExecContext(ctx,
		`INSERT OR REPLACE INTO documents (id, title, source, class, content, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		doc.SourceID, doc.Title, doc.Source, string(doc.Class), doc.Content, createdAt)
	if err != nil {
		return fmt.Errorf("store document: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM chunks WHERE document_id = ?`, doc.SourceID); err != nil {
		return fmt.Errorf("clear chunks: %w", err)
	}

	for _, c := range chunks {
		keywords, err := json.Marshal(c.Keywords)
		if err != nil {
			return fmt.Errorf("marshal keywords: %w", err)
		}
		extra, err := json.Marshal(c.Extra)
		if err != nil {
			return fmt.Errorf("marshal extra: %w", err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO chunks (document_id, id, content, chunk_index, section_label,
				method, char_len, word_len, quality_score, keywords, category,
				contains_financial, contains_dates, extra)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			doc.SourceID, c.ID, c.Content, c.Index, c.SectionLabel,
			string(c.Method), c.CharLen, c.WordLen, c.QualityScore, string(keywords),
			c.Category, boolToInt(c.ContainsFinancialData), boolToInt(c.ContainsDates), string(extra))
		if err != nil {
			return fmt.Errorf("store chunk %s: %w", c.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	s.logger.Debug("sqlite: document stored",
		"document_id", doc.SourceID, "chunks", len(chunks), "elapsed", time.Since(start))
	return nil
}

// Chunks returns the stored chunks for a document, ordered by index.
func (s *Sink) Chunks(ctx context.Context, documentID string) ([]kertas.Chunk, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, content, chunk_index, section_label, method, char_len, word_len,
			quality_score, keywords, category, contains_financial, contains_dates, extra
		 FROM chunks WHERE document_id = ? ORDER BY chunk_index`, documentID)
	if err != nil {
		return nil, fmt.Errorf("query chunks: %w", err)
	}
	defer rows.Close()

	var chunks []kertas.Chunk
	for rows.Next() {
		var c kertas.Chunk
		var method, keywords, extra string
		var financial, dates int
		if err := rows.Scan(&c.ID, &c.Content, &c.Index, &c.SectionLabel, &method,
			&c.CharLen, &c.WordLen, &c.QualityScore, &keywords, &c.Category,
			&financial, &dates, &extra); err != nil {
			return nil, fmt.Errorf("scan chunk: %w", err)
		}
		c.DocumentID = documentID
		c.Method = kertas.ChunkMethod(method)
		c.ContainsFinancialData = financial != 0
		c.ContainsDates = dates != 0
		if err := json.Unmarshal([]byte(keywords), &c.Keywords); err != nil {
			return nil, fmt.Errorf("unmarshal keywords: %w", err)
		}
		if extra != "null" && extra != "{}" {
			if err := json.Unmarshal([]byte(extra), &c.Extra); err != nil {
				return nil, fmt.Errorf("unmarshal extra: %w", err)
			}
		}
		chunks = append(chunks, c)
	}
	return chunks, rows.Err()
}

// Close closes the underlying database.
func (s *Sink) Close() error {
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
