// Package postgres implements kertas.Sink using PostgreSQL.
//
// The Sink accepts an externally-owned *pgxpool.Pool via constructor
// injection. The caller creates and closes the pool; Close here is a
// no-op so one pool can back several components.
package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	kertas "github.com/prasetya/kertas"
)

// Sink implements kertas.Sink backed by PostgreSQL.
type Sink struct {
	pool *pgxpool.Pool
}

var _ kertas.Sink = (*Sink)(nil)

// New creates a Sink using an existing pgxpool.Pool.
// The caller owns the pool and is responsible for closing it.
func New(pool *pgxpool.Pool) *Sink {
	return &Sink{pool: pool}
}

// Init creates all required tables.
func (s *Sink) Init(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL DEFAULT '',
			source TEXT NOT NULL DEFAULT '',
			class TEXT NOT NULL,
			content TEXT NOT NULL,
			created_at BIGINT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS chunks (
			document_id TEXT NOT NULL REFERENCES documents(id) ON DELETE CASCADE,
			id TEXT NOT NULL,
			content TEXT NOT NULL,
			chunk_index INTEGER NOT NULL,
			section_label TEXT NOT NULL,
			method TEXT NOT NULL,
			char_len INTEGER NOT NULL,
			word_len INTEGER NOT NULL,
			quality_score DOUBLE PRECISION NOT NULL,
			keywords JSONB NOT NULL DEFAULT '[]',
			category TEXT NOT NULL DEFAULT 'general',
			contains_financial BOOLEAN NOT NULL DEFAULT FALSE,
			contains_dates BOOLEAN NOT NULL DEFAULT FALSE,
			extra JSONB NOT NULL DEFAULT '{}',
			PRIMARY KEY (document_id, id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_chunks_document
			ON chunks(document_id, chunk_index)`,
	}
	for _, q := range queries {
		if _, err := s.pool.Exec(ctx, q); err != nil {
			return fmt.Errorf("init: %w", err)
		}
	}
	return nil
}

// StoreDocument persists a document and its chunks in one transaction,
// replacing any previous chunk set for the same document.
func (s *Sink) StoreDocument(ctx context.Context, doc kertas.Document, chunks []kertas.Chunk) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	createdAt := doc.CreatedAt
	if createdAt == 0 {
		createdAt = kertas.NowUnix()
	}
	_, err = tx.Exec(ctx,
		`INSERT INTO documents (id, title, source, class, content, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title, source = EXCLUDED.source,
			class = EXCLUDED.class, content = EXCLUDED.content`,
		doc.SourceID, doc.Title, doc.Source, string(doc.Class), doc.Content, createdAt)
	if err != nil {
		return fmt.Errorf("store document: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM chunks WHERE document_id = $1`, doc.SourceID); err != nil {
		return fmt.Errorf("clear chunks: %w", err)
	}

	batch := &pgx.Batch{}
	for _, c := range chunks {
		keywords, err := json.Marshal(c.Keywords)
		if err != nil {
			return fmt.Errorf("marshal keywords: %w", err)
		}
		extra, err := json.Marshal(c.Extra)
		if err != nil {
			return fmt.Errorf("marshal extra: %w", err)
		}
		if string(extra) == "null" {
			extra = []byte("{}")
		}
		batch.Queue(
			`INSERT INTO chunks (document_id, id, content, chunk_index, section_label,
				method, char_len, word_len, quality_score, keywords, category,
				contains_financial, contains_dates, extra)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
			doc.SourceID, c.ID, c.Content, c.Index, c.SectionLabel,
			string(c.Method), c.CharLen, c.WordLen, c.QualityScore, keywords,
			c.Category, c.ContainsFinancialData, c.ContainsDates, extra)
	}
	if batch.Len() > 0 {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("store chunks: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Chunks returns the stored chunks for a document, ordered by index.
func (s *Sink) Chunks(ctx context.Context, documentID string) ([]kertas.Chunk, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, content, chunk_index, section_label, method, char_len, word_len,
			quality_score, keywords, category, contains_financial, contains_dates, extra
		 FROM chunks WHERE document_id = $1 ORDER BY chunk_index`, documentID)
	if err != nil {
		return nil, fmt.Errorf("query chunks: %w", err)
	}
	defer rows.Close()

	var chunks []kertas.Chunk
	for rows.Next() {
		var c kertas.Chunk
		var method string
		var keywords, extra []byte
		if err := rows.Scan(&c.ID, &c.Content, &c.Index, &c.SectionLabel, &method,
			&c.CharLen, &c.WordLen, &c.QualityScore, &keywords, &c.Category,
			&c.ContainsFinancialData, &c.ContainsDates, &extra); err != nil {
			return nil, fmt.Errorf("scan chunk: %w", err)
		}
		c.DocumentID = documentID
		c.Method = kertas.ChunkMethod(method)
		if err := json.Unmarshal(keywords, &c.Keywords); err != nil {
			return nil, fmt.Errorf("unmarshal keywords: %w", err)
		}
		if len(extra) > 0 && string(extra) != "{}" {
			if err := json.Unmarshal(extra, &c.Extra); err != nil {
				return nil, fmt.Errorf("unmarshal extra: %w", err)
			}
		}
		chunks = append(chunks, c)
	}
	return chunks, rows.Err()
}

// Close is a no-op; the pool is owned by the caller.
func (s *Sink) Close() error { return nil }
