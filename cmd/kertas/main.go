package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/prasetya/kertas"
	"github.com/prasetya/kertas/chunk"
	"github.com/prasetya/kertas/extract"
	pdfextract "github.com/prasetya/kertas/extract/pdf"
	"github.com/prasetya/kertas/internal/config"
	"github.com/prasetya/kertas/observer"
	"github.com/prasetya/kertas/store/postgres"
	"github.com/prasetya/kertas/store/sqlite"
)

func main() {
	var (
		classFlag  = flag.String("class", "generic", "document class: policy, claim, filing, generic")
		configFlag = flag.String("config", os.Getenv("KERTAS_CONFIG"), "path to kertas.toml")
		titleFlag  = flag.String("title", "", "document title (defaults to the file name)")
	)
	flag.Parse()

	ctx := context.Background()

	// 1. Load config
	cfg := config.Load(*configFlag)

	// 2. Build the pipeline for the requested class
	class := kertas.ParseDocumentClass(*classFlag)
	pipeline, err := chunk.New(class, classOptions(cfg.Chunking.ForClass(string(class)))...)
	if err != nil {
		log.Fatalf("kertas: %v", err)
	}

	// 3. Optional observability
	chunkFn := func(_ context.Context, doc kertas.Document) []kertas.Chunk {
		return pipeline.Chunk(doc)
	}
	if cfg.Observer.Enabled {
		inst, shutdown, err := observer.Init(ctx)
		if err != nil {
			log.Fatalf("kertas: observer: %v", err)
		}
		defer shutdown(ctx)
		observed := observer.WrapPipeline(pipeline, inst)
		chunkFn = observed.Chunk
	}

	// 4. Optional persistence
	var sink kertas.Sink
	switch {
	case cfg.Database.PostgresURL != "":
		pool, err := pgxpool.New(ctx, cfg.Database.PostgresURL)
		if err != nil {
			log.Fatalf("kertas: postgres: %v", err)
		}
		sink = postgres.New(pool)
	case cfg.Database.Path != "":
		sink = sqlite.New(cfg.Database.Path)
	}
	if sink != nil {
		if err := sink.Init(ctx); err != nil {
			log.Fatalf("kertas: init store: %v", err)
		}
		defer sink.Close()
	}

	// 5. Chunk each input; "-" or no args reads stdin
	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	enc := json.NewEncoder(os.Stdout)
	for _, path := range paths {
		doc, err := readDocument(path, class, *titleFlag)
		if err != nil {
			log.Fatalf("kertas: %s: %v", path, err)
		}

		chunks := chunkFn(ctx, doc)
		if sink != nil {
			if err := sink.StoreDocument(ctx, doc, chunks); err != nil {
				log.Fatalf("kertas: store %s: %v", path, err)
			}
		}
		for _, c := range chunks {
			if err := enc.Encode(c); err != nil {
				log.Fatalf("kertas: encode: %v", err)
			}
		}
	}
}

// classOptions translates a config override block into pipeline options,
// skipping zero values so the engine's class defaults apply.
func classOptions(cc config.ClassConfig) []chunk.Option {
	var opts []chunk.Option
	if cc.TargetSize > 0 {
		opts = append(opts, chunk.WithTargetSize(cc.TargetSize))
	}
	if cc.MinSize > 0 && cc.MaxSize > 0 {
		opts = append(opts, chunk.WithSizeBounds(cc.MinSize, cc.MaxSize))
	}
	if cc.OverlapRatio > 0 {
		opts = append(opts, chunk.WithOverlapRatio(cc.OverlapRatio))
	}
	return opts
}

// readDocument reads one input and extracts its plain text based on the
// file extension. "-" reads plain text from stdin.
func readDocument(path string, class kertas.DocumentClass, title string) (kertas.Document, error) {
	var (
		raw []byte
		err error
		ct  extract.ContentType
	)
	if path == "-" {
		raw, err = io.ReadAll(os.Stdin)
		ct = extract.TypePlainText
		if title == "" {
			title = "stdin"
		}
	} else {
		raw, err = os.ReadFile(path)
		ct = extract.ContentTypeFromExtension(filepath.Ext(path))
		if title == "" {
			title = filepath.Base(path)
		}
	}
	if err != nil {
		return kertas.Document{}, err
	}

	text, err := extractorFor(ct).Extract(raw)
	if err != nil {
		return kertas.Document{}, fmt.Errorf("extract %s: %w", ct, err)
	}

	return kertas.Document{
		SourceID:  kertas.NewID(),
		Title:     title,
		Source:    path,
		Class:     class,
		Content:   text,
		CreatedAt: kertas.NowUnix(),
	}, nil
}

func extractorFor(ct extract.ContentType) extract.Extractor {
	switch ct {
	case extract.TypeMarkdown:
		return extract.MarkdownExtractor{}
	case extract.TypeHTML:
		return extract.HTMLExtractor{}
	case extract.TypePDF:
		return pdfextract.NewExtractor()
	default:
		return extract.PlainTextExtractor{}
	}
}
