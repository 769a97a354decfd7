package docstore

import (
	"context"
	"errors"
	"fmt"

	chromem "github.com/philippgille/chromem-go"
	"go.uber.org/zap"
)

type ChromemConfig struct {
	Collection string
	Embed      chromem.EmbeddingFunc
	// Concurrency bounds the number of chunks embedded in parallel.
	Concurrency int
}

// ChromemStore is an in-process vector index backed by chromem-go. Similarity
// is cosine: chromem normalizes every embedding on insert and query.
type ChromemStore struct {
	col         *chromem.Collection
	concurrency int
	log         *zap.Logger
}

func NewChromemStore(cfg ChromemConfig, log *zap.Logger) (*ChromemStore, error) {
	if cfg.Embed == nil {
		return nil, errors.New("chromem: embedding function is required")
	}
	if cfg.Collection == "" {
		cfg.Collection = DefaultCollection
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	if log == nil {
		log = zap.NewNop()
	}

	db := chromem.NewDB()
	col, err := db.GetOrCreateCollection(cfg.Collection, map[string]string{"hnsw:space": "cosine"}, cfg.Embed)
	if err != nil {
		return nil, fmt.Errorf("failed to create collection %s: %w", cfg.Collection, err)
	}

	return &ChromemStore{
		col:         col,
		concurrency: cfg.Concurrency,
		log:         log,
	}, nil
}

func (s *ChromemStore) Name() string { return "chromem" }

func (s *ChromemStore) Ingest(ctx context.Context, chunks []Chunk) error {
	if len(chunks) == 0 {
		return ErrNoChunks
	}

	docs := make([]chromem.Document, len(chunks))
	for i, c := range chunks {
		docs[i] = chromem.Document{
			ID:       ChunkID(i),
			Content:  c.Content,
			Metadata: map[string]string{SourceKey: c.Source},
		}
	}

	if err := s.col.AddDocuments(ctx, docs, s.concurrency); err != nil {
		return fmt.Errorf("failed to add chunks: %w", err)
	}

	s.log.Debug("chunks embedded", zap.String("backend", s.Name()), zap.Int("count", len(docs)))
	return nil
}

func (s *ChromemStore) Retrieve(ctx context.Context, query string, k int) ([]SearchResult, error) {
	if k <= 0 {
		k = DefaultTopK
	}

	// chromem rejects nResults above the document count
	count := s.col.Count()
	if count == 0 {
		return []SearchResult{}, nil
	}
	k = min(k, count)

	hits, err := s.col.Query(ctx, query, k, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to query collection: %w", err)
	}

	res := make([]SearchResult, 0, len(hits))
	for _, h := range hits {
		res = append(res, SearchResult{
			Content: h.Content,
			Source:  h.Metadata[SourceKey],
			Score:   h.Similarity,
		})
	}

	return res, nil
}

func (s *ChromemStore) Close() error { return nil }
