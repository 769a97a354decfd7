package docstore

import (
	"context"
	"errors"
	"fmt"

	chroma "github.com/amikos-tech/chroma-go/pkg/api/v2"
	"github.com/amikos-tech/chroma-go/pkg/embeddings"
	"go.uber.org/zap"
)

type ChromaStoreConfig struct {
	BaseURL       string
	Collection    string
	EmbeddingFunc embeddings.EmbeddingFunction
	// RequestSize caps the summed text length of a single Add request.
	RequestSize int
}

// ChromaStore keeps chunks in a collection on a Chroma server.
type ChromaStore struct {
	client      chroma.Client
	col         chroma.Collection
	requestSize int
	log         *zap.Logger
}

func NewChromaStore(ctx context.Context, cfg ChromaStoreConfig, log *zap.Logger) (*ChromaStore, error) {
	if cfg.EmbeddingFunc == nil {
		return nil, errors.New("chroma: embedding function is required")
	}
	if cfg.Collection == "" {
		cfg.Collection = DefaultCollection
	}
	if log == nil {
		log = zap.NewNop()
	}

	client, err := chroma.NewHTTPClient(chroma.WithBaseURL(cfg.BaseURL))
	if err != nil {
		return nil, fmt.Errorf("failed to create chroma client: %w", err)
	}

	// the collection is rebuilt from the document root on every run
	if err := client.DeleteCollection(ctx, cfg.Collection); err != nil {
		log.Debug("no previous collection to drop", zap.String("collection", cfg.Collection), zap.Error(err))
	}

	col, err := client.GetOrCreateCollection(ctx, cfg.Collection,
		chroma.WithCollectionMetadataCreate(
			chroma.NewMetadata(chroma.NewStringAttribute("hnsw:space", "cosine")),
		),
		chroma.WithEmbeddingFunctionCreate(cfg.EmbeddingFunc),
	)
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to get collection %s: %w", cfg.Collection, err)
	}

	return &ChromaStore{
		client:      client,
		col:         col,
		requestSize: cfg.RequestSize,
		log:         log,
	}, nil
}

func (ds *ChromaStore) Name() string { return "chroma" }

func (ds *ChromaStore) Ingest(ctx context.Context, chunks []Chunk) error {
	if len(chunks) == 0 {
		return ErrNoChunks
	}

	for _, b := range buckets(chunks, ds.requestSize) {
		ids := make([]chroma.DocumentID, 0, b.end-b.start)
		texts := make([]string, 0, b.end-b.start)
		metas := make([]chroma.DocumentMetadata, 0, b.end-b.start)
		for i := b.start; i < b.end; i++ {
			ids = append(ids, chroma.DocumentID(ChunkID(i)))
			texts = append(texts, chunks[i].Content)
			metas = append(metas, chroma.NewDocumentMetadata(chroma.NewStringAttribute(SourceKey, chunks[i].Source)))
		}

		err := ds.col.Add(ctx,
			chroma.WithIDs(ids...),
			chroma.WithTexts(texts...),
			chroma.WithMetadatas(metas...),
		)
		if err != nil {
			return fmt.Errorf("failed to add chunks %d-%d: %w", b.start, b.end-1, err)
		}
	}

	return nil
}

func (ds *ChromaStore) Retrieve(ctx context.Context, query string, k int) ([]SearchResult, error) {
	if k <= 0 {
		k = DefaultTopK
	}

	r, err := ds.col.Query(ctx,
		chroma.WithQueryTexts(query),
		chroma.WithNResults(k),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve texts: %w", err)
	}

	docGroups := r.GetDocumentsGroups()
	if len(docGroups) == 0 {
		return []SearchResult{}, nil
	}

	docs := docGroups[0]

	var metadatas chroma.DocumentMetadatas
	if groups := r.GetMetadatasGroups(); len(groups) > 0 {
		metadatas = groups[0]
	}

	var distances embeddings.Distances
	if groups := r.GetDistancesGroups(); len(groups) > 0 {
		distances = groups[0]
	}

	res := make([]SearchResult, 0, len(docs))
	for i := range docs {
		var source string
		if i < len(metadatas) && metadatas[i] != nil {
			source, _ = metadatas[i].GetString(SourceKey)
		}

		var score float32
		if i < len(distances) {
			score = 1 - float32(distances[i])
		}

		res = append(res, SearchResult{
			Content: docs[i].ContentString(),
			Source:  source,
			Score:   score,
		})
	}

	return res, nil
}

func (ds *ChromaStore) Close() error {
	return ds.client.Close()
}

type bucket struct {
	start, end int
}

// buckets groups consecutive chunks so that the text of each group stays
// within limit. A chunk longer than limit travels alone. limit <= 0 means one
// group.
func buckets(chunks []Chunk, limit int) []bucket {
	if len(chunks) == 0 {
		return nil
	}
	if limit <= 0 {
		return []bucket{{start: 0, end: len(chunks)}}
	}

	var res []bucket
	start, size := 0, 0
	for i, c := range chunks {
		l := len(c.Content)
		if i > start && size+l > limit {
			res = append(res, bucket{start: start, end: i})
			start, size = i, 0
		}
		size += l
	}

	return append(res, bucket{start: start, end: len(chunks)})
}
