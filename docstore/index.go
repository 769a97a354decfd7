package docstore

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Probe constructs the configured vector backend or reports why it cannot.
type Probe func(ctx context.Context) (VectorBackend, error)

// VectorIndex serves retrieval from an embedding backend.
type VectorIndex struct {
	backend VectorBackend
}

func (vi *VectorIndex) Kind() Kind { return KindVector }

func (vi *VectorIndex) Backend() string { return vi.backend.Name() }

func (vi *VectorIndex) Retrieve(ctx context.Context, query string, k int) ([]SearchResult, error) {
	return vi.backend.Retrieve(ctx, query, k)
}

func (vi *VectorIndex) Close() error { return vi.backend.Close() }

// Builder turns the chunk list into an Index. A vector index is preferred;
// whenever the probe or ingestion fails the builder settles on a lexical
// index over the same chunks.
type Builder struct {
	probe Probe
	log   *zap.Logger
}

func NewBuilder(probe Probe, log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}

	return &Builder{probe: probe, log: log}
}

func (b *Builder) Build(ctx context.Context, chunks []Chunk) Index {
	vi, err := b.buildVector(ctx, chunks)
	if err != nil {
		b.log.Warn("vector index unavailable, using lexical retrieval", zap.Error(err))
		return NewLexicalIndex(chunks)
	}

	b.log.Info("vector index ready", zap.String("backend", vi.Backend()), zap.Int("chunks", len(chunks)))
	return vi
}

func (b *Builder) buildVector(ctx context.Context, chunks []Chunk) (vi *VectorIndex, err error) {
	if b.probe == nil {
		return nil, ErrVectorStoreDisabled
	}
	if len(chunks) == 0 {
		return nil, ErrNoChunks
	}

	defer func() {
		if r := recover(); r != nil {
			vi, err = nil, fmt.Errorf("vector backend panicked: %v", r)
		}
	}()

	backend, err := b.probe(ctx)
	if err != nil {
		return nil, err
	}

	if err := backend.Ingest(ctx, chunks); err != nil {
		if cerr := backend.Close(); cerr != nil {
			b.log.Debug("failed to close vector backend", zap.Error(cerr))
		}
		return nil, fmt.Errorf("%s: %w", backend.Name(), err)
	}

	return &VectorIndex{backend: backend}, nil
}
