package docstore

import (
	"context"
	"errors"
	"fmt"
)

// DefaultCollection is the collection every vector backend stores chunks in.
const DefaultCollection = "team_knowledge"

// SourceKey is the metadata key holding the chunk source filename.
const SourceKey = "source"

var (
	ErrVectorStoreDisabled = errors.New("vector store disabled")
	ErrNoChunks            = errors.New("no chunks to index")
)

// Kind tags which variant of index is serving retrieval.
type Kind int

const (
	KindLexical Kind = iota
	KindVector
)

func (k Kind) String() string {
	switch k {
	case KindVector:
		return "vector"
	case KindLexical:
		return "lexical"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Index answers top-k relevance queries over the chunk set it was built from.
type Index interface {
	Kind() Kind
	Retrieve(ctx context.Context, query string, k int) ([]SearchResult, error)
}

// VectorBackend is an embedding-based similarity store.
type VectorBackend interface {
	Name() string
	Ingest(ctx context.Context, chunks []Chunk) error
	Retrieve(ctx context.Context, query string, k int) ([]SearchResult, error)
	Close() error
}

// ChunkID returns the synthetic sequential id of the i-th chunk.
func ChunkID(i int) string {
	return fmt.Sprintf("chunk_%d", i)
}
