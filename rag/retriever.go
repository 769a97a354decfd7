package rag

import (
	"context"

	"github.com/gamma-omg/teammind/docstore"
	"go.uber.org/zap"
)

// Retriever serves queries from the active index. When a vector query fails
// the same query is answered lexically over the chunk list.
type Retriever struct {
	index    docstore.Index
	fallback *docstore.LexicalIndex
	log      *zap.Logger
}

func NewRetriever(index docstore.Index, chunks []docstore.Chunk, log *zap.Logger) *Retriever {
	if log == nil {
		log = zap.NewNop()
	}

	r := &Retriever{index: index, log: log}
	if lex, ok := index.(*docstore.LexicalIndex); ok {
		r.fallback = lex
	} else {
		r.fallback = docstore.NewLexicalIndex(chunks)
	}
	if r.index == nil {
		r.index = r.fallback
	}

	return r
}

func (r *Retriever) Kind() docstore.Kind { return r.index.Kind() }

func (r *Retriever) Retrieve(ctx context.Context, query string, k int) []docstore.SearchResult {
	if k <= 0 {
		k = docstore.DefaultTopK
	}

	res, err := r.index.Retrieve(ctx, query, k)
	if err != nil {
		r.log.Warn("index query failed, using lexical retrieval",
			zap.String("index", r.index.Kind().String()),
			zap.Error(err))
		return r.fallback.Search(query, k)
	}

	return res
}
