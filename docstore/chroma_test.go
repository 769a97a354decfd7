package docstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	chroma "github.com/amikos-tech/chroma-go/pkg/api/v2"
	"github.com/amikos-tech/chroma-go/pkg/embeddings"
	mocks "github.com/gamma-omg/teammind/mocks/chroma"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func Test_buckets(t *testing.T) {
	mk := func(texts ...string) []Chunk {
		chunks := make([]Chunk, 0, len(texts))
		for _, txt := range texts {
			chunks = append(chunks, Chunk{Content: txt})
		}
		return chunks
	}

	var cases = []struct {
		chunks []Chunk
		limit  int
		output []bucket
	}{
		{
			chunks: mk("Bananas", "are", "berries", "but", "strawberries", "aren't"),
			limit:  13,
			output: []bucket{{0, 2}, {2, 4}, {4, 5}, {5, 6}},
		},
		{
			chunks: mk("a", "b", "c"),
			limit:  0,
			output: []bucket{{0, 3}},
		},
		{
			chunks: mk("much too long", "x"),
			limit:  4,
			output: []bucket{{0, 1}, {1, 2}},
		},
		{
			chunks: nil,
			limit:  10,
			output: nil,
		},
	}

	for i, c := range cases {
		t.Run(fmt.Sprintf("case_%d", i), func(t *testing.T) {
			assert.Equal(t, c.output, buckets(c.chunks, c.limit))
		})
	}
}

func Test_ChunkID(t *testing.T) {
	assert.Equal(t, "chunk_0", ChunkID(0))
	assert.Equal(t, "chunk_12", ChunkID(12))
}

func Test_ChromaStore_Ingest_SplitsToBuckets(t *testing.T) {
	col := mocks.NewMockCollection(t)
	store := &ChromaStore{col: col, requestSize: 13, log: zap.NewNop()}

	texts := []string{"Bananas", "are", "berries", "but", "strawberries", "aren't"}
	chunks := make([]Chunk, len(texts))
	for i, txt := range texts {
		chunks[i] = Chunk{Source: fmt.Sprintf("facts/%d.md", i), Content: txt}
	}

	var (
		ids      []chroma.DocumentID
		contents []string
		sources  []string
	)
	col.EXPECT().Add(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, opts ...chroma.CollectionUpdateOption) {
			op, err := chroma.NewCollectionUpdateOp(opts...)
			require.NoError(t, err)
			require.Len(t, op.Metadatas, len(op.Ids))

			ids = append(ids, op.Ids...)
			for _, d := range op.Documents {
				contents = append(contents, d.ContentString())
			}
			for _, m := range op.Metadatas {
				src, ok := m.GetString(SourceKey)
				require.True(t, ok)
				sources = append(sources, src)
			}
		}).
		Return(nil).
		Times(4)

	require.NoError(t, store.Ingest(context.Background(), chunks))

	assert.Equal(t, []chroma.DocumentID{"chunk_0", "chunk_1", "chunk_2", "chunk_3", "chunk_4", "chunk_5"}, ids)
	assert.Equal(t, texts, contents)
	assert.Equal(t, []string{"facts/0.md", "facts/1.md", "facts/2.md", "facts/3.md", "facts/4.md", "facts/5.md"}, sources)
}

func Test_ChromaStore_Ingest_Errors(t *testing.T) {
	store := &ChromaStore{col: mocks.NewMockCollection(t), log: zap.NewNop()}
	assert.ErrorIs(t, store.Ingest(context.Background(), nil), ErrNoChunks)

	col := mocks.NewMockCollection(t)
	store = &ChromaStore{col: col, log: zap.NewNop()}
	col.EXPECT().Add(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("unavailable"))

	err := store.Ingest(context.Background(), []Chunk{{Source: "a.md", Content: "text"}})
	assert.ErrorContains(t, err, "unavailable")
}

func Test_ChromaStore_Retrieve(t *testing.T) {
	col := mocks.NewMockCollection(t)
	store := &ChromaStore{col: col, log: zap.NewNop()}

	qr := &chroma.QueryResultImpl{
		DocumentsLists: []chroma.Documents{{
			chroma.NewTextDocument("A day on Venus is longer than its year."),
			chroma.NewTextDocument("Bananas are berries."),
		}},
		MetadatasLists: []chroma.DocumentMetadatas{{
			chroma.NewDocumentMetadata(chroma.NewStringAttribute(SourceKey, "space.md")),
			chroma.NewDocumentMetadata(chroma.NewStringAttribute(SourceKey, "fruit.md")),
		}},
		DistancesLists: []embeddings.Distances{{0.25, 0.5}},
	}

	var nResults int
	col.EXPECT().Query(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, opts ...chroma.CollectionQueryOption) {
			op, err := chroma.NewCollectionQueryOp(opts...)
			require.NoError(t, err)
			nResults = op.NResults
		}).
		Return(qr, nil)

	res, err := store.Retrieve(context.Background(), "venus", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, nResults)
	assert.Equal(t, []SearchResult{
		{Content: "A day on Venus is longer than its year.", Source: "space.md", Score: 0.75},
		{Content: "Bananas are berries.", Source: "fruit.md", Score: 0.5},
	}, res)
}

func Test_ChromaStore_Retrieve_PartialResults(t *testing.T) {
	var cases = []struct {
		result *chroma.QueryResultImpl
		output []SearchResult
	}{
		{
			result: &chroma.QueryResultImpl{},
			output: []SearchResult{},
		},
		{
			result: &chroma.QueryResultImpl{DocumentsLists: []chroma.Documents{{}}},
			output: []SearchResult{},
		},
		{
			result: &chroma.QueryResultImpl{
				DocumentsLists: []chroma.Documents{{chroma.NewTextDocument("no metadata")}},
			},
			output: []SearchResult{{Content: "no metadata"}},
		},
		{
			result: &chroma.QueryResultImpl{
				DocumentsLists: []chroma.Documents{{chroma.NewTextDocument("no distance")}},
				MetadatasLists: []chroma.DocumentMetadatas{{
					chroma.NewDocumentMetadata(chroma.NewStringAttribute(SourceKey, "a.md")),
				}},
			},
			output: []SearchResult{{Content: "no distance", Source: "a.md"}},
		},
	}

	for i, c := range cases {
		t.Run(fmt.Sprintf("case_%d", i), func(t *testing.T) {
			col := mocks.NewMockCollection(t)
			store := &ChromaStore{col: col, log: zap.NewNop()}
			col.EXPECT().Query(mock.Anything, mock.Anything, mock.Anything).Return(c.result, nil)

			res, err := store.Retrieve(context.Background(), "query", 0)
			require.NoError(t, err)
			assert.Equal(t, c.output, res)
		})
	}
}

func Test_ChromaStore_Retrieve_Error(t *testing.T) {
	col := mocks.NewMockCollection(t)
	store := &ChromaStore{col: col, log: zap.NewNop()}
	col.EXPECT().Query(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

	_, err := store.Retrieve(context.Background(), "query", 1)
	assert.ErrorContains(t, err, "timeout")
}

// Runs against a live Chroma server when TEAMMIND_TEST_CHROMA_URL is set.
func Test_ChromaStore_Live(t *testing.T) {
	url := os.Getenv("TEAMMIND_TEST_CHROMA_URL")
	if url == "" {
		t.Skip("TEAMMIND_TEST_CHROMA_URL not set")
	}

	ctx := context.Background()
	store, err := NewChromaStore(ctx, ChromaStoreConfig{
		BaseURL:       url,
		Collection:    "teammind_test",
		EmbeddingFunc: embeddings.NewConsistentHashEmbeddingFunction(),
		RequestSize:   64,
	}, nil)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Ingest(ctx, []Chunk{
		{Source: "setup.md", Content: "install node and docker"},
		{Source: "deploy.md", Content: "release pipeline"},
	}))

	res, err := store.Retrieve(ctx, "install node and docker", 1)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "setup.md", res[0].Source)
}
