package docstore

import (
	"context"
	"hash/fnv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hashEmbed is a deterministic bag-of-words embedding. The first dimension is
// constant so no text embeds to the zero vector.
func hashEmbed(_ context.Context, text string) ([]float32, error) {
	v := make([]float32, 128)
	v[0] = 0.01
	for _, w := range strings.Fields(strings.ToLower(text)) {
		h := fnv.New32a()
		_, _ = h.Write([]byte(w))
		v[1+h.Sum32()%127]++
	}

	return v, nil
}

func newTestChromem(t *testing.T) *ChromemStore {
	t.Helper()

	s, err := NewChromemStore(ChromemConfig{Embed: hashEmbed}, nil)
	require.NoError(t, err)
	return s
}

func Test_ChromemStore_RequiresEmbedding(t *testing.T) {
	_, err := NewChromemStore(ChromemConfig{}, nil)
	assert.Error(t, err)
}

func Test_ChromemStore_IngestAndRetrieve(t *testing.T) {
	s := newTestChromem(t)
	ctx := context.Background()

	require.NoError(t, s.Ingest(ctx, []Chunk{
		{Source: "setup.md", Content: "install node and docker"},
		{Source: "deploy.md", Content: "deployments run through the release pipeline"},
		{Source: "contacts.md", Content: "ask the team lead for access"},
	}))

	res, err := s.Retrieve(ctx, "install docker", 2)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "setup.md", res[0].Source)
	assert.Equal(t, "install node and docker", res[0].Content)
	assert.GreaterOrEqual(t, res[0].Score, res[1].Score)
}

func Test_ChromemStore_CapsResultsAtCount(t *testing.T) {
	s := newTestChromem(t)
	ctx := context.Background()

	require.NoError(t, s.Ingest(ctx, []Chunk{{Source: "a.md", Content: "only chunk"}}))

	res, err := s.Retrieve(ctx, "chunk", 5)
	require.NoError(t, err)
	assert.Len(t, res, 1)
}

func Test_ChromemStore_EmptyIngest(t *testing.T) {
	s := newTestChromem(t)
	assert.ErrorIs(t, s.Ingest(context.Background(), nil), ErrNoChunks)

	res, err := s.Retrieve(context.Background(), "anything", 3)
	require.NoError(t, err)
	assert.Empty(t, res)
}

func Test_ChromemStore_EmptyQueryFails(t *testing.T) {
	s := newTestChromem(t)
	ctx := context.Background()
	require.NoError(t, s.Ingest(ctx, []Chunk{{Source: "a.md", Content: "text"}}))

	_, err := s.Retrieve(ctx, "", 1)
	assert.Error(t, err)
}
