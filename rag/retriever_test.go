package rag

import (
	"context"
	"errors"
	"testing"

	"github.com/gamma-omg/teammind/docstore"
	mocks "github.com/gamma-omg/teammind/mocks/docstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var retrieverChunks = []docstore.Chunk{
	{Source: "deploy.md", Content: "The deployment process uses the release pipeline"},
	{Source: "setup.md", Content: "Install Node and Docker"},
}

func Test_Retriever_VectorError(t *testing.T) {
	idx := mocks.NewMockIndex(t)
	idx.EXPECT().Retrieve(mock.Anything, "install docker", 3).Return(nil, errors.New("embedding service down"))
	idx.EXPECT().Kind().Return(docstore.KindVector)

	core, logs := observer.New(zapcore.WarnLevel)
	r := NewRetriever(idx, retrieverChunks, zap.New(core))

	res := r.Retrieve(context.Background(), "install docker", 0)
	assert.Equal(t, "setup.md", res[0].Source)
	assert.Len(t, res, 2)
	assert.Equal(t, 1, logs.FilterMessage("index query failed, using lexical retrieval").Len())
}

func Test_Retriever_Vector(t *testing.T) {
	want := []docstore.SearchResult{{Source: "deploy.md", Content: "x", Score: 0.9}}

	idx := mocks.NewMockIndex(t)
	idx.EXPECT().Retrieve(mock.Anything, "deploy", 1).Return(want, nil)

	r := NewRetriever(idx, retrieverChunks, nil)
	assert.Equal(t, want, r.Retrieve(context.Background(), "deploy", 1))
}

func Test_Retriever_NilIndex(t *testing.T) {
	r := NewRetriever(nil, retrieverChunks, nil)
	assert.Equal(t, docstore.KindLexical, r.Kind())

	res := r.Retrieve(context.Background(), "deployment process", 1)
	assert.Equal(t, []docstore.SearchResult{
		{Source: "deploy.md", Content: "The deployment process uses the release pipeline", Score: 2},
	}, res)
}
