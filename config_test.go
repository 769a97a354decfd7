package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gamma-omg/teammind/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_readConfig_Defaults(t *testing.T) {
	cfg, err := readConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "knowledge-base", cfg.DocRoot)
	assert.Equal(t, []string{".md", ".markdown"}, cfg.Extensions)
	assert.Equal(t, 500, cfg.ChunkSize)
	assert.Equal(t, 50, cfg.ChunkOverlap)
	assert.Equal(t, 3, cfg.TopK)
	assert.True(t, cfg.VectorStore.Enabled)
	assert.Equal(t, "chromem", cfg.VectorStore.Backend)
	assert.Equal(t, "team_knowledge", cfg.VectorStore.Collection)
	assert.Equal(t, generation.ProviderWatsonx, cfg.Generation.Provider)
	assert.Equal(t, "ibm/granite-13b-instruct-v2", cfg.Generation.Model)
	assert.Equal(t, "https://us-south.ml.cloud.ibm.com", cfg.Generation.URL)
	assert.Equal(t, generation.DefaultParams(), cfg.Generation.Params)
	assert.False(t, cfg.Security.Gitleaks)
}

func Test_readConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
doc_root: docs
chunk_size: 800
vector_store:
  backend: chroma
  embeddings:
    provider: openai
    model: text-embedding-3-small
generation:
  provider: ollama
  model: granite3.3
  params:
    temperature: 0.2
security:
  gitleaks: true
  allow_list:
    - EXAMPLE$
`), 0o644))

	cfg, err := readConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "docs", cfg.DocRoot)
	assert.Equal(t, 800, cfg.ChunkSize)
	assert.Equal(t, 50, cfg.ChunkOverlap)
	assert.Equal(t, "chroma", cfg.VectorStore.Backend)
	assert.True(t, cfg.VectorStore.Enabled)
	assert.Equal(t, "openai", cfg.VectorStore.Embeddings.Provider)
	assert.Equal(t, "ollama", cfg.Generation.Provider)
	assert.Equal(t, 0.2, cfg.Generation.Params.Temperature)
	assert.Equal(t, 1000, cfg.Generation.Params.MaxNewTokens)
	assert.True(t, cfg.Security.Gitleaks)
	assert.Equal(t, []string{"EXAMPLE$"}, cfg.Security.AllowList)
}

func Test_readConfig_BadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("doc_root: [unclosed"), 0o644))

	_, err := readConfig(path)
	assert.Error(t, err)
}

func Test_readConfig_Env(t *testing.T) {
	t.Setenv("IBM_API_KEY", "secret-key")
	t.Setenv("WATSONX_PROJECT_ID", "project-1")
	t.Setenv("WATSONX_URL", "https://eu-de.ml.cloud.ibm.com")
	t.Setenv("VECTOR_STORE", "false")
	t.Setenv("TEAMMIND_GENERATION__MODEL", "ibm/granite-3-8b-instruct")
	t.Setenv("TEAMMIND_TOP_K", "5")
	t.Setenv("TEAMMIND_EXTENSIONS", ".md, .txt")

	cfg, err := readConfig("")
	require.NoError(t, err)

	assert.Equal(t, "secret-key", cfg.Generation.APIKey)
	assert.Equal(t, "project-1", cfg.Generation.ProjectID)
	assert.Equal(t, "https://eu-de.ml.cloud.ibm.com", cfg.Generation.URL)
	assert.False(t, cfg.VectorStore.Enabled)
	assert.Equal(t, "ibm/granite-3-8b-instruct", cfg.Generation.Model)
	assert.Equal(t, 5, cfg.TopK)
	assert.Equal(t, []string{".md", ".txt"}, cfg.Extensions)
}

func Test_writeConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := defaultConfig()
	cfg.DocRoot = "handbook"
	require.NoError(t, writeConfig(path, cfg, false))
	assert.Error(t, writeConfig(path, cfg, false))
	require.NoError(t, writeConfig(path, cfg, true))

	got, err := readConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "handbook", got.DocRoot)
	assert.Equal(t, cfg.Generation, got.Generation)
}

func Test_splitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitList([]string{"a, b", " ", "c"}))
	assert.Equal(t, []string{}, splitList(nil))
}
