package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	chromaembeddings "github.com/amikos-tech/chroma-go/pkg/embeddings"
	gemini "github.com/amikos-tech/chroma-go/pkg/embeddings/gemini"
	chromaopenai "github.com/amikos-tech/chroma-go/pkg/embeddings/openai"
	"github.com/gamma-omg/teammind/chunker"
	"github.com/gamma-omg/teammind/docstore"
	"github.com/gamma-omg/teammind/generation"
	"github.com/gamma-omg/teammind/loader"
	"github.com/gamma-omg/teammind/rag"
	"github.com/gamma-omg/teammind/readers"
	"github.com/gamma-omg/teammind/secrets"
	"github.com/joho/godotenv"
	chromem "github.com/philippgille/chromem-go"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var errNoEmbeddings = errors.New("no embedding provider configured")

func newLogger(cfg *Config) (*zap.Logger, func(), error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	out := zapcore.Lock(os.Stderr)
	closeFn := func() {}
	if cfg.LogFile != "" {
		logFile, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = zapcore.AddSync(logFile)
		closeFn = func() { _ = logFile.Close() }
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), out, level)
	return zap.New(core), closeFn, nil
}

// createEmbeddingFunction builds the embedding function used by the Chroma
// server backend.
func createEmbeddingFunction(cfg EmbeddingsConfig) (chromaembeddings.EmbeddingFunction, error) {
	switch cfg.Provider {
	case "openai":
		opts := []chromaopenai.Option{}
		if cfg.Model != "" {
			opts = append(opts, chromaopenai.WithModel(chromaopenai.EmbeddingModel(cfg.Model)))
		}
		ef, err := chromaopenai.NewOpenAIEmbeddingFunction(cfg.APIKey, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create OpenAI embedding function: %w", err)
		}

		return ef, nil

	case "gemini":
		opts := []gemini.Option{gemini.WithAPIKey(cfg.APIKey)}
		if cfg.Model != "" {
			opts = append(opts, gemini.WithDefaultModel(chromaembeddings.EmbeddingModel(cfg.Model)))
		}
		ef, err := gemini.NewGeminiEmbeddingFunction(opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini embedding function: %w", err)
		}

		return ef, nil

	case "":
		return nil, errNoEmbeddings
	}

	return nil, fmt.Errorf("embedding provider %q is not supported by the chroma backend", cfg.Provider)
}

// createEmbedder builds the embedder used by the in-process chromem backend.
func createEmbedder(cfg EmbeddingsConfig) (chromem.EmbeddingFunc, error) {
	var client embeddings.EmbedderClient

	switch cfg.Provider {
	case "openai":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("%w: openai api key is not set", errNoEmbeddings)
		}
		opts := []openai.Option{openai.WithToken(cfg.APIKey)}
		if cfg.Model != "" {
			opts = append(opts, openai.WithEmbeddingModel(cfg.Model))
		}
		if cfg.URL != "" {
			opts = append(opts, openai.WithBaseURL(cfg.URL))
		}
		llm, err := openai.New(opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create OpenAI embedder: %w", err)
		}
		client = llm

	case "ollama":
		model := cfg.Model
		if model == "" {
			model = "nomic-embed-text"
		}
		opts := []ollama.Option{ollama.WithModel(model)}
		if cfg.URL != "" {
			opts = append(opts, ollama.WithServerURL(cfg.URL))
		}
		llm, err := ollama.New(opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create Ollama embedder: %w", err)
		}
		client = llm

	case "":
		return nil, errNoEmbeddings

	default:
		return nil, fmt.Errorf("embedding provider %q is not supported by the chromem backend", cfg.Provider)
	}

	embedder, err := embeddings.NewEmbedder(client)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedder: %w", err)
	}

	return func(ctx context.Context, text string) ([]float32, error) {
		return embedder.EmbedQuery(ctx, text)
	}, nil
}

// vectorProbe returns nil when the vector store is switched off, which the
// index builder treats as lexical-only mode.
func vectorProbe(cfg *Config, log *zap.Logger) docstore.Probe {
	vs := cfg.VectorStore
	if !vs.Enabled {
		return nil
	}

	switch strings.ToLower(vs.Backend) {
	case "chroma":
		return func(ctx context.Context) (docstore.VectorBackend, error) {
			ef, err := createEmbeddingFunction(vs.Embeddings)
			if err != nil {
				return nil, err
			}

			ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()

			store, err := docstore.NewChromaStore(ctx, docstore.ChromaStoreConfig{
				BaseURL:       vs.ChromaAddr,
				Collection:    vs.Collection,
				EmbeddingFunc: ef,
				RequestSize:   vs.RequestSize,
			}, log)
			if err != nil {
				return nil, fmt.Errorf("failed to initialize Chroma doc store: %w", err)
			}

			return store, nil
		}

	default:
		return func(ctx context.Context) (docstore.VectorBackend, error) {
			embed, err := createEmbedder(vs.Embeddings)
			if err != nil {
				return nil, err
			}

			return docstore.NewChromemStore(docstore.ChromemConfig{
				Collection:  vs.Collection,
				Embed:       embed,
				Concurrency: vs.Concurrency,
			}, log)
		}
	}
}

// newGenerator never fails: a backend that is not configured or cannot be
// constructed leaves the engine in fallback mode.
func newGenerator(cfg *Config, log *zap.Logger) generation.Generator {
	gen, err := generation.New(cfg.Generation, log)
	if errors.Is(err, generation.ErrNotConfigured) {
		log.Warn("generation backend unavailable, answers use fallback mode", zap.Error(err))
		return nil
	}
	if err != nil {
		log.Warn("failed to create generation backend, answers use fallback mode",
			zap.String("provider", cfg.Generation.Provider),
			zap.Error(err))
		return nil
	}

	return gen
}

func buildEngine(cfg *Config, log *zap.Logger) (*rag.Engine, error) {
	scanner, err := secrets.New(cfg.Security)
	if err != nil {
		return nil, fmt.Errorf("failed to create secret scanner: %w", err)
	}

	ldr := loader.New(cfg.DocRoot, scanner, log)
	ldr.RegisterReader(readers.NewTextFileReader(cfg.Extensions...))

	gen := newGenerator(cfg, log)

	opts := []rag.Option{
		rag.WithLogger(log),
		rag.WithLoader(ldr),
		rag.WithChunker(chunker.New(
			chunker.WithChunkSize(cfg.ChunkSize),
			chunker.WithOverlap(cfg.ChunkOverlap))),
		rag.WithIndexBuilder(docstore.NewBuilder(vectorProbe(cfg, log), log)),
		rag.WithGenerator(gen),
		rag.WithTopK(cfg.TopK),
	}

	return rag.New(opts...), nil
}

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
