package rag

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/gamma-omg/teammind/docstore"
	"github.com/gamma-omg/teammind/generation"
	"github.com/gamma-omg/teammind/loader"
	"go.uber.org/zap"
)

var ErrAlreadyInitialized = errors.New("engine already initialized")

type DocumentLoader interface {
	Load(ctx context.Context) (*loader.Report, error)
}

type Chunker interface {
	Chunk(docs []docstore.Doc) []docstore.Chunk
}

type IndexBuilder interface {
	Build(ctx context.Context, chunks []docstore.Chunk) docstore.Index
}

type Stats struct {
	Documents int    `json:"documents"`
	Rejected  int    `json:"rejected"`
	Failed    int    `json:"failed"`
	Chunks    int    `json:"chunks"`
	Index     string `json:"index"`
	Generator string `json:"generator"`
	Ready     bool   `json:"ready"`
}

type Option func(*Engine)

func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) { e.log = log }
}

func WithLoader(l DocumentLoader) Option {
	return func(e *Engine) { e.loader = l }
}

func WithChunker(c Chunker) Option {
	return func(e *Engine) { e.chunker = c }
}

func WithIndexBuilder(b IndexBuilder) Option {
	return func(e *Engine) { e.builder = b }
}

// WithGenerator sets the generation backend. A nil generator keeps the
// engine in extractive fallback mode.
func WithGenerator(g generation.Generator) Option {
	return func(e *Engine) { e.gen = g }
}

func WithTopK(k int) Option {
	return func(e *Engine) {
		if k > 0 {
			e.topK = k
		}
	}
}

type state struct {
	report    *loader.Report
	chunks    []docstore.Chunk
	index     docstore.Index
	retriever *Retriever
}

// Engine owns one pipeline instance: documents, chunks and index are built
// once by Init and read-only afterwards.
type Engine struct {
	log      *zap.Logger
	loader   DocumentLoader
	chunker  Chunker
	builder  IndexBuilder
	gen      generation.Generator
	composer *Composer
	topK     int

	mu    sync.Mutex
	state *state
}

func New(opts ...Option) *Engine {
	e := &Engine{topK: docstore.DefaultTopK}
	for _, o := range opts {
		o(e)
	}

	if e.log == nil {
		e.log = zap.NewNop()
	}
	if e.builder == nil {
		e.builder = docstore.NewBuilder(nil, e.log)
	}
	e.composer = NewComposer(e.gen, e.log)

	return e
}

// Init loads, chunks and indexes the knowledge base. It may run only once.
func (e *Engine) Init(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state != nil {
		return ErrAlreadyInitialized
	}

	return e.init(ctx)
}

func (e *Engine) init(ctx context.Context) error {
	rep := &loader.Report{}
	if e.loader != nil {
		r, err := e.loader.Load(ctx)
		if err != nil {
			return fmt.Errorf("failed to load knowledge base: %w", err)
		}
		rep = r
	}

	var chunks []docstore.Chunk
	if e.chunker != nil {
		chunks = e.chunker.Chunk(rep.Docs)
	}

	index := e.builder.Build(ctx, chunks)

	e.state = &state{
		report:    rep,
		chunks:    chunks,
		index:     index,
		retriever: NewRetriever(index, chunks, e.log),
	}

	e.log.Info("knowledge base ready",
		zap.Int("documents", len(rep.Docs)),
		zap.Int("chunks", len(chunks)),
		zap.Stringer("index", index.Kind()))

	return nil
}

func (e *Engine) ensure(ctx context.Context) (*state, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == nil {
		if err := e.init(ctx); err != nil {
			return nil, err
		}
	}

	return e.state, nil
}

// Query is the caller-facing entry point. It always returns an Answer.
func (e *Engine) Query(ctx context.Context, userQuery, contextPrefix string) Answer {
	return e.answer(ctx, userQuery, contextPrefix, e.topK)
}

// Ask answers in the tone of the given mode.
func (e *Engine) Ask(ctx context.Context, userQuery string, mode Mode) Answer {
	return e.answer(ctx, userQuery, mode.Context(), e.topK)
}

func (e *Engine) answer(ctx context.Context, userQuery, contextPrefix string, k int) (ans Answer) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("query panicked", zap.Any("panic", r))
			ans = Answer{Text: errorText(fmt.Errorf("%v", r)), Sources: []docstore.SearchResult{}}
		}
	}()

	st, err := e.ensure(ctx)
	if err != nil {
		return Answer{Text: fmt.Sprintf("Error loading knowledge base: %v", err), Sources: []docstore.SearchResult{}}
	}

	results := st.retriever.Retrieve(ctx, userQuery, k)
	return e.composer.Compose(ctx, userQuery, contextPrefix, results)
}

func (e *Engine) Retrieve(ctx context.Context, query string, k int) ([]docstore.SearchResult, error) {
	st, err := e.ensure(ctx)
	if err != nil {
		return nil, err
	}

	return st.retriever.Retrieve(ctx, query, k), nil
}

func (e *Engine) SummarizeForVoice(ctx context.Context, text string) string {
	return e.composer.SummarizeForVoice(ctx, text)
}

func (e *Engine) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := Stats{Generator: "none"}
	if e.gen != nil {
		s.Generator = e.gen.Name()
	}
	if e.state == nil {
		return s
	}

	s.Ready = true
	s.Documents = len(e.state.report.Docs)
	s.Rejected = len(e.state.report.Rejected)
	s.Failed = len(e.state.report.Failed)
	s.Chunks = len(e.state.chunks)
	s.Index = e.state.index.Kind().String()
	return s
}

func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == nil {
		return nil
	}
	if c, ok := e.state.index.(io.Closer); ok {
		return c.Close()
	}

	return nil
}
