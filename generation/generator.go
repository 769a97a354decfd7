package generation

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	wx "github.com/IBM/watsonx-go/pkg/models"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/llms/watsonx"
	"go.uber.org/zap"
)

var ErrNotConfigured = errors.New("generation backend not configured")

type Generator interface {
	Name() string
	Generate(ctx context.Context, prompt string) Result
}

// LLM adapts a langchaingo model to Generator. It never panics or returns an
// error to the caller; failures come back as Failed.
type LLM struct {
	name  string
	model llms.Model
	opts  []llms.CallOption
	log   *zap.Logger
}

func NewLLM(name string, model llms.Model, p Params, log *zap.Logger) *LLM {
	if log == nil {
		log = zap.NewNop()
	}

	return &LLM{
		name:  name,
		model: model,
		opts:  callOptions(p),
		log:   log,
	}
}

// New builds the backend named by cfg.Provider. Missing credentials yield
// ErrNotConfigured so callers can run without generation.
func New(cfg Config, log *zap.Logger) (*LLM, error) {
	model, err := newModel(cfg)
	if err != nil {
		return nil, err
	}

	name := cfg.Provider
	if cfg.Model != "" {
		name += "/" + cfg.Model
	}

	return NewLLM(name, model, cfg.Params, log), nil
}

func newModel(cfg Config) (llms.Model, error) {
	switch strings.ToLower(cfg.Provider) {
	case ProviderWatsonx:
		if missing(cfg.APIKey) {
			return nil, fmt.Errorf("%w: watsonx api key is not set", ErrNotConfigured)
		}
		if missing(cfg.ProjectID) {
			return nil, fmt.Errorf("%w: watsonx project id is not set", ErrNotConfigured)
		}

		opts := []wx.ClientOption{
			wx.WithWatsonxAPIKey(cfg.APIKey),
			wx.WithWatsonxProjectID(cfg.ProjectID),
		}
		if host := hostOf(cfg.URL); host != "" {
			opts = append(opts, wx.WithURL(host))
		}

		m, err := watsonx.New(modelOr(cfg.Model, DefaultModel), opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create watsonx client: %w", err)
		}
		return m, nil

	case ProviderOpenAI:
		if missing(cfg.APIKey) {
			return nil, fmt.Errorf("%w: openai api key is not set", ErrNotConfigured)
		}

		opts := []openai.Option{openai.WithToken(cfg.APIKey)}
		if cfg.Model != "" {
			opts = append(opts, openai.WithModel(cfg.Model))
		}
		if cfg.URL != "" {
			opts = append(opts, openai.WithBaseURL(cfg.URL))
		}

		m, err := openai.New(opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create openai client: %w", err)
		}
		return m, nil

	case ProviderOllama:
		opts := []ollama.Option{ollama.WithModel(modelOr(cfg.Model, "granite3.3"))}
		if cfg.URL != "" {
			opts = append(opts, ollama.WithServerURL(cfg.URL))
		}

		m, err := ollama.New(opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create ollama client: %w", err)
		}
		return m, nil

	case ProviderNone, "":
		return nil, fmt.Errorf("%w: provider disabled", ErrNotConfigured)

	default:
		return nil, fmt.Errorf("unknown generation provider: %s", cfg.Provider)
	}
}

func (g *LLM) Name() string { return g.name }

func (g *LLM) Generate(ctx context.Context, prompt string) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Failed{Err: fmt.Errorf("%s panicked: %v", g.name, r)}
		}
	}()

	text, err := llms.GenerateFromSinglePrompt(ctx, g.model, prompt, g.opts...)
	if err != nil {
		g.log.Warn("generation failed", zap.String("backend", g.name), zap.Error(err))
		return Failed{Err: err}
	}

	return Generated{Text: strings.TrimSpace(text)}
}

func callOptions(p Params) []llms.CallOption {
	var opts []llms.CallOption
	if p.MaxNewTokens > 0 {
		opts = append(opts, llms.WithMaxTokens(p.MaxNewTokens))
	}
	if p.MinNewTokens > 0 {
		opts = append(opts, llms.WithMinLength(p.MinNewTokens))
	}
	if p.Temperature > 0 {
		opts = append(opts, llms.WithTemperature(p.Temperature))
	}
	if p.TopK > 0 {
		opts = append(opts, llms.WithTopK(p.TopK))
	}
	if p.TopP > 0 {
		opts = append(opts, llms.WithTopP(p.TopP))
	}
	if p.RepetitionPenalty > 0 {
		opts = append(opts, llms.WithRepetitionPenalty(p.RepetitionPenalty))
	}

	return opts
}

// hostOf strips the scheme: the watsonx client expects a bare host name.
func hostOf(raw string) string {
	if raw == "" {
		return ""
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return strings.TrimSuffix(raw, "/")
	}

	return u.Host
}

func modelOr(m, def string) string {
	if m == "" {
		return def
	}
	return m
}
