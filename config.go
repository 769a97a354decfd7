package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/gamma-omg/teammind/chunker"
	"github.com/gamma-omg/teammind/docstore"
	"github.com/gamma-omg/teammind/generation"
	"github.com/gamma-omg/teammind/readers"
	"github.com/gamma-omg/teammind/secrets"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

const envPrefix = "TEAMMIND_"

type EmbeddingsConfig struct {
	// Provider is one of openai, gemini or ollama. Empty disables embeddings.
	Provider string `koanf:"provider" yaml:"provider"`
	Model    string `koanf:"model" yaml:"model"`
	APIKey   string `koanf:"api_key" yaml:"api_key,omitempty"`
	URL      string `koanf:"url" yaml:"url,omitempty"`
}

type VectorStoreConfig struct {
	Enabled bool `koanf:"enabled" yaml:"enabled"`
	// Backend is chromem (in-process) or chroma (remote server).
	Backend     string           `koanf:"backend" yaml:"backend"`
	Collection  string           `koanf:"collection" yaml:"collection"`
	ChromaAddr  string           `koanf:"chroma_addr" yaml:"chroma_addr"`
	RequestSize int              `koanf:"request_size" yaml:"request_size"`
	Concurrency int              `koanf:"concurrency" yaml:"concurrency"`
	Embeddings  EmbeddingsConfig `koanf:"embeddings" yaml:"embeddings"`
}

type Config struct {
	LogFile      string            `koanf:"log" yaml:"log"`
	LogLevel     string            `koanf:"log_level" yaml:"log_level"`
	DocRoot      string            `koanf:"doc_root" yaml:"doc_root"`
	Extensions   []string          `koanf:"extensions" yaml:"extensions"`
	ChunkSize    int               `koanf:"chunk_size" yaml:"chunk_size"`
	ChunkOverlap int               `koanf:"chunk_overlap" yaml:"chunk_overlap"`
	TopK         int               `koanf:"top_k" yaml:"top_k"`
	ServerAddr   string            `koanf:"server_addr" yaml:"server_addr"`
	HTTPAddr     string            `koanf:"http_addr" yaml:"http_addr"`
	VectorStore  VectorStoreConfig `koanf:"vector_store" yaml:"vector_store"`
	Generation   generation.Config `koanf:"generation" yaml:"generation"`
	Security     secrets.Config    `koanf:"security" yaml:"security"`
}

func defaultConfig() Config {
	return Config{
		LogLevel:     "info",
		DocRoot:      "knowledge-base",
		Extensions:   readers.DefaultExtensions,
		ChunkSize:    chunker.DefaultChunkSize,
		ChunkOverlap: chunker.DefaultOverlap,
		TopK:         docstore.DefaultTopK,
		ServerAddr:   "localhost:8080",
		VectorStore: VectorStoreConfig{
			Enabled:     true,
			Backend:     "chromem",
			Collection:  docstore.DefaultCollection,
			ChromaAddr:  "http://localhost:8000",
			RequestSize: 8192,
			Concurrency: 4,
		},
		Generation: generation.DefaultConfig(),
		Security:   secrets.Config{AllowList: []string{}},
	}
}

// legacyEnv maps the variable names of the sample .env file onto config keys.
var legacyEnv = map[string]string{
	"IBM_API_KEY":        "generation.api_key",
	"WATSONX_PROJECT_ID": "generation.project_id",
	"WATSONX_URL":        "generation.url",
	"VECTOR_STORE":       "vector_store.enabled",
	"OPENAI_API_KEY":     "vector_store.embeddings.api_key",
}

// readConfig layers defaults, the YAML file (optional when missing) and the
// environment. TEAMMIND_GENERATION__MODEL sets generation.model.
func readConfig(cfgPath string) (*Config, error) {
	k := koanf.New(".")

	defaults, err := yamlv3.Marshal(defaultConfig())
	if err != nil {
		return nil, fmt.Errorf("unable to encode defaults: %w", err)
	}
	if err := k.Load(rawbytes.Provider(defaults), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("unable to load defaults: %w", err)
	}

	if cfgPath != "" {
		raw, err := os.ReadFile(cfgPath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("unable to open config file: %w", err)
		default:
			if err := k.Load(rawbytes.Provider(raw), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("unable to parse config file: %w", err)
			}
		}
	}

	legacy := make(map[string]any)
	for name, key := range legacyEnv {
		if v, ok := os.LookupEnv(name); ok && v != "" {
			legacy[key] = v
		}
	}
	if err := k.Load(confmap.Provider(legacy, "."), nil); err != nil {
		return nil, fmt.Errorf("unable to load environment: %w", err)
	}

	err = k.Load(env.Provider(envPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, envPrefix)
		return strings.ReplaceAll(strings.ToLower(s), "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("unable to load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}

	cfg.Extensions = splitList(cfg.Extensions)
	cfg.Security.AllowList = splitList(cfg.Security.AllowList)

	return cfg, nil
}

// writeConfig stores cfg as YAML. Existing files are kept unless force is set.
func writeConfig(path string, cfg Config, force bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags |= os.O_EXCL
	}

	f, err := os.OpenFile(path, flags, 0o600)
	if err != nil {
		return fmt.Errorf("unable to create config file: %w", err)
	}
	defer f.Close()

	enc := yamlv3.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("unable to write config file: %w", err)
	}

	return enc.Close()
}

// splitList accepts comma separated values coming from a single env variable.
func splitList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	}

	return out
}
