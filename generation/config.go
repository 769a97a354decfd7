package generation

const (
	ProviderWatsonx = "watsonx"
	ProviderOpenAI  = "openai"
	ProviderOllama  = "ollama"
	ProviderNone    = "none"

	DefaultModel = "ibm/granite-13b-instruct-v2"
	DefaultURL   = "https://us-south.ml.cloud.ibm.com"
)

// Values shipped in the sample .env; treated as missing credentials.
var placeholders = map[string]struct{}{
	"your_ibm_api_key_here": {},
	"your_project_id_here":  {},
	"your_api_key_here":     {},
}

type Params struct {
	MaxNewTokens      int     `koanf:"max_new_tokens" yaml:"max_new_tokens"`
	MinNewTokens      int     `koanf:"min_new_tokens" yaml:"min_new_tokens"`
	Temperature       float64 `koanf:"temperature" yaml:"temperature"`
	TopK              int     `koanf:"top_k" yaml:"top_k"`
	TopP              float64 `koanf:"top_p" yaml:"top_p"`
	RepetitionPenalty float64 `koanf:"repetition_penalty" yaml:"repetition_penalty"`
}

type Config struct {
	Provider  string `koanf:"provider" yaml:"provider"`
	Model     string `koanf:"model" yaml:"model"`
	APIKey    string `koanf:"api_key" yaml:"api_key,omitempty"`
	ProjectID string `koanf:"project_id" yaml:"project_id,omitempty"`
	URL       string `koanf:"url" yaml:"url"`
	Params    Params `koanf:"params" yaml:"params"`
}

func DefaultParams() Params {
	return Params{
		MaxNewTokens:      1000,
		MinNewTokens:      50,
		Temperature:       0.7,
		TopK:              50,
		TopP:              0.95,
		RepetitionPenalty: 1.1,
	}
}

func DefaultConfig() Config {
	return Config{
		Provider: ProviderWatsonx,
		Model:    DefaultModel,
		URL:      DefaultURL,
		Params:   DefaultParams(),
	}
}

func missing(v string) bool {
	if v == "" {
		return true
	}
	_, ok := placeholders[v]
	return ok
}
