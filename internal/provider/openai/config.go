package openai

// Config contains the completion backend configuration. Model, temperature
// and endpoint are fixed here; requests never override them.
//
// The default base URL targets OpenRouter, which speaks the OpenAI chat
// completions wire format, so any OpenAI-compatible endpoint works.
type Config struct {
	APIKey      string  `env:"OPENAI_API_KEY"`
	BaseURL     string  `env:"OPENAI_BASE_URL"     envDefault:"https://openrouter.ai/api/v1"`
	Model       string  `env:"OPENAI_MODEL"        envDefault:"moonshotai/kimi-k2-thinking"`
	Temperature float64 `env:"OPENAI_TEMPERATURE"  envDefault:"0.7"`
	Timeout     int     `env:"OPENAI_TIMEOUT"      envDefault:"300"`
	MaxRetries  int     `env:"OPENAI_MAX_RETRIES"  envDefault:"3"`
}
