package summarize

import "time"

const (
	ProviderOpenAI   = "openai"
	ProviderGoogleAI = "googleai"
)

type Config struct {
	Provider string        `env:"LLM_PROVIDER,default=googleai" validate:"required,oneof=openai googleai"`
	Model    string        `env:"LLM_MODEL"`
	APIKey   string        `env:"AI_API_KEY"`
	Timeout  time.Duration `env:"LLM_TIMEOUT,default=60s" validate:"required"`
}

// ModelName returns the configured model identifier,
// falling back to a fixed default per provider.
func (c *Config) ModelName() string {
	if c.Model != "" {
		return c.Model
	}

	switch c.Provider {
	case ProviderOpenAI:
		return "gpt-4o-mini"
	default:
		return "gemini-1.5-flash"
	}
}
