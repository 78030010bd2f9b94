package summarize

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/llms/openai"
)

// NewCompletionModel builds the completion model for the configured provider.
// The credential comes from the config, never from ambient environment state.
func NewCompletionModel(ctx context.Context, config *Config) (llms.Model, error) {
	switch config.Provider {
	case ProviderOpenAI:
		openaiModel, err := openai.New(
			openai.WithToken(config.APIKey),
			openai.WithModel(config.ModelName()),
		)
		if err != nil {
			return nil, fmt.Errorf("create OpenAI model: %w", err)
		}
		return openaiModel, nil
	case ProviderGoogleAI:
		googleModel, err := googleai.New(ctx,
			googleai.WithAPIKey(config.APIKey),
			googleai.WithDefaultModel(config.ModelName()),
		)
		if err != nil {
			return nil, fmt.Errorf("create GoogleAI model: %w", err)
		}
		return googleModel, nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", config.Provider)
	}
}
