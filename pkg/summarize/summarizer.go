package summarize

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/prompts"
)

var (
	// ErrNoCredential is returned when the service was started without an API key.
	ErrNoCredential = errors.New("no API credential configured")
	// ErrEmptyCompletion is returned when the model call succeeds but yields no text.
	ErrEmptyCompletion = errors.New("model returned no text")
)

const articlePromptTemplate = `Summarize the following article text in 3 concise bullet points:

{{.article_text}}`

// Summarizer wraps a completion model behind a fixed single-shot prompt.
type Summarizer struct {
	model   llms.Model
	timeout time.Duration
	logger  *zerolog.Logger
}

// NewSummarizer builds a summarizer around the given model.
// A nil model means no credential was configured; every call
// will fail with ErrNoCredential.
func NewSummarizer(model llms.Model, cfg *Config, logger *zerolog.Logger) *Summarizer {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}

	return &Summarizer{
		model:   model,
		timeout: timeout,
		logger:  logger,
	}
}

// Summarize sends the article text to the model and returns the generated
// summary unmodified. The bullet structure of the output is not validated.
func (s *Summarizer) Summarize(ctx context.Context, articleText string) (string, error) {
	if s.model == nil {
		return "", ErrNoCredential
	}

	template := prompts.NewPromptTemplate(articlePromptTemplate, []string{"article_text"})

	prompt, err := template.Format(map[string]any{
		"article_text": articleText,
	})
	if err != nil {
		return "", fmt.Errorf("format prompt: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	out, err := llms.GenerateFromSinglePrompt(ctx, s.model, prompt)
	if err != nil {
		logGenerateCompletionError(s.logger, prompt, err)
		return "", fmt.Errorf("generate completion: %w", err)
	}

	if strings.TrimSpace(out) == "" {
		return "", ErrEmptyCompletion
	}

	return out, nil
}

func logGenerateCompletionError(logger *zerolog.Logger, prompt string, err error) {
	logger.Error().
		Err(err).
		// Log in base64 for a more compact representation
		Str("prompt_base64", base64.StdEncoding.EncodeToString([]byte(prompt))).
		Int("prompt_bytes", len(prompt)).
		Msg("Error generating completion")
}
