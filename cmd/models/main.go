// Command models lists the generation models available to the configured
// provider credential. Diagnostic only; the server never calls this.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"slices"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/pagebrief/pagebrief/pkg/config"
	"github.com/pagebrief/pagebrief/pkg/summarize"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load config")
	}

	if cfg.Summarize.APIKey == "" {
		logger.Fatal().Msg("AI_API_KEY not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var names []string
	switch cfg.Summarize.Provider {
	case summarize.ProviderGoogleAI:
		names, err = listGoogleAIModels(ctx, cfg.Summarize.APIKey)
	case summarize.ProviderOpenAI:
		names, err = listOpenAIModels(ctx, cfg.Summarize.APIKey)
	default:
		logger.Fatal().Str("provider", cfg.Summarize.Provider).Msg("Unsupported provider")
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to list models")
	}

	logger.Info().
		Str("provider", cfg.Summarize.Provider).
		Str("configured_model", cfg.Summarize.ModelName()).
		Int("count", len(names)).
		Msg("Available generation models")

	for _, name := range names {
		fmt.Println(name)
	}
}

type googleAIModelList struct {
	Models []struct {
		Name                       string   `json:"name"`
		SupportedGenerationMethods []string `json:"supportedGenerationMethods"`
	} `json:"models"`
}

func listGoogleAIModels(ctx context.Context, apiKey string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		"https://generativelanguage.googleapis.com/v1beta/models", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("x-goog-api-key", apiKey)

	var list googleAIModelList
	if err := doJSONRequest(req, &list); err != nil {
		return nil, err
	}

	var names []string
	for _, m := range list.Models {
		if slices.Contains(m.SupportedGenerationMethods, "generateContent") {
			names = append(names, m.Name)
		}
	}

	return names, nil
}

type openAIModelList struct {
	Data []struct {
		ID string `json:"id"`
	} `json:"data"`
}

func listOpenAIModels(ctx context.Context, apiKey string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		"https://api.openai.com/v1/models", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)

	var list openAIModelList
	if err := doJSONRequest(req, &list); err != nil {
		return nil, err
	}

	var names []string
	for _, m := range list.Data {
		names = append(names, m.ID)
	}

	return names, nil
}

func doJSONRequest(req *http.Request, out any) error {
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("http status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
