package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/tmc/langchaingo/llms"

	"github.com/pagebrief/pagebrief/pkg/api"
	"github.com/pagebrief/pagebrief/pkg/config"
	"github.com/pagebrief/pagebrief/pkg/lib/log"
	"github.com/pagebrief/pagebrief/pkg/scrape"
	"github.com/pagebrief/pagebrief/pkg/summarize"
)

func main() {
	err := run()
	if err != nil {
		panic(err)
	}
}

func run() error {
	// A .env file is optional; real deployments configure the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := log.NewLogger(&cfg.Log)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	ctx := context.Background()
	server, err := initServer(ctx, logger, cfg)
	if err != nil {
		return fmt.Errorf("initialize server: %w", err)
	}

	logger.Info().
		Str("host", cfg.API.Host).
		Uint16("port", cfg.API.Port).
		Msg("Starting server")

	if err := server.Start(); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	return nil
}

func initServer(ctx context.Context, logger *zerolog.Logger, cfg *config.Config) (*api.Server, error) {
	var completionModel llms.Model

	if cfg.Summarize.APIKey == "" {
		// The server still starts; summarize requests fail with a configuration error.
		logger.Warn().Msg("AI_API_KEY not set, summarization requests will fail")
	} else {
		model, err := summarize.NewCompletionModel(ctx, &cfg.Summarize)
		if err != nil {
			return nil, fmt.Errorf("create summarizer model: %w", err)
		}
		completionModel = model
	}

	summarizer := summarize.NewSummarizer(completionModel, &cfg.Summarize, logger)
	scraper := scrape.NewScraper(&cfg.Scrape, logger)

	return api.NewServer(logger, &cfg.API, scraper, summarizer), nil
}
