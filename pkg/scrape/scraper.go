package scrape

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

var ErrNoContent = errors.New("no readable text found")

// Scraper fetches a page and extracts its readable text.
type Scraper struct {
	fetcher   *Fetcher
	extractor *Extractor
	logger    *zerolog.Logger
}

func NewScraper(cfg *Config, logger *zerolog.Logger) *Scraper {
	return &Scraper{
		fetcher:   NewFetcher(cfg, logger),
		extractor: NewExtractor(cfg, logger),
		logger:    logger,
	}
}

// Scrape retrieves the page at url and returns its bounded plain text.
// An empty extraction result is reported as ErrNoContent.
func (s *Scraper) Scrape(ctx context.Context, url string) (string, error) {
	resp, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return "", fmt.Errorf("fetch url: %w", err)
	}

	defer resp.Body.Close()

	text, err := s.extractor.ExtractFromResponse(resp)
	if err != nil {
		return "", fmt.Errorf("extract text: %w", err)
	}

	if text == "" {
		return "", ErrNoContent
	}

	return text, nil
}
