package config

import (
	"fmt"

	"github.com/joeshaw/envdecode"

	"github.com/pagebrief/pagebrief/pkg/api"
	"github.com/pagebrief/pagebrief/pkg/lib"
	"github.com/pagebrief/pagebrief/pkg/lib/log"
	"github.com/pagebrief/pagebrief/pkg/scrape"
	"github.com/pagebrief/pagebrief/pkg/summarize"
)

type Config struct {
	API       api.Config       `env:""`
	Log       log.Config       `env:""`
	Scrape    scrape.Config    `env:""`
	Summarize summarize.Config `env:""`
}

func Load() (*Config, error) {
	var cfg Config

	if err := envdecode.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := lib.ValidateStruct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}
