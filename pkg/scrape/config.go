package scrape

import "time"

type ExtractorMode string

const (
	// ModeParagraphs collects the text of every <p> element.
	ModeParagraphs ExtractorMode = "paragraphs"
	// ModeReadability runs full readability extraction over the page.
	ModeReadability ExtractorMode = "readability"
)

type Config struct {
	UserAgent string        `env:"SCRAPE_USER_AGENT,default=Mozilla/5.0 (compatible; Pagebrief/1.0; +https://github.com/pagebrief/pagebrief)" validate:"required"`
	Timeout   time.Duration `env:"SCRAPE_TIMEOUT,default=10s" validate:"required"`
	MaxWords  int           `env:"SCRAPE_MAX_WORDS,default=1500" validate:"required,gt=0"`
	Mode      ExtractorMode `env:"EXTRACTOR_MODE,default=paragraphs" validate:"required,oneof=paragraphs readability"`
}
