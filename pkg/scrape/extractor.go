package scrape

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog"
)

var ErrUnsupportedContentType = errors.New("unsupported content type")

// Extractor converts a fetched response into bounded plain text.
//
// HTML pages go through a deliberately naive heuristic: the text of every <p>
// element, joined by single spaces. Pages that keep their content outside
// paragraph tags (single-page apps, paywalls) yield nothing; that is the
// documented behavior, not a bug to fix here.
type Extractor struct {
	mode     ExtractorMode
	maxWords int
	logger   *zerolog.Logger
}

func NewExtractor(cfg *Config, logger *zerolog.Logger) *Extractor {
	maxWords := cfg.MaxWords
	if maxWords == 0 {
		maxWords = 1500
	}

	mode := cfg.Mode
	if mode == "" {
		mode = ModeParagraphs
	}

	return &Extractor{
		mode:     mode,
		maxWords: maxWords,
		logger:   logger,
	}
}

// ExtractFromResponse extracts text from an http response based on its
// declared content type. The result is whitespace-normalized and capped
// at the configured word budget.
func (e *Extractor) ExtractFromResponse(resp *http.Response) (string, error) {
	contentType := resp.Header.Get("Content-Type")
	url := resp.Request.URL.String()

	if strings.Contains(contentType, "application/pdf") || strings.HasSuffix(url, ".pdf") {
		text, err := extractTextFromPDF(resp.Body)
		if err != nil {
			return "", fmt.Errorf("extract pdf text: %w", err)
		}
		return e.capWords(text), nil
	}

	if contentType == "" ||
		strings.Contains(contentType, "text/html") ||
		strings.Contains(contentType, "application/xhtml+xml") {
		text, err := e.extractTextFromHTML(resp.Body, resp.Request.URL)
		if err != nil {
			return "", fmt.Errorf("extract html text: %w", err)
		}
		return e.capWords(text), nil
	}

	e.logger.Warn().
		Str("url", url).
		Str("content_type", contentType).
		Msg("Unsupported content type")

	return "", ErrUnsupportedContentType
}

func (e *Extractor) extractTextFromHTML(body io.Reader, pageURL *neturl.URL) (string, error) {
	if e.mode == ModeReadability {
		article, err := readability.FromReader(body, pageURL)
		if err != nil {
			return "", fmt.Errorf("readability from reader: %w", err)
		}
		return article.TextContent, nil
	}

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	var paragraphs []string
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			paragraphs = append(paragraphs, text)
		}
	})

	return strings.Join(paragraphs, " "), nil
}

func extractTextFromPDF(body io.Reader) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("create pdf reader: %w", err)
	}

	plainText, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("get plain text: %w", err)
	}

	textBytes, err := io.ReadAll(plainText)
	if err != nil {
		return "", fmt.Errorf("read plain text: %w", err)
	}

	return string(textBytes), nil
}

// capWords collapses whitespace runs to single spaces and keeps at most
// the first maxWords whitespace-delimited tokens.
func (e *Extractor) capWords(text string) string {
	words := strings.Fields(text)
	if len(words) > e.maxWords {
		words = words[:e.maxWords]
	}
	return strings.Join(words, " ")
}
