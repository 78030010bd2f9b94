package scrape

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func newTestExtractor(maxWords int) *Extractor {
	logger := zerolog.Nop()
	return NewExtractor(&Config{MaxWords: maxWords, Mode: ModeParagraphs}, &logger)
}

func responseWithBody(t *testing.T, contentType, body string) *http.Response {
	t.Helper()

	u, err := neturl.Parse("http://example.com/article")
	if err != nil {
		t.Fatalf("parse url: %v", err)
	}

	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{contentType}},
		Body:       io.NopCloser(strings.NewReader(body)),
		Request:    &http.Request{URL: u},
	}
}

func TestExtractFromResponse_Paragraphs(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "joins paragraphs with single spaces",
			html: "<html><body><p>Hello world.</p><p>Second paragraph.</p></body></html>",
			want: "Hello world. Second paragraph.",
		},
		{
			name: "collapses whitespace runs",
			html: "<p>Hello\n\t   world</p>",
			want: "Hello world",
		},
		{
			name: "includes text of nested elements",
			html: "<p>Hello <b>big</b> world</p>",
			want: "Hello big world",
		},
		{
			name: "ignores text outside paragraph tags",
			html: "<div>Navigation</div><h1>Title</h1><p>Body text.</p>",
			want: "Body text.",
		},
		{
			name: "no paragraphs yields empty string",
			html: "<html><body><div>Only divs here</div></body></html>",
			want: "",
		},
		{
			name: "skips empty paragraphs",
			html: "<p>  </p><p>Kept.</p><p></p>",
			want: "Kept.",
		},
	}

	extractor := newTestExtractor(1500)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractor.ExtractFromResponse(responseWithBody(t, "text/html; charset=utf-8", tt.html))
			if err != nil {
				t.Fatalf("ExtractFromResponse() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ExtractFromResponse() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractFromResponse_WordCap(t *testing.T) {
	const maxWords = 1500

	var sb strings.Builder
	sb.WriteString("<p>")
	for i := 0; i < maxWords+100; i++ {
		fmt.Fprintf(&sb, "w%d ", i)
	}
	sb.WriteString("</p>")

	extractor := newTestExtractor(maxWords)

	got, err := extractor.ExtractFromResponse(responseWithBody(t, "text/html", sb.String()))
	if err != nil {
		t.Fatalf("ExtractFromResponse() error: %v", err)
	}

	words := strings.Fields(got)
	if len(words) != maxWords {
		t.Fatalf("expected %d words, got %d", maxWords, len(words))
	}
	if words[0] != "w0" {
		t.Errorf("expected first word w0, got %q", words[0])
	}
	if words[maxWords-1] != fmt.Sprintf("w%d", maxWords-1) {
		t.Errorf("expected last word w%d, got %q", maxWords-1, words[maxWords-1])
	}
}

func TestExtractFromResponse_UnsupportedContentType(t *testing.T) {
	extractor := newTestExtractor(1500)

	_, err := extractor.ExtractFromResponse(responseWithBody(t, "image/png", "not text"))
	if !errors.Is(err, ErrUnsupportedContentType) {
		t.Errorf("expected ErrUnsupportedContentType, got %v", err)
	}
}
