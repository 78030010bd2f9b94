package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/rs/zerolog"
)

type Server struct {
	scraper    scraper
	summarizer summarizer
	logger     *zerolog.Logger
	http       http.Server
}

type scraper interface {
	Scrape(ctx context.Context, url string) (string, error)
}

type summarizer interface {
	Summarize(ctx context.Context, articleText string) (string, error)
}

func NewServer(
	logger *zerolog.Logger,
	config *Config,
	scraper scraper,
	summarizer summarizer,
) *Server {
	mux := http.NewServeMux()

	server := &Server{
		logger:     logger,
		scraper:    scraper,
		summarizer: summarizer,
		http: http.Server{
			Addr:    fmt.Sprintf("%s:%d", config.Host, config.Port),
			Handler: corsMiddleware(mux, config.CORSOrigin),
		},
	}

	mux.HandleFunc("POST /summarize", server.handleSummarize)

	return server
}

func corsMiddleware(next http.Handler, originConfig string) http.Handler {
	origins := strings.Split(originConfig, ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestOrigin := r.Header.Get("Origin")

		if len(origins) == 1 && origins[0] == "*" {
			// Allow all origins
			w.Header().Set("Access-Control-Allow-Origin", "*")
		} else if requestOrigin != "" && slices.Contains(origins, requestOrigin) {
			// CORS doesn't support multiple origins,
			// so we either set the origin in the header or not at all.
			w.Header().Set("Access-Control-Allow-Origin", requestOrigin)
		}

		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) Start() error {
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Stop() error {
	return s.http.Close()
}
