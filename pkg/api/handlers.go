package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pagebrief/pagebrief/pkg/summarize"
)

// Fixed client-facing messages. Internal detail stays in the server log.
const (
	msgNoURL           = "No URL provided"
	msgScrapeFailed    = "Could not scrape text from URL"
	msgNoCredential    = "AI API key not configured on server"
	msgInternalFailure = "An internal server error occurred"
)

type SummarizeRequest struct {
	URL string `json:"url"`
}

type SummarizeResponse struct {
	Summary string `json:"summary"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	var req SummarizeRequest
	if err := deserializeReq(r, &req); err != nil {
		s.errorRes(w, http.StatusBadRequest, msgNoURL, err, "deserialize request")
		return
	}

	if strings.TrimSpace(req.URL) == "" {
		s.errorRes(w, http.StatusBadRequest, msgNoURL, nil, "missing url in request")
		return
	}

	s.logger.Info().Str("url", req.URL).Msg("Received summarize request")

	articleText, err := s.scraper.Scrape(r.Context(), req.URL)
	if err != nil {
		s.errorRes(w, http.StatusBadRequest, msgScrapeFailed, err, "scrape article text")
		return
	}

	s.logger.Debug().
		Str("url", req.URL).
		Int("word_count", len(strings.Fields(articleText))).
		Msg("Scraped article text")

	summary, err := s.summarizer.Summarize(r.Context(), articleText)
	if err != nil {
		if errors.Is(err, summarize.ErrNoCredential) {
			s.errorRes(w, http.StatusInternalServerError, msgNoCredential, err, "summarizer not configured")
			return
		}
		s.errorRes(w, http.StatusInternalServerError, msgInternalFailure, err, "summarize article text")
		return
	}

	s.serializeRes(w, http.StatusOK, SummarizeResponse{Summary: summary})
}

func deserializeReq[Req any](r *http.Request, req *Req) error {
	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		return fmt.Errorf("unsupported content type: %s", contentType)
	}

	reqBytes, err := io.ReadAll(r.Body)
	if err != nil {
		return fmt.Errorf("read request body: %w", err)
	}

	err = json.Unmarshal(reqBytes, req)
	if err != nil {
		return fmt.Errorf("deserialize request body: %w", err)
	}

	return nil
}

func (s *Server) serializeRes(w http.ResponseWriter, status int, res any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(res); err != nil {
		s.logger.Error().Err(err).Msg("response write error")
	}
}

func (s *Server) errorRes(w http.ResponseWriter, status int, clientMsg string, err error, logMsg string) {
	s.logger.Err(err).Int("status", status).Msg(logMsg)
	s.serializeRes(w, status, ErrorResponse{Error: clientMsg})
}
