// Package server exposes the translation pipeline as a small JSON API.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/frndlabs/gobhasha"
	"github.com/frndlabs/gobhasha/cache"
	"github.com/frndlabs/gobhasha/provider"
	"github.com/frndlabs/gobhasha/review"
	"github.com/frndlabs/gobhasha/translog"
)

// Server routes translation requests to a shared Translator.
type Server struct {
	translator *gobhasha.Translator
	logger     *translog.CSVLogger
	mux        *http.ServeMux
}

// New wires a Server from configuration: Sarvam provider, optional
// OpenAI reviewer, optional Redis cache, CSV log and preserved terms.
func New(cfg *Config) (*Server, error) {
	p := provider.NewSarvamProvider(provider.SarvamConfig{
		APIKey:  cfg.SarvamAPIKey,
		BaseURL: cfg.SarvamBaseURL,
	})

	logger := translog.NewCSVLogger(cfg.LogPath)

	opts := []gobhasha.TranslatorOption{
		gobhasha.WithLogger(logger),
	}

	if cfg.TermsPath != "" {
		terms, err := gobhasha.LoadPreservedTerms(cfg.TermsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load preserved terms: %w", err)
		}
		opts = append(opts, gobhasha.WithPreservedTerms(terms))
	}

	if cfg.ReviewEnabled() {
		opts = append(opts, gobhasha.WithReviewer(review.NewReviewer(review.Config{
			APIKey: cfg.OpenAIAPIKey,
		})))
	}

	if cfg.RedisURL != "" {
		rc, err := cache.NewRedisCache(cache.RedisConfig{URL: cfg.RedisURL, TTL: cfg.CacheTTL})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		opts = append(opts, gobhasha.WithCache(rc))
	}

	return NewWith(gobhasha.NewTranslator(p, opts...), logger), nil
}

// NewWith builds a Server around an existing translator and log.
func NewWith(t *gobhasha.Translator, logger *translog.CSVLogger) *Server {
	s := &Server{translator: t, logger: logger, mux: http.NewServeMux()}
	s.mux.HandleFunc("POST /api/translate", s.handleTranslate)
	s.mux.HandleFunc("GET /api/log.csv", s.handleLogExport)
	s.mux.HandleFunc("GET /api/log/monthly.csv", s.handleMonthlyExport)
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

type translateRequest struct {
	SourceLang     string `json:"source_lang"`
	TargetLang     string `json:"target_lang"`
	Text           string `json:"text"`
	Mode           string `json:"mode"`
	Gender         string `json:"gender"`
	ContextType    string `json:"context_type"`
	Audience       string `json:"audience"`
	FormalityLevel int    `json:"formality_level"`
}

type translateResponse struct {
	RequestID  string   `json:"request_id,omitempty"`
	Text       string   `json:"text"`
	RawText    string   `json:"raw_text,omitempty"`
	Confidence float64  `json:"confidence"`
	Flags      []string `json:"flags,omitempty"`
	Advisories []string `json:"advisories,omitempty"`
	Reviewed   bool     `json:"reviewed,omitempty"`
	ReviewNote string   `json:"review_note,omitempty"`
	Cached     bool     `json:"cached,omitempty"`
	ElapsedMS  int64    `json:"elapsed_ms"`
	Error      string   `json:"error,omitempty"`
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.TargetLang == "" {
		writeError(w, http.StatusBadRequest, "target_lang is required")
		return
	}

	res, err := s.translator.Translate(r.Context(), gobhasha.Request{
		SourceLang:     req.SourceLang,
		TargetLang:     req.TargetLang,
		Text:           req.Text,
		Mode:           gobhasha.StyleMode(req.Mode),
		Gender:         gobhasha.SpeakerGender(req.Gender),
		ContextType:    req.ContextType,
		Audience:       req.Audience,
		FormalityLevel: req.FormalityLevel,
	})
	if err != nil {
		if res == nil {
			// Rejected before the pipeline ran, e.g. empty input.
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		// Engine failure: the result still carries the displayable
		// error-marked text.
		writeJSON(w, http.StatusBadGateway, translateResponse{
			RequestID:  res.RequestID,
			Text:       res.Text,
			Confidence: res.Confidence,
			ElapsedMS:  res.Elapsed.Milliseconds(),
			Error:      err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, translateResponse{
		RequestID:  res.RequestID,
		Text:       res.Text,
		RawText:    res.RawText,
		Confidence: res.Confidence,
		Flags:      res.Flags,
		Advisories: res.Advisories,
		Reviewed:   res.Reviewed,
		ReviewNote: res.ReviewNote,
		Cached:     res.Cached,
		ElapsedMS:  res.Elapsed.Milliseconds(),
	})
}

func (s *Server) handleLogExport(w http.ResponseWriter, r *http.Request) {
	data, err := s.logger.ExportCSV()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	serveCSV(w, "translations.csv", data)
}

func (s *Server) handleMonthlyExport(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	data, err := s.logger.MonthCSV(now)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	name := fmt.Sprintf("translations-%s.csv", now.Format("2006-01"))
	serveCSV(w, name, data)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": gobhasha.Version,
	})
}

func serveCSV(w http.ResponseWriter, name string, data []byte) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Write(data)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
