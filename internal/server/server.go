// Package server is the thin I/O shell around the triage pipeline. It
// accepts uploads, converts them to plain text, and relays the pipeline's
// structured result. Transport-level errors (bad file type, empty body,
// oversized upload) are handled here; data-quality problems are not errors
// and flow through the pipeline as missing fields.
package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/ppiankov/fnoltriage/internal/cache"
	"github.com/ppiankov/fnoltriage/internal/doc"
	"github.com/ppiankov/fnoltriage/internal/model"
	"github.com/ppiankov/fnoltriage/internal/pipeline"
)

// Server handles FNOL processing requests.
type Server struct {
	pipe           *pipeline.Pipeline
	logger         *slog.Logger
	limiter        *rate.Limiter
	results        cache.Cache // nil when caching is disabled
	cacheTTL       time.Duration
	maxUploadBytes int64
}

// New creates a server around the given pipeline.
func New(pipe *pipeline.Pipeline, cfg *model.Config, logger *slog.Logger) *Server {
	s := &Server{
		pipe:           pipe,
		logger:         logger,
		limiter:        rate.NewLimiter(rate.Limit(cfg.HTTP.RequestsPerSecond), cfg.HTTP.Burst),
		maxUploadBytes: cfg.HTTP.MaxUploadBytes,
	}
	if cfg.Cache.Enabled {
		s.results = cache.NewMemory(cfg.Cache.TTL, cfg.Cache.CleanupInterval)
		s.cacheTTL = cfg.Cache.TTL
	}
	return s
}

// Handler returns the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/api/v1/process", s.handleProcessUpload)
	mux.HandleFunc("/api/v1/process/text", s.handleProcessText)

	return s.withRequestID(s.withLogging(s.withRateLimit(mux)))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// textRequest is the JSON body for /api/v1/process/text.
type textRequest struct {
	Content string `json:"content"`
}

func (s *Server) handleProcessText(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req textRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, s.maxUploadBytes)).Decode(&req); err != nil {
		httpError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		httpError(w, http.StatusBadRequest, "empty text")
		return
	}

	s.process(w, r, doc.NormalizeText([]byte(req.Content)))
}

func (s *Server) handleProcessUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		httpError(w, http.StatusBadRequest, "file too large or invalid form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		httpError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer func() { _ = file.Close() }()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	switch ext {
	case ".pdf", ".txt", ".html", ".htm":
	default:
		httpError(w, http.StatusBadRequest, "only PDF, TXT and HTML files are supported")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		httpError(w, http.StatusInternalServerError, "read upload")
		return
	}
	if len(data) == 0 {
		httpError(w, http.StatusBadRequest, "empty file")
		return
	}

	text, err := doc.FromUpload(ext, data)
	if err != nil {
		httpError(w, http.StatusUnprocessableEntity, fmt.Sprintf("document processing failed: %v", err))
		return
	}

	s.process(w, r, text)
}

// process runs the pipeline over normalized text and writes the response.
// Responses are cached by content hash: processing is deterministic, so a
// cache hit is byte-identical to recomputing.
func (s *Server) process(w http.ResponseWriter, r *http.Request, text string) {
	var key string
	if s.results != nil {
		key = cache.Key(text, s.pipe.Threshold())
		if body, ok := s.results.Get(key); ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write(body)
			return
		}
	}

	result := s.pipe.Process(r.Context(), text)

	body, err := json.Marshal(result)
	if err != nil {
		httpError(w, http.StatusInternalServerError, "encode result")
		return
	}
	if s.results != nil {
		_ = s.results.Set(key, body, s.cacheTTL)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func httpError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
