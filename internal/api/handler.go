package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/qaspilab/qaspilab/internal/config"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// HealthCheck reports whether a dependency is usable.
type HealthCheck func(ctx context.Context) error

// Option configures a Handler.
type Option func(*Handler)

// WithHealthCheck adds a named dependency check to GET /healthz.
func WithHealthCheck(name string, check HealthCheck) Option {
	return func(h *Handler) {
		h.checks[name] = check
	}
}

// Handler holds dependencies for API handlers.
type Handler struct {
	ideas      IdeaSubmitter
	site       *config.Site
	checks     map[string]HealthCheck
	bufferPool *sync.Pool // Pool of bytes.Buffer for JSON encoding
}

// New creates a new API Handler.
func New(ideas IdeaSubmitter, site *config.Site, opts ...Option) (*Handler, error) {
	if ideas == nil {
		return nil, errors.New("idea service is required")
	}
	if site == nil {
		return nil, errors.New("site config is required")
	}
	h := &Handler{
		ideas:  ideas,
		site:   site,
		checks: make(map[string]HealthCheck),
		bufferPool: &sync.Pool{
			New: func() interface{} {
				return new(bytes.Buffer)
			},
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// RegisterRoutes registers all API routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST "+config.SubmitIdeaPath, h.SubmitIdea)
	mux.HandleFunc("GET /api/budgets", h.Budgets)
	mux.HandleFunc("GET /api/galleries/{name}", h.Gallery)
	mux.HandleFunc("GET /healthz", h.Health)
	mux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	buf := h.bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		h.bufferPool.Put(buf)
	}()

	if err := json.NewEncoder(buf).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
		http.Error(w, `{"error":"internal server error","code":500}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write JSON response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, ErrorResponse{
		Error: msg,
		Code:  status,
	})
}
