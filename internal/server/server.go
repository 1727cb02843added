// Package server exposes the production studio over HTTP: session
// lifecycle, reference management, shot catalog queries and the
// generation endpoints.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/semaphore"

	"fashion-shot-studio/internal/genclient"
	"fashion-shot-studio/internal/reference"
	"fashion-shot-studio/internal/studio"
	"fashion-shot-studio/internal/workflow"
)

const maxUploadBytes = 25 << 20

type Options struct {
	Sessions       *workflow.Store
	Logger         *slog.Logger
	RequestTimeout time.Duration
	// MaxConcurrent bounds backend generation calls across all
	// sessions. Requests over the limit queue on their own context.
	MaxConcurrent int
}

type Server struct {
	sessions       *workflow.Store
	logger         *slog.Logger
	requestTimeout time.Duration
	generationSem  *semaphore.Weighted
}

type apiError struct {
	Error string `json:"error"`
}

func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = 240 * time.Second
	}

	maxConcurrent := opts.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = 3
	}

	return &Server{
		sessions:       opts.Sessions,
		logger:         logger,
		requestTimeout: timeout,
		generationSem:  semaphore.NewWeighted(int64(maxConcurrent)),
	}
}

// acquireGeneration blocks until a generation slot frees up or the
// request context dies.
func (s *Server) acquireGeneration(ctx context.Context, w http.ResponseWriter) bool {
	if err := s.generationSem.Acquire(ctx, 1); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, apiError{Error: "generation capacity exhausted"})
		return false
	}
	return true
}

// Handler builds the API routing table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/sessions", s.handleCreateSession)
	mux.HandleFunc("DELETE /api/sessions/{id}", s.handleDeleteSession)
	mux.HandleFunc("GET /api/sessions/{id}/settings", s.handleGetSettings)
	mux.HandleFunc("PATCH /api/sessions/{id}/settings", s.handlePatchSettings)

	mux.HandleFunc("GET /api/sessions/{id}/references", s.handleListReferences)
	mux.HandleFunc("POST /api/sessions/{id}/references", s.handleUploadReferences)
	mux.HandleFunc("PATCH /api/sessions/{id}/references/{refId}", s.handlePatchReference)
	mux.HandleFunc("DELETE /api/sessions/{id}/references/{refId}", s.handleDeleteReference)

	mux.HandleFunc("GET /api/sessions/{id}/shots", s.handleListShots)
	mux.HandleFunc("POST /api/sessions/{id}/shots/{shotId}/reference", s.handleSetShotReference)
	mux.HandleFunc("DELETE /api/sessions/{id}/shots/{shotId}/reference", s.handleDeleteShotReference)

	mux.HandleFunc("POST /api/sessions/{id}/generate", s.handleGenerate)
	mux.HandleFunc("POST /api/sessions/{id}/refine", s.handleRefine)
	mux.HandleFunc("POST /api/sessions/{id}/batch", s.handleBatch)
	mux.HandleFunc("GET /api/sessions/{id}/results", s.handleResults)
	mux.HandleFunc("DELETE /api/sessions/{id}/results", s.handleResetResults)
	mux.HandleFunc("POST /api/sessions/{id}/suggestions", s.handleSuggestions)

	return withLogging(mux, s.logger)
}

func (s *Server) session(w http.ResponseWriter, r *http.Request) (*workflow.State, bool) {
	state, ok := s.sessions.Get(r.PathValue("id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, apiError{Error: "session not found"})
		return nil, false
	}
	return state, true
}

// writeGenerationError maps typed backend failures onto HTTP statuses.
func (s *Server) writeGenerationError(w http.ResponseWriter, err error) {
	if errors.Is(err, studio.ErrNoBaseModel) {
		writeJSON(w, http.StatusBadRequest, apiError{Error: err.Error()})
		return
	}

	if ge, ok := genclient.AsError(err); ok {
		status := http.StatusBadGateway
		switch ge.Kind {
		case genclient.KindMalformedInput:
			status = http.StatusBadRequest
		case genclient.KindQuotaExceeded:
			status = http.StatusTooManyRequests
		case genclient.KindServiceUnavailable:
			status = http.StatusServiceUnavailable
		case genclient.KindContentPolicyBlocked:
			status = http.StatusUnprocessableEntity
		}
		writeJSON(w, status, apiError{Error: ge.Error()})
		return
	}

	writeJSON(w, http.StatusInternalServerError, apiError{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("content-type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(io.LimitReader(r.Body, maxUploadBytes))
	return dec.Decode(v)
}

func withLogging(next http.Handler, logger *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Info("http", "method", r.Method, "path", r.URL.Path, "dur_ms", time.Since(start).Milliseconds())
	})
}

// referenceView is the client-facing shape of a reference object; image
// bytes stay server-side.
type referenceView struct {
	ID          string                 `json:"id"`
	Description string                 `json:"description"`
	Purpose     reference.Purpose      `json:"purpose"`
	Label       string                 `json:"label"`
	HasMask     bool                   `json:"hasMask"`
	BoundingBox *reference.BoundingBox `json:"boundingBox,omitempty"`
}

func viewOf(obj reference.Object) referenceView {
	return referenceView{
		ID:          obj.ID,
		Description: obj.Description,
		Purpose:     obj.Purpose,
		Label:       obj.Purpose.Label(),
		HasMask:     obj.Mask != "",
		BoundingBox: obj.BoundingBox,
	}
}
