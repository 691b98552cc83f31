// Package http exposes the rendering engine as an HTTP service.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aretw0/weft"
	"github.com/aretw0/weft/internal/dto"
	"github.com/aretw0/weft/internal/logging"
	"github.com/aretw0/weft/pkg/domain"
	"github.com/aretw0/weft/pkg/ports"
)

// Server routes render requests to the engine.
type Server struct {
	engine  *weft.Engine
	loader  ports.TemplateLoader
	store   ports.ContextStore
	metrics http.Handler
	logger  *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithLoader enables rendering named templates.
func WithLoader(l ports.TemplateLoader) Option {
	return func(s *Server) {
		s.loader = l
	}
}

// WithContextStore enables stored rendering contexts (context_id requests
// and the /contexts endpoints).
func WithContextStore(store ports.ContextStore) Option {
	return func(s *Server) {
		s.store = store
	}
}

// WithMetricsHandler mounts a metrics endpoint (typically promhttp) at
// /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// WithLogger injects the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler creates the HTTP handler for the engine.
func NewHandler(engine *weft.Engine, opts ...Option) http.Handler {
	s := &Server{
		engine: engine,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealth)
	r.Post("/render", s.handleRender)
	r.Get("/templates", s.handleListTemplates)
	r.Put("/contexts/{id}", s.handleSaveContext)
	r.Delete("/contexts/{id}", s.handleDeleteContext)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}
	return r
}

// RenderRequest is the body of POST /render. Exactly one of Template
// (a name resolved through the loader) or Document (an inline template
// document) selects the template; Context and ContextID may be combined,
// with inline values overlaying the stored context.
type RenderRequest struct {
	Template  string         `json:"template,omitempty"`
	Document  map[string]any `json:"document,omitempty"`
	Context   map[string]any `json:"context,omitempty"`
	ContextID string         `json:"context_id,omitempty"`
}

// RenderResponse carries the rendered output.
type RenderResponse struct {
	Output string `json:"output"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req RenderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("render: invalid request body", "error", err)
		return
	}

	nodes, err := s.resolveTemplate(&req)
	if err != nil {
		s.writeError(w, err)
		return
	}

	data, err := s.resolveContext(r.Context(), &req)
	if err != nil {
		s.writeError(w, err)
		return
	}

	out, err := s.engine.RenderContext(r.Context(), nodes, data)
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(RenderResponse{Output: string(out)}); err != nil {
		s.logger.Error("render response encode failed", "error", err)
	}
}

func (s *Server) resolveTemplate(req *RenderRequest) ([]domain.Node, error) {
	switch {
	case req.Template != "" && req.Document != nil:
		return nil, errBadRequest("request must set either template or document, not both")
	case req.Template != "":
		if s.loader == nil {
			return nil, errBadRequest("named templates are not configured")
		}
		return s.loader.GetTemplate(req.Template)
	case req.Document != nil:
		_, nodes, err := dto.FromMap(req.Document)
		if err != nil {
			return nil, errBadRequest(err.Error())
		}
		return nodes, nil
	default:
		return nil, errBadRequest("request must set template or document")
	}
}

func (s *Server) resolveContext(ctx context.Context, req *RenderRequest) (*domain.Context, error) {
	if req.ContextID == "" {
		return domain.ContextFromAny(req.Context), nil
	}
	if s.store == nil {
		return nil, errBadRequest("stored contexts are not configured")
	}
	data, err := s.store.Load(ctx, req.ContextID)
	if err != nil {
		return nil, err
	}
	// Inline values overlay the stored context.
	for k, v := range req.Context {
		data.Set(k, domain.FromAny(v))
	}
	return data, nil
}

func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	if s.loader == nil {
		http.Error(w, "Named templates are not configured", http.StatusNotFound)
		return
	}
	names, err := s.loader.ListTemplates()
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string][]string{"templates": names}); err != nil {
		s.logger.Error("templates response encode failed", "error", err)
	}
}

func (s *Server) handleSaveContext(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		http.Error(w, "Stored contexts are not configured", http.StatusNotFound)
		return
	}
	var data map[string]any
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	id := chi.URLParam(r, "id")
	if err := s.store.Save(r.Context(), id, domain.ContextFromAny(data)); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteContext(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		http.Error(w, "Stored contexts are not configured", http.StatusNotFound)
		return
	}
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type badRequestError string

func errBadRequest(msg string) error { return badRequestError(msg) }

func (e badRequestError) Error() string { return string(e) }

// writeError maps failures onto status codes: malformed requests are 400,
// missing templates/contexts are 404, template-level failures (unknown
// tag, structural misuse, bad encoding) are 422, everything else is 500.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var (
		badReq     badRequestError
		unknownTag *domain.UnknownTagError
		badSyntax  *domain.UnexpectedSyntaxError
		badText    *domain.EncodingError
	)

	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &badReq):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrTemplateNotFound), errors.Is(err, domain.ErrContextNotFound):
		status = http.StatusNotFound
	case errors.As(err, &unknownTag), errors.As(err, &badSyntax), errors.As(err, &badText):
		status = http.StatusUnprocessableEntity
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
	} else {
		s.logger.Warn("request rejected", "error", err, "status", status)
	}
	http.Error(w, err.Error(), status)
}
