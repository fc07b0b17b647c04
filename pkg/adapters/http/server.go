package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/afuentesan/awpak-builder"
	"github.com/afuentesan/awpak-builder/internal/logging"
	"github.com/afuentesan/awpak-builder/pkg/codec"
	"github.com/afuentesan/awpak-builder/pkg/domain"
	"github.com/afuentesan/awpak-builder/pkg/ports"
	"github.com/afuentesan/awpak-builder/pkg/validate"
)

// MaxBodyBytes bounds the size of uploaded graph documents.
const MaxBodyBytes = 4 << 20

// Server serves the graph editing API over an Editor.
type Server struct {
	Editor  *awpak.Editor
	Watcher ports.Watchable

	logger     *slog.Logger
	metrics    http.Handler
	instrument func(http.Handler) http.Handler
}

// Option configures the Server.
type Option func(*Server)

// WithWatcher enables GET /events, signaling document changes.
func WithWatcher(w ports.Watchable) Option {
	return func(s *Server) {
		s.Watcher = w
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetrics mounts h at GET /metrics and wraps every route with instrument.
// A nil instrument leaves routes unwrapped.
func WithMetrics(h http.Handler, instrument func(http.Handler) http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
		s.instrument = instrument
	}
}

// NewHandler creates a new HTTP handler for the editor.
func NewHandler(ed *awpak.Editor, opts ...Option) http.Handler {
	s := &Server{Editor: ed}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.NewNop()
	}

	r := chi.NewRouter()
	if s.instrument != nil {
		r.Use(s.instrument)
	}
	r.Use(enableCORS)

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		_, _ = w.Write(rawSpec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(swaggerHTML))
	})
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}

	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Get("/events", s.SubscribeEvents)
	r.Post("/validate", s.ValidateGraph)
	r.Post("/format", s.FormatGraph)

	r.Route("/graphs", func(r chi.Router) {
		r.Get("/", s.ListGraphs)
		r.Route("/{name}", func(r chi.Router) {
			r.Get("/", s.GetGraph)
			r.Put("/", s.PutGraph)
			r.Delete("/", s.DeleteGraph)
			r.Get("/export", s.ExportGraph)
			r.Delete("/nodes/{id}", s.RemoveNode)
			r.Post("/nodes/{id}/rename", s.RenameNode)
			r.Post("/nodes/{id}/kind", s.ChangeKind)
		})
	})
	return r
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if swagger, err := GetSwagger(); err == nil && swagger.Info != nil {
		apiVersion = swagger.Info.Version
	}
	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":         "awpak-http",
		"version":     awpak.Version,
		"api_version": apiVersion,
	})
}

// ListGraphs handles the GET /graphs request.
func (s *Server) ListGraphs(w http.ResponseWriter, r *http.Request) {
	names, err := s.Editor.List(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"graphs": names})
}

// GetGraph handles the GET /graphs/{name} request.
func (s *Server) GetGraph(w http.ResponseWriter, r *http.Request) {
	g, err := s.Editor.Load(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.fail(w, err)
		return
	}
	data, err := codec.Marshal(g)
	if err != nil {
		s.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

// PutGraph handles the PUT /graphs/{name} request.
func (s *Server) PutGraph(w http.ResponseWriter, r *http.Request) {
	g, ok := s.readGraph(w, r)
	if !ok {
		return
	}
	if err := s.Editor.Save(r.Context(), chi.URLParam(r, "name"), g); err != nil {
		s.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteGraph handles the DELETE /graphs/{name} request.
func (s *Server) DeleteGraph(w http.ResponseWriter, r *http.Request) {
	if err := s.Editor.Delete(r.Context(), chi.URLParam(r, "name")); err != nil {
		s.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ExportGraph handles the GET /graphs/{name}/export request.
func (s *Server) ExportGraph(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("format")
	if name == "" {
		name = string(awpak.FormatMermaid)
	}
	format, err := awpak.ParseFormat(name)
	if err != nil {
		s.fail(w, err)
		return
	}
	out, err := s.Editor.Export(r.Context(), chi.URLParam(r, "name"), format)
	if err != nil {
		s.fail(w, err)
		return
	}
	switch format {
	case awpak.FormatJSON:
		w.Header().Set("Content-Type", "application/json")
	case awpak.FormatDOT:
		w.Header().Set("Content-Type", "text/vnd.graphviz")
	default:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	}
	_, _ = w.Write(out)
}

type renameRequest struct {
	To string `json:"to"`
}

type editResult struct {
	References int `json:"references"`
}

// RenameNode handles the POST /graphs/{name}/nodes/{id}/rename request.
func (s *Server) RenameNode(w http.ResponseWriter, r *http.Request) {
	var body renameRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, MaxBodyBytes)).Decode(&body); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	n, err := s.Editor.RenameNode(r.Context(), chi.URLParam(r, "name"), chi.URLParam(r, "id"), body.To)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, editResult{References: n})
}

// RemoveNode handles the DELETE /graphs/{name}/nodes/{id} request.
// A referenced node is only removed with ?force=true.
func (s *Server) RemoveNode(w http.ResponseWriter, r *http.Request) {
	ed := s.Editor
	if force, _ := strconv.ParseBool(r.URL.Query().Get("force")); force {
		ed = ed.With(awpak.WithAllowDangling(true))
	}
	n, err := ed.RemoveNode(r.Context(), chi.URLParam(r, "name"), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, editResult{References: n})
}

type kindRequest struct {
	Node     string `json:"node"`
	Executor string `json:"executor"`
}

// ChangeKind handles the POST /graphs/{name}/nodes/{id}/kind request.
// Exactly one of node or executor must be set.
func (s *Server) ChangeKind(w http.ResponseWriter, r *http.Request) {
	var body kindRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, MaxBodyBytes)).Decode(&body); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	name, id := chi.URLParam(r, "name"), chi.URLParam(r, "id")

	var err error
	switch {
	case body.Node != "" && body.Executor == "":
		tag, ok := domain.ParseNodeTag(body.Node)
		if !ok {
			s.writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown node kind %q", body.Node))
			return
		}
		err = s.Editor.ChangeNodeKind(r.Context(), name, id, tag)
	case body.Executor != "" && body.Node == "":
		tag, ok := domain.ParseNodeExecutorTag(body.Executor)
		if !ok {
			s.writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown executor kind %q", body.Executor))
			return
		}
		err = s.Editor.ChangeExecutorKind(r.Context(), name, id, tag)
	default:
		s.writeError(w, http.StatusBadRequest, "set exactly one of node or executor")
		return
	}
	if err != nil {
		s.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type issueResponse struct {
	Node   string `json:"node,omitempty"`
	Field  string `json:"field,omitempty"`
	Reason string `json:"reason"`
}

type reportResponse struct {
	Valid       bool            `json:"valid"`
	Unreachable []string        `json:"unreachable"`
	Issues      []issueResponse `json:"issues"`
}

// ValidateGraph handles the POST /validate request.
func (s *Server) ValidateGraph(w http.ResponseWriter, r *http.Request) {
	g, ok := s.readGraph(w, r)
	if !ok {
		return
	}
	report := reportResponse{
		Unreachable: validate.Unreachable(g),
		Issues:      []issueResponse{},
	}
	if report.Unreachable == nil {
		report.Unreachable = []string{}
	}
	for _, is := range validate.Issues(validate.Graph(g)) {
		report.Issues = append(report.Issues, issueResponse{Node: is.NodeID, Field: is.Field, Reason: is.Reason})
	}
	report.Valid = len(report.Issues) == 0
	s.writeJSON(w, http.StatusOK, report)
}

// FormatGraph handles the POST /format request.
func (s *Server) FormatGraph(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, MaxBodyBytes))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	out, err := s.Editor.Format(data)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(out)
}

// SubscribeEvents handles the GET /events request (SSE).
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request) {
	if s.Watcher == nil {
		s.writeError(w, http.StatusNotImplemented, "the store does not support change events")
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		s.writeError(w, http.StatusInternalServerError, "streaming not supported")
		return
	}
	events, err := s.Watcher.Watch(r.Context())
	if err != nil {
		s.fail(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	s.logger.Info("SSE client subscribed")
	for {
		select {
		case <-r.Context().Done():
			s.logger.Info("SSE client disconnected")
			return
		case _, ok := <-events:
			if !ok {
				return
			}
			fmt.Fprintf(w, "data: reload\n\n")
			flusher.Flush()
		}
	}
}

func (s *Server) readGraph(w http.ResponseWriter, r *http.Request) (*domain.Graph, bool) {
	data, err := io.ReadAll(io.LimitReader(r.Body, MaxBodyBytes))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	g, err := s.Editor.Decode(data)
	if err != nil {
		s.logger.Warn("rejected graph document", "err", err)
		s.writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	return g, true
}

// statusOf maps domain errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrGraphNotFound), errors.Is(err, domain.ErrNodeNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidGraphName), errors.Is(err, awpak.ErrUnknownFormat):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrReadOnly):
		return http.StatusMethodNotAllowed
	case errors.Is(err, domain.ErrDuplicateNodeID), errors.Is(err, awpak.ErrInvalidEdit):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	code := statusOf(err)
	if code == http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	s.writeError(w, code, err.Error())
}

func (s *Server) writeError(w http.ResponseWriter, code int, msg string) {
	s.writeJSON(w, code, map[string]string{"error": msg})
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "err", err)
	}
}
