// Package server exposes the data manager registry over HTTP.
//
// Routes:
//
//	GET  /healthz           liveness probe
//	GET  /formats           registered formats as JSON
//	POST /render/{format}   render a JSON dataset description in format
package server

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/dataportal/pkg/dataset"
	"github.com/matzehuels/dataportal/pkg/errors"
	"github.com/matzehuels/dataportal/pkg/observability"
	"github.com/matzehuels/dataportal/pkg/portal"
)

// maxBodyBytes bounds dataset descriptions posted to /render.
const maxBodyBytes = 1 << 20

// Server serves the data portal HTTP API.
type Server struct {
	registry *portal.Registry
	logger   *log.Logger
	router   chi.Router
}

// New creates a Server backed by registry.
func New(registry *portal.Registry, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{registry: registry, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Get("/formats", s.handleFormats)
	r.Post("/render/{format}", s.handleRender)

	s.router = r
	return s
}

// Handler returns the HTTP handler for the API.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		elapsed := time.Since(start)
		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), elapsed)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"id", middleware.GetReqID(r.Context()),
			"elapsed", elapsed.Round(time.Microsecond))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

type formatInfo struct {
	Format      string `json:"format"`
	Description string `json:"description"`
}

func (s *Server) handleFormats(w http.ResponseWriter, r *http.Request) {
	fs := s.registry.Formats()
	out := make([]formatInfo, len(fs))
	for i, f := range fs {
		out[i] = formatInfo{Format: f.Format, Description: f.Description}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if _, ok := s.registry.Lookup(format); !ok {
		s.writeError(w, errors.New(errors.ErrCodeUnknownFormat, "no data manager for format %q", format))
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorBody{
				Code:    errors.ErrCodeInvalidInput,
				Message: fmt.Sprintf("request body exceeds %d bytes", maxBodyBytes),
			})
			return
		}
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "read request body"))
		return
	}

	ds, err := dataset.Decode(bytes.NewReader(body), "json")
	if err != nil {
		s.writeError(w, err)
		return
	}

	out, err := s.render(r.Context(), format, ds)
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

// render writes ds through a fresh manager into a scratch file and returns
// the file's content.
func (s *Server) render(ctx context.Context, format string, ds *dataset.Dataset) ([]byte, error) {
	f, err := os.CreateTemp("", "render-*."+format)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "create scratch file")
	}
	path := f.Name()
	f.Close()
	defer os.Remove(path)

	m, err := s.registry.New(format, portal.Config{Logger: s.logger})
	if err != nil {
		return nil, err
	}
	if err := m.Initialize(portal.Options{portal.OptionFilename: path}); err != nil {
		return nil, err
	}
	defer m.Close()

	err = observability.Track(ctx, observability.OpWrite, format, path, func() error {
		return m.Write(ds.Model, ds.Data)
	})
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read rendered output")
	}
	return b, nil
}

type errorBody struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError && status != http.StatusNotImplemented {
		s.logger.Error("render failed", "err", err)
	}
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, status, errorBody{Code: code, Message: errors.UserMessage(err)})
}

func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeNotImplemented:
		return http.StatusNotImplemented
	case errors.ErrCodeUnknownFormat:
		return http.StatusNotFound
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidName,
		errors.ErrCodeInvalidDataset, errors.ErrCodeMissingComponent:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
