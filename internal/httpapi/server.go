// Package httpapi serves snapshots of an in-memory RecordSet over HTTP.
//
// Records are loaded once; every request builds its own View from the query
// string, so no view state is kept between requests.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/Alp4ka/gotable"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// Server answers view queries over a fixed RecordSet.
type Server struct {
	records  gotable.RecordSet
	columns  []string
	defaults gotable.Parameters
	logger   zerolog.Logger
}

// New creates a Server. A nil defaults means gotable.DefaultParameters.
func New(records gotable.RecordSet, defaults *gotable.Parameters, logger zerolog.Logger) *Server {
	return &Server{
		records:  records,
		columns:  records.Columns(),
		defaults: *defaults.Clone(),
		logger:   logger,
	}
}

// Routes returns the HTTP handler:
//
//	GET /health
//	GET /api/v1/columns
//	GET /api/v1/view?search=&keys=&sort=&page=&per_page=&neighbors=
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/columns", s.handleColumns)
		r.Get("/view", s.handleView)
	})

	return r
}

func (s *Server) handleColumns(w http.ResponseWriter, _ *http.Request) {
	respondSuccess(w, "Columns retrieved successfully", s.columns)
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	params, details := ParseViewParams(r, s.defaults, s.columns)
	if len(details) > 0 {
		respondError(w, http.StatusBadRequest, "Invalid query parameters", details)
		return
	}

	view, err := gotable.NewView(s.records, params)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	respondSuccess(w, "View retrieved successfully", view.Snapshot())
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			s.logger.Info().
				Str("request_id", middleware.GetReqID(r.Context())).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Int("bytes", ww.BytesWritten()).
				Dur("duration", time.Since(start)).
				Msg("request handled")
		}()

		next.ServeHTTP(ww, r)
	})
}

// ListenAndServe serves Routes on addr until ctx is cancelled, then shuts the
// server down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", addr).Int("records", len(s.records)).Msg("server starting")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving %s: %w", addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	s.logger.Info().Msg("server stopped")

	return nil
}
