package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/sozercan/truthlens/internal/analyzer"
	"github.com/sozercan/truthlens/internal/config"
	"github.com/sozercan/truthlens/internal/render"
	"github.com/sozercan/truthlens/internal/session"
	"github.com/sozercan/truthlens/web"
)

const shutdownGrace = 30 * time.Second

type Server struct {
	cfg      config.ServerConfig
	router   chi.Router
	server   *http.Server
	analyzer *analyzer.Analyzer
	renderer *render.Renderer
	sessions *session.Store
}

func New(cfg config.Config, analyzer *analyzer.Analyzer, renderer *render.Renderer, sessions *session.Store) (*Server, error) {
	s := &Server{
		cfg:      cfg.Server,
		analyzer: analyzer,
		renderer: renderer,
		sessions: sessions,
	}

	router, err := s.setupRoutes()
	if err != nil {
		return nil, err
	}
	s.router = router

	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
	}

	return s, nil
}

func (s *Server) setupRoutes() (chi.Router, error) {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logRequests)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// Serve static files
	static, err := fs.Sub(web.FS, "static")
	if err != nil {
		return nil, fmt.Errorf("opening static assets: %w", err)
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	// Page routes
	r.Get("/", s.handleIndex)
	r.Post("/analyze/news", s.handleNewsSubmit)
	r.Post("/analyze/video", s.handleVideoSubmit)

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/analyze", s.handleAnalyze)
		r.Get("/health", s.handleHealth)
	})

	return r, nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// logRequests records one line per request. Server errors log at error level.
func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		defer func() {
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			level := slog.LevelInfo
			if status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			slog.Log(r.Context(), level, "HTTP request completed",
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

// Run serves until ctx is done, then gives in-flight requests shutdownGrace to finish.
func (s *Server) Run(ctx context.Context) error {
	serveErr := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "address", s.server.Addr)
		serveErr <- s.server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	slog.Info("Shutting down server", "cause", context.Cause(ctx))
	drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownGrace)
	defer cancel()

	if err := s.server.Shutdown(drainCtx); err != nil {
		return fmt.Errorf("draining connections: %w", err)
	}
	return nil
}
