package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	log    *slog.Logger
	apiKey string
	router chi.Router
}

// New creates a new Server with all routes configured. An empty apiKey leaves
// the report endpoints open.
func New(apiKey string, log *slog.Logger) *Server {
	s := &Server{
		log:    log,
		apiKey: apiKey,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Get("/api/v1/workouts", s.handleWorkoutTypes)
	s.router.Get("/api/v1/workouts/{code}", s.handleWorkoutType)

	s.router.Route("/api/v1/reports", func(r chi.Router) {
		if s.apiKey != "" {
			r.Use(APIKeyAuth(s.apiKey))
		}
		r.Post("/", s.handleReport)
		r.Post("/batch", s.handleBatch)
		r.Get("/{code}", s.handleReportQuery)
	})

	s.router.Handle("/metrics", promhttp.Handler())
}

// SetMCP mounts an MCP transport handler under /mcp, behind the same API key
// check as the report endpoints.
func (s *Server) SetMCP(h http.Handler) {
	s.router.Group(func(r chi.Router) {
		if s.apiKey != "" {
			r.Use(APIKeyAuth(s.apiKey))
		}
		r.Handle("/mcp", h)
		r.Handle("/mcp/*", h)
	})
}
