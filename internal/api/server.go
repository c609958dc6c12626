package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/merdeka-labs/penyata/internal/escalation"
	"github.com/merdeka-labs/penyata/internal/metrics"
	"github.com/merdeka-labs/penyata/internal/processor"
)

type Server struct {
	router       *chi.Mux
	port         int
	roster       processor.RosterLoader
	escalation   *escalation.Manager
	pipeline     *metrics.Pipeline
	suggestLimit int
	logger       *slog.Logger
}

func NewServer(port int, apiToken string, roster processor.RosterLoader, esc *escalation.Manager, pipeline *metrics.Pipeline, suggestLimit int, logger *slog.Logger) *Server {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s := &Server{
		router:       router,
		port:         port,
		roster:       roster,
		escalation:   esc,
		pipeline:     pipeline,
		suggestLimit: suggestLimit,
		logger:       logger,
	}

	router.Get("/health", s.health)
	router.Get("/api/v1/penyata/status", s.status)
	router.Method(http.MethodGet, "/metrics", pipeline.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(BearerAuthMiddleware(apiToken))
		r.Post("/analyses", s.createAnalysis)
		r.Get("/speakers/unmatched", s.listUnmatched)
		r.Get("/speakers/unmatched/{id}/suggestions", s.suggestMappings)
		r.Post("/speakers/unmatched/{id}/mapping", s.confirmMapping)
	})

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("API server starting", "addr", addr)
	return http.ListenAndServe(addr, s.router)
}

// BearerAuthMiddleware rejects requests without the configured token. An
// empty token disables auth (local development).
func BearerAuthMiddleware(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token != "" {
				header := r.Header.Get("Authorization")
				if !strings.HasPrefix(header, "Bearer ") || strings.TrimPrefix(header, "Bearer ") != token {
					writeError(w, http.StatusUnauthorized, "unauthorized")
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"service": "penyata",
		"status":  "ready",
	})
}

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
