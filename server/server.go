// Package server exposes the locator parser and path builder over HTTP.
//
// It is the integration layer for the parser's navigation-replacement
// instruction: legacy suffixed-domain URLs are answered with a permanent
// redirect to the canonical short form, mirroring what the in-browser
// history replacement does for the SPA.
package server

import (
	"net/http"
	"sync"

	"go.uber.org/zap"

	"github.com/Bitcoinera/aragon/apps"
	"github.com/Bitcoinera/aragon/config"
	"github.com/Bitcoinera/aragon/logger"
	"github.com/Bitcoinera/aragon/routing"
)

// Server resolves dashboard URLs to locators over HTTP.
type Server struct {
	addr           string
	allowedOrigins []string
	parser         *routing.Parser
	logger         *zap.SugaredLogger

	mu      sync.RWMutex
	builder *routing.Builder
}

// New creates a server from configuration, a parser, and the application
// registry backing the path builder.
func New(cfg config.ServerConfig, parser *routing.Parser, registry *apps.Registry) *Server {
	if parser == nil {
		parser = routing.NewParser()
	}
	return &Server{
		addr:           cfg.Addr,
		allowedOrigins: cfg.AllowedOrigins,
		parser:         parser,
		builder:        routing.NewBuilder(registry),
		logger:         logger.Logger,
	}
}

// SetRegistry swaps the registry backing the path builder. Used by the
// registry file watcher on live reload.
func (s *Server) SetRegistry(registry *apps.Registry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.builder = routing.NewBuilder(registry)
}

func (s *Server) currentBuilder() *routing.Builder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.builder
}

// Handler returns the HTTP handler with all routes configured.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/locator", s.corsMiddleware(s.HandleLocator))
	mux.HandleFunc("/api/path", s.corsMiddleware(s.HandlePath))
	mux.HandleFunc("/api/preferences", s.corsMiddleware(s.HandlePreferences))
	mux.HandleFunc("/health", s.corsMiddleware(s.HandleHealth))
	mux.HandleFunc("/", s.corsMiddleware(s.HandleNavigate))
	return mux
}

// Run starts the HTTP server and blocks until it stops.
func (s *Server) Run() error {
	s.logger.Infow("Locator server listening",
		"addr", s.addr)
	return http.ListenAndServe(s.addr, s.Handler())
}

// corsMiddleware adds CORS headers for configured allowed origins
func (s *Server) corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && s.originAllowed(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next(w, r)
	}
}

func (s *Server) originAllowed(origin string) bool {
	for _, allowed := range s.allowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}
