package httpx

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"cubeserve/internal/config"
)

// Handler is the full middleware chain plus routes.
func (s *Server) Handler() http.Handler {
	return s.router()
}

func (s *Server) router() *chi.Mux {
	r := chi.NewRouter()
	r.Use(CORS)
	r.Use(RequestID)
	r.Use(AccessLog(s.Log))
	r.Use(middleware.Recoverer)
	r.Use(s.Serial)
	r.Use(middleware.GetHead)
	MountRoutes(r, s)
	return r
}

func MountRoutes(r chi.Router, s *Server) {
	r.Get("/_status", s.handleStatus)
	r.Get("/_fragment/source", s.handleSource)

	r.Options("/*", handlePreflight)
	r.Get("/*", s.handleGet)
}

// isTestPage decides whether path gets the synthesized page instead of a
// file from disk.
func (s *Server) isTestPage(path string) bool {
	if !strings.HasSuffix(path, ".html") {
		return false
	}
	if s.Config.Match == config.MatchSubstring {
		return strings.Contains(path, TestPageMarker)
	}
	return path == TestPagePath
}
