// Package app wires the HTTP server and routes together.
package app

import (
	"log"
	"net/http"
	"time"

	"github.com/genz27/Nano-Gaallery/internal/config"
)

// Server wraps the HTTP server with its configuration
type Server struct {
	httpServer *http.Server
	config     *config.Config
}

// NewServer creates a new configured HTTP server instance
func NewServer(cfg *config.Config, handler http.Handler) *Server {
	srv := &http.Server{
		Addr:    cfg.ServerPort,
		Handler: handler,
		// Image generations routinely take minutes; keep timeouts generous
		ReadTimeout:  300 * time.Second,
		WriteTimeout: 300 * time.Second,
	}

	return &Server{
		httpServer: srv,
		config:     cfg,
	}
}

// Start begins listening and serving HTTP requests
func (s *Server) Start() error {
	log.Printf("Nano Gallery server starting on http://localhost%s", s.config.ServerPort)

	return s.httpServer.ListenAndServe()
}
