package app

import (
	"log/slog"
	"net/http"

	"github.com/dgraph-io/ristretto/v2"

	"github.com/genz27/Nano-Gaallery/internal/transport/http/handler"
	"github.com/genz27/Nano-Gaallery/internal/transport/http/middleware"
)

// RouterOptions configures the HTTP router behavior.
type RouterOptions struct {
	EnableWebUI bool
	Logger      *slog.Logger

	// AccessSecretHash is the Argon2id hash of the configured access secret;
	// empty disables the gate.
	AccessSecretHash string
	GateCache        *ristretto.Cache[string, bool]
}

// NewRouter creates and configures the HTTP router with all application
// routes and the middleware chain applied.
func NewRouter(repo *handler.Repo, opts *RouterOptions) http.Handler {
	mux := http.NewServeMux()

	// Public routes
	mux.HandleFunc("GET /api/health", repo.HealthCheck)
	mux.HandleFunc("GET /api/images", repo.ListImages)
	mux.HandleFunc("GET /api/logs", repo.RequestLogs)

	// Generation and clear-all sit behind the access gate (a passthrough
	// when no secret is configured)
	gate := middleware.AccessGate(opts.AccessSecretHash, opts.GateCache)
	mux.Handle("POST /api/generate", gate(http.HandlerFunc(repo.Generate)))
	mux.Handle("DELETE /api/images", gate(http.HandlerFunc(repo.ClearImages)))

	// Web UI (if enabled)
	if opts.EnableWebUI {
		mux.Handle("GET /", handler.WebUI())
	}

	// Apply middleware chain (order: outer to inner)
	var h http.Handler = mux

	// Request logging (if logger provided)
	if opts.Logger != nil {
		h = middleware.RequestLogger(opts.Logger)(h)
	}

	// Request ID (always applied)
	h = middleware.RequestID(h)

	// CORS (always applied for Web UI compatibility)
	h = middleware.CORS(h)

	return h
}
