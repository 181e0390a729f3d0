// Package handler contains the HTTP handlers for the gallery API.
package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/genz27/Nano-Gaallery/internal/service"
	"github.com/genz27/Nano-Gaallery/internal/storage"
)

// Repo composes the API handlers and their shared dependencies.
type Repo struct {
	Generator *service.Generator
	Storage   storage.Storage

	startTime    time.Time
	authRequired bool
}

// NewRepo creates a new instance of the handler repository.
func NewRepo(gen *service.Generator, store storage.Storage, authRequired bool) *Repo {
	return &Repo{
		Generator:    gen,
		Storage:      store,
		startTime:    time.Now(),
		authRequired: authRequired,
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, message string, status int) {
	writeJSON(w, map[string]string{"error": message}, status)
}
