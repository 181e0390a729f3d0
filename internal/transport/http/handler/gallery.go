package handler

import (
	"net/http"

	"github.com/genz27/Nano-Gaallery/internal/domain"
)

// ListImages handles GET /api/images. Returns all gallery records,
// newest first.
func (h *Repo) ListImages(w http.ResponseWriter, r *http.Request) {
	images, err := h.Storage.ListImages()
	if err != nil {
		writeError(w, "failed to load gallery", http.StatusInternalServerError)
		return
	}

	if images == nil {
		images = []*domain.GeneratedImage{}
	}

	writeJSON(w, map[string]any{"images": images}, http.StatusOK)
}

// ClearImages handles DELETE /api/images. Empties the entire gallery; this
// is the only way records are ever destroyed.
func (h *Repo) ClearImages(w http.ResponseWriter, r *http.Request) {
	if err := h.Storage.ClearImages(); err != nil {
		writeError(w, "failed to clear gallery", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
