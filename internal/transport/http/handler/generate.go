package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/genz27/Nano-Gaallery/internal/domain"
)

// generateRequest is the JSON body of POST /api/generate.
type generateRequest struct {
	Model       string                  `json:"model"`
	Prompt      string                  `json:"prompt"`
	Images      []domain.ReferenceImage `json:"images"`
	AspectRatio string                  `json:"aspectRatio"`
	ImageSize   string                  `json:"imageSize"`
}

// generateResponse carries the data URLs of the produced images.
type generateResponse struct {
	Images []string `json:"images"`
}

// Generate handles POST /api/generate. It runs one generation call and
// returns the produced images as data URLs; the persisted gallery is the
// source of truth for subsequent renders.
func (h *Repo) Generate(w http.ResponseWriter, r *http.Request) {
	var body generateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, "invalid request format", http.StatusBadRequest)
		return
	}

	if body.AspectRatio != "" && !domain.ValidAspectRatio(body.AspectRatio) {
		writeError(w, "unsupported aspect ratio: "+body.AspectRatio, http.StatusBadRequest)
		return
	}
	if body.ImageSize != "" && !domain.ValidImageSize(body.ImageSize) {
		writeError(w, "unsupported image size: "+body.ImageSize, http.StatusBadRequest)
		return
	}

	req := &domain.GenerationRequest{
		Model:           domain.ParseModel(body.Model),
		Prompt:          body.Prompt,
		ReferenceImages: body.Images,
		AspectRatio:     body.AspectRatio,
		ImageSize:       body.ImageSize,
	}

	images, err := h.Generator.Generate(r.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyRequest) {
			writeError(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	urls := make([]string, len(images))
	for i, img := range images {
		urls[i] = img.URL
	}

	writeJSON(w, generateResponse{Images: urls}, http.StatusOK)
}
