// Package domain contains the core data model for image generation.
package domain

// GeneratedImage is a single persisted gallery entry. Records are immutable
// once created; the gallery only grows until the user clears it entirely.
type GeneratedImage struct {
	ID        string `json:"id"`
	URL       string `json:"url"`       // data URL (inline base64 with MIME tag)
	Prompt    string `json:"prompt"`    // may be empty for image-only generations
	Model     string `json:"model"`     // human-readable model label
	Timestamp int64  `json:"timestamp"` // creation time, epoch milliseconds
}
