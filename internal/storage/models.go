package storage

import "time"

// RequestLog records one generation call for the usage log view.
type RequestLog struct {
	ID           string    `json:"id"`
	RequestID    string    `json:"request_id"`
	Model        string    `json:"model"`
	PromptTokens int       `json:"prompt_tokens"`
	ImageCount   int       `json:"image_count"`
	StatusCode   int       `json:"status_code"`
	ErrorMessage string    `json:"error_message,omitempty"`
	DurationMs   int64     `json:"duration_ms"`
	CreatedAt    time.Time `json:"created_at"`
}
