package config

import "os"

// DefaultBaseURL is the Gemini API endpoint used when no override is set.
const DefaultBaseURL = "https://generativelanguage.googleapis.com"

// Config holds application configuration loaded from environment and file.
// Priority: Env vars → config.toml → defaults
type Config struct {
	// ServerPort is the address to bind the server to (e.g., ":8080")
	ServerPort string

	// EnableWebUI enables the embedded gallery UI at /
	EnableWebUI bool

	// GeminiAPIKey authenticates requests to the remote API. Required.
	GeminiAPIKey string

	// GeminiBaseURL overrides the remote API base URL (for proxies/tests).
	GeminiBaseURL string

	// AccessSecret, when non-empty, gates generation calls behind a shared
	// access code. Empty means the gate is a no-op passthrough.
	AccessSecret string
}

// Load reads configuration from file and environment variables.
// Environment variables override file config values.
func Load() *Config {
	fileConfig, err := LoadFile()
	if err != nil || fileConfig == nil {
		// Malformed file config falls back to env and defaults
		fileConfig = &FileConfig{}
	}

	return &Config{
		ServerPort:    getEnvOrFile("SERVER_PORT", fileConfig.ServerPort, ":8080"),
		EnableWebUI:   getEnvBoolOrFile("ENABLE_WEB_UI", fileConfig.EnableWebUI, true),
		GeminiAPIKey:  getEnvOrFile("GEMINI_API_KEY", fileConfig.GeminiAPIKey, ""),
		GeminiBaseURL: getEnvOrFile("GEMINI_BASE_URL", fileConfig.GeminiBaseURL, DefaultBaseURL),
		AccessSecret:  getEnvOrFile("ACCESS_SECRET", fileConfig.AccessSecret, ""),
	}
}

// getEnvOrFile returns env value, file value, or default (in priority order)
func getEnvOrFile(key, fileValue, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	if fileValue != "" {
		return fileValue
	}
	return defaultValue
}

// getEnvBoolOrFile returns env bool, file bool, or default (in priority order)
func getEnvBoolOrFile(key string, fileValue *bool, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	if fileValue != nil {
		return *fileValue
	}
	return defaultValue
}
