package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file structure.
type FileConfig struct {
	ServerPort    string `toml:"server_port"`
	EnableWebUI   *bool  `toml:"enable_web_ui"`
	GeminiAPIKey  string `toml:"gemini_api_key"`
	GeminiBaseURL string `toml:"gemini_base_url"`
	AccessSecret  string `toml:"access_secret"`
}

// ConfigPath returns the path to the config file (~/.nanogallery/config.toml).
func ConfigPath() string {
	return filepath.Join(DataDir(), "config.toml")
}

// LoadFile loads configuration from the TOML file.
// Returns an empty FileConfig if the file doesn't exist.
func LoadFile() (*FileConfig, error) {
	cfg := &FileConfig{}

	path := ConfigPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// EnsureConfigFile creates a default config file with commented examples if none exists.
func EnsureConfigFile() error {
	path := ConfigPath()

	// If config already exists, do nothing
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	// Ensure directory exists
	if err := EnsureDataDir(); err != nil {
		return err
	}

	defaultConfig := `# Nano Gallery Configuration
# server_port = ":8080"
# enable_web_ui = true

# Gemini API key. Usually set via the GEMINI_API_KEY environment variable
# or a .env file instead.
# gemini_api_key = ""

# Alternate base URL for the Gemini API (proxies, regional endpoints).
# gemini_base_url = "https://generativelanguage.googleapis.com"

# Shared access code gating image generation. Leave empty to disable the gate.
# access_secret = ""
`

	return os.WriteFile(path, []byte(defaultConfig), 0644)
}
