package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// isolateHome points the data directory at a temp dir so tests never read
// the developer's real config file.
func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("APPDATA", home)
	return home
}

func TestLoadDefaults(t *testing.T) {
	isolateHome(t)
	t.Setenv("SERVER_PORT", "")
	t.Setenv("ENABLE_WEB_UI", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GEMINI_BASE_URL", "")
	t.Setenv("ACCESS_SECRET", "")

	cfg := Load()

	if cfg.ServerPort != ":8080" {
		t.Errorf("expected default port :8080, got %q", cfg.ServerPort)
	}
	if !cfg.EnableWebUI {
		t.Error("expected web UI enabled by default")
	}
	if cfg.GeminiAPIKey != "" {
		t.Errorf("expected empty API key, got %q", cfg.GeminiAPIKey)
	}
	if cfg.GeminiBaseURL != DefaultBaseURL {
		t.Errorf("expected default base URL, got %q", cfg.GeminiBaseURL)
	}
	if cfg.AccessSecret != "" {
		t.Errorf("expected empty access secret, got %q", cfg.AccessSecret)
	}
}

func TestLoadFromEnv(t *testing.T) {
	isolateHome(t)
	t.Setenv("SERVER_PORT", ":9999")
	t.Setenv("ENABLE_WEB_UI", "false")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("GEMINI_BASE_URL", "http://localhost:1234")
	t.Setenv("ACCESS_SECRET", "banana")

	cfg := Load()

	if cfg.ServerPort != ":9999" {
		t.Errorf("expected port :9999, got %q", cfg.ServerPort)
	}
	if cfg.EnableWebUI {
		t.Error("expected web UI disabled")
	}
	if cfg.GeminiAPIKey != "test-key" {
		t.Errorf("expected API key test-key, got %q", cfg.GeminiAPIKey)
	}
	if cfg.GeminiBaseURL != "http://localhost:1234" {
		t.Errorf("expected overridden base URL, got %q", cfg.GeminiBaseURL)
	}
	if cfg.AccessSecret != "banana" {
		t.Errorf("expected access secret banana, got %q", cfg.AccessSecret)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	home := isolateHome(t)

	dir := filepath.Join(home, ".nanogallery")
	if err := os.MkdirAll(dir, 0700); err != nil {
		t.Fatalf("failed to create data dir: %v", err)
	}
	content := "server_port = \":7777\"\ngemini_api_key = \"file-key\"\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	t.Setenv("SERVER_PORT", ":9999")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("ENABLE_WEB_UI", "")
	t.Setenv("GEMINI_BASE_URL", "")
	t.Setenv("ACCESS_SECRET", "")

	cfg := Load()

	// Env wins over file, file wins over default
	if cfg.ServerPort != ":9999" {
		t.Errorf("expected env port :9999, got %q", cfg.ServerPort)
	}
	if cfg.GeminiAPIKey != "file-key" {
		t.Errorf("expected file key, got %q", cfg.GeminiAPIKey)
	}
}

func TestGetEnvBoolOrFile(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		want     bool
	}{
		{"true", "true", true},
		{"numeric one", "1", true},
		{"yes", "yes", true},
		{"false", "false", false},
		{"garbage", "banana", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_BOOL_FLAG", tt.envValue)
			got := getEnvBoolOrFile("TEST_BOOL_FLAG", nil, !tt.want)
			if got != tt.want {
				t.Errorf("expected %v for %q, got %v", tt.want, tt.envValue, got)
			}
		})
	}
}

func TestEnsureConfigFile(t *testing.T) {
	home := isolateHome(t)

	if err := EnsureConfigFile(); err != nil {
		t.Fatalf("failed to ensure config file: %v", err)
	}

	path := filepath.Join(home, ".nanogallery", "config.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected config file at %s: %v", path, err)
	}
	if !strings.Contains(string(data), "server_port") {
		t.Error("expected template to mention server_port")
	}

	// A second call must not clobber an existing file
	if err := os.WriteFile(path, []byte("server_port = \":7777\"\n"), 0600); err != nil {
		t.Fatalf("failed to overwrite config file: %v", err)
	}
	if err := EnsureConfigFile(); err != nil {
		t.Fatalf("second EnsureConfigFile failed: %v", err)
	}
	data, _ = os.ReadFile(path)
	if !strings.Contains(string(data), ":7777") {
		t.Error("EnsureConfigFile overwrote an existing file")
	}
}

func TestDataDirPaths(t *testing.T) {
	isolateHome(t)

	dir := DataDir()
	if dir == "" {
		t.Fatal("expected non-empty data dir")
	}
	if filepath.Base(DBPath()) != "nanogallery.db" {
		t.Errorf("unexpected db filename: %s", DBPath())
	}
	if !strings.HasPrefix(DBPath(), dir) {
		t.Errorf("db path %s not under data dir %s", DBPath(), dir)
	}
}
