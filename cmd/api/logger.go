package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/genz27/Nano-Gaallery/internal/config"
	"github.com/genz27/Nano-Gaallery/internal/version"
)

func setupLogger() *slog.Logger {
	// Use sensible defaults: info level, text format
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(handler)
}

func printStartupBanner(cfg *config.Config) {
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "🍌 Nano Gallery %s - Gemini Image Gallery\n", version.Version)
	fmt.Fprintln(os.Stderr, "════════════════════════════════════════════════")
	if cfg.EnableWebUI {
		fmt.Fprintf(os.Stderr, "Gallery UI:  http://localhost%s/\n", cfg.ServerPort)
	}
	fmt.Fprintf(os.Stderr, "API:         http://localhost%s/api/generate\n", cfg.ServerPort)
	if cfg.AccessSecret != "" {
		fmt.Fprintln(os.Stderr, "Access gate: enabled")
	}
	fmt.Fprintf(os.Stderr, "Data:        %s\n", config.DataDir())
	fmt.Fprintln(os.Stderr, "════════════════════════════════════════════════")
	fmt.Fprintf(os.Stderr, "\n")
}
