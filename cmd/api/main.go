package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/genz27/Nano-Gaallery/internal/app"
	"github.com/genz27/Nano-Gaallery/internal/config"
	"github.com/genz27/Nano-Gaallery/internal/gemini"
	"github.com/genz27/Nano-Gaallery/internal/service"
	"github.com/genz27/Nano-Gaallery/internal/storage"
	"github.com/genz27/Nano-Gaallery/internal/tokenizer"
	"github.com/genz27/Nano-Gaallery/internal/transport/http/handler"
	"github.com/genz27/Nano-Gaallery/internal/transport/http/middleware"
)

func main() {
	// Best-effort .env loading; real config comes from Load below
	_ = godotenv.Load()

	if err := config.EnsureConfigFile(); err != nil {
		log.Fatalf("failed to create config file: %v", err)
	}
	cfg := config.Load()

	if cfg.GeminiAPIKey == "" {
		log.Fatal("GEMINI_API_KEY is required (environment, .env, or config.toml)")
	}

	logger := setupLogger()

	if err := config.EnsureDataDir(); err != nil {
		log.Fatalf("failed to create data directory: %v", err)
	}

	store, err := storage.NewSQLiteStorage(config.DBPath())
	if err != nil {
		log.Fatalf("failed to open storage: %v", err)
	}
	defer store.Close()

	client := gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiBaseURL)
	gen := service.NewGenerator(client, store, tokenizer.New(), logger)

	// The gate compares bearer codes against an argon2 hash of the secret;
	// hash once at startup
	secretHash := ""
	if cfg.AccessSecret != "" {
		secretHash, err = storage.HashPassword(cfg.AccessSecret, nil)
		if err != nil {
			log.Fatalf("failed to hash access secret: %v", err)
		}
	}

	gateCache, err := middleware.NewGateCache()
	if err != nil {
		log.Fatalf("failed to create gate cache: %v", err)
	}

	repo := handler.NewRepo(gen, store, cfg.AccessSecret != "")
	router := app.NewRouter(repo, &app.RouterOptions{
		EnableWebUI:      cfg.EnableWebUI,
		Logger:           logger,
		AccessSecretHash: secretHash,
		GateCache:        gateCache,
	})

	printStartupBanner(cfg)

	srv := app.NewServer(cfg, router)
	if err := srv.Start(); err != nil {
		log.Fatal(err)
	}
}
