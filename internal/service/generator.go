// Package service coordinates generation calls between the HTTP layer, the
// remote API client and the local image store.
package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/genz27/Nano-Gaallery/internal/domain"
	"github.com/genz27/Nano-Gaallery/internal/gemini"
	"github.com/genz27/Nano-Gaallery/internal/storage"
	"github.com/genz27/Nano-Gaallery/internal/tokenizer"
)

// RemoteClient is the remote image-generation API, abstracted so tests can
// substitute a stub.
type RemoteClient interface {
	GenerateImages(ctx context.Context, req *domain.GenerationRequest) ([]gemini.Image, error)
}

// Generator orchestrates a single generation call: validate, invoke the
// remote API, persist the results, report back. Calls are independent of
// each other; nothing here requires mutual exclusion.
type Generator struct {
	client RemoteClient
	store  storage.Storage
	tok    tokenizer.Tokenizer
	logger *slog.Logger
}

// NewGenerator creates a Generator with its injected dependencies.
func NewGenerator(client RemoteClient, store storage.Storage, tok tokenizer.Tokenizer, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		client: client,
		store:  store,
		tok:    tok,
		logger: logger,
	}
}

// Generate runs one generation call end to end. On success every produced
// image has already been appended to the store before it is returned. On
// failure the store is left unchanged.
func (g *Generator) Generate(ctx context.Context, req *domain.GenerationRequest) ([]*domain.GeneratedImage, error) {
	requestID := uuid.New().String()
	startTime := time.Now()

	if req.IsEmpty() {
		return nil, domain.ErrEmptyRequest
	}

	results, err := g.client.GenerateImages(ctx, req)
	if err != nil {
		go g.logRequest(requestID, req, 0, err, startTime)
		return nil, err
	}

	images := make([]*domain.GeneratedImage, 0, len(results))
	for _, res := range results {
		img := &domain.GeneratedImage{
			ID:        uuid.New().String(),
			URL:       res.DataURL(),
			Prompt:    req.Prompt,
			Model:     req.Model.Label(),
			Timestamp: time.Now().UnixMilli(),
		}
		if err := g.store.AppendImage(img); err != nil {
			storeErr := &domain.StoreError{Op: "append", Err: err}
			go g.logRequest(requestID, req, len(images), storeErr, startTime)
			return nil, storeErr
		}
		images = append(images, img)
	}

	g.logger.Info("generation complete",
		"request_id", requestID,
		"model", req.Model.Label(),
		"images", len(images),
		"duration_ms", time.Since(startTime).Milliseconds(),
	)

	go g.logRequest(requestID, req, len(images), nil, startTime)
	return images, nil
}

// logRequest writes a request log row. Logging failures are reported but
// never fail the generation call.
func (g *Generator) logRequest(requestID string, req *domain.GenerationRequest, imageCount int, callErr error, startTime time.Time) {
	if g.store == nil {
		return
	}

	promptTokens := 0
	if g.tok != nil && req.Prompt != "" {
		if n, err := g.tok.CountPrompt(req.Prompt); err == nil {
			promptTokens = n
		}
	}

	log := &storage.RequestLog{
		RequestID:    requestID,
		Model:        req.Model.Label(),
		PromptTokens: promptTokens,
		ImageCount:   imageCount,
		StatusCode:   statusFor(callErr),
		DurationMs:   time.Since(startTime).Milliseconds(),
	}
	if callErr != nil {
		log.ErrorMessage = callErr.Error()
	}

	if err := g.store.LogRequest(log); err != nil {
		g.logger.Warn("failed to write request log", "request_id", requestID, "error", err)
	}
}

// statusFor maps a call outcome to the status code recorded in the log.
func statusFor(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var remote *domain.RemoteError
	if errors.As(err, &remote) && remote.StatusCode != 0 {
		return remote.StatusCode
	}
	return http.StatusInternalServerError
}
