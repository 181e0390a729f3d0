package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/genz27/Nano-Gaallery/internal/domain"
)

// generatePath is the REST path template for a generateContent call.
const generatePath = "/v1beta/models/%s:generateContent"

// Client talks to the Gemini generateContent REST API.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL (proxies, tests).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a new Gemini API client.
func NewClient(apiKey, baseURL string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			// Image generations routinely take minutes
			Timeout: 300 * time.Second,
		},
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GenerateImages performs a single generation call and returns the inline
// images from the response. One attempt, no retry; failures surface as
// *domain.RemoteError.
func (c *Client) GenerateImages(ctx context.Context, req *domain.GenerationRequest) ([]Image, error) {
	payload := BuildRequest(req)

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	url := c.baseURL + fmt.Sprintf(generatePath, req.Model.APIName())
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &domain.RemoteError{Message: err.Error()}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.RemoteError{StatusCode: resp.StatusCode, Message: "failed to read response body"}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, parseErrorBody(resp.StatusCode, respBody)
	}

	var parsed GenerateContentResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, &domain.RemoteError{StatusCode: resp.StatusCode, Message: "invalid response body"}
	}

	return ParseResponse(&parsed)
}

// parseErrorBody turns a non-success response into a RemoteError, preferring
// the structured error message when the body parses as JSON.
func parseErrorBody(status int, body []byte) *domain.RemoteError {
	var apiErr apiErrorBody
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
		return &domain.RemoteError{StatusCode: status, Message: apiErr.Error.Message}
	}
	return &domain.RemoteError{StatusCode: status, Message: strings.TrimSpace(string(body))}
}
