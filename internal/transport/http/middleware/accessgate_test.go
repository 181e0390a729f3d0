package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/genz27/Nano-Gaallery/internal/storage"
)

func gateHandler(t *testing.T, secret string) http.Handler {
	t.Helper()

	hash := ""
	if secret != "" {
		var err error
		hash, err = storage.HashPassword(secret, nil)
		if err != nil {
			t.Fatalf("failed to hash secret: %v", err)
		}
	}

	cache, err := NewGateCache()
	if err != nil {
		t.Fatalf("failed to create gate cache: %v", err)
	}
	t.Cleanup(cache.Close)

	return AccessGate(hash, cache)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestAccessGate(t *testing.T) {
	tests := []struct {
		name       string
		secret     string
		authHeader string
		wantStatus int
	}{
		{
			name:       "no secret configured allows all",
			secret:     "",
			authHeader: "",
			wantStatus: http.StatusOK,
		},
		{
			name:       "correct code passes",
			secret:     "banana",
			authHeader: "Bearer banana",
			wantStatus: http.StatusOK,
		},
		{
			name:       "wrong code rejects",
			secret:     "banana",
			authHeader: "Bearer mango",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing auth header rejects",
			secret:     "banana",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed auth header rejects",
			secret:     "banana",
			authHeader: "Basic banana",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := gateHandler(t, tt.secret)

			req := httptest.NewRequest(http.MethodPost, "/api/generate", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
		})
	}
}

func TestAccessGateUnauthorizedBody(t *testing.T) {
	handler := gateHandler(t, "banana")

	req := httptest.NewRequest(http.MethodPost, "/api/generate", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	if body["code"] != "UNAUTHORIZED" {
		t.Errorf("expected code UNAUTHORIZED, got %q", body["code"])
	}
	if body["error"] == "" {
		t.Error("expected error message in body")
	}
}

func TestAccessGateCachesVerifiedCode(t *testing.T) {
	hash, err := storage.HashPassword("banana", nil)
	if err != nil {
		t.Fatalf("failed to hash secret: %v", err)
	}
	cache, err := NewGateCache()
	if err != nil {
		t.Fatalf("failed to create gate cache: %v", err)
	}
	defer cache.Close()

	handler := AccessGate(hash, cache)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/generate", nil)
	req.Header.Set("Authorization", "Bearer banana")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	// After the first verification the code should be admitted from cache.
	cache.Wait()
	if ok, found := cache.Get("banana"); !found || !ok {
		t.Error("expected verified code in cache")
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d on cached request, got %d", http.StatusOK, rec.Code)
	}
}

func TestAccessGateNilCache(t *testing.T) {
	hash, err := storage.HashPassword("banana", nil)
	if err != nil {
		t.Fatalf("failed to hash secret: %v", err)
	}

	handler := AccessGate(hash, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/generate", nil)
	req.Header.Set("Authorization", "Bearer banana")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d without cache, got %d", http.StatusOK, rec.Code)
	}
}
