package middleware

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/dgraph-io/ristretto/v2"

	"github.com/genz27/Nano-Gaallery/internal/domain"
	"github.com/genz27/Nano-Gaallery/internal/storage"
)

// gateCacheTTL bounds how long a verified access code skips re-hashing.
const gateCacheTTL = 10 * time.Minute

// NewGateCache creates the ristretto cache used to remember verified access
// codes, so the argon2 verification runs once per code rather than once per
// request.
func NewGateCache() (*ristretto.Cache[string, bool], error) {
	return ristretto.NewCache(&ristretto.Config[string, bool]{
		NumCounters: 1e4,
		MaxCost:     1 << 20,
		BufferItems: 64,
	})
}

// AccessGate protects generation routes behind a shared access code.
// secretHash is the Argon2id hash of the configured secret; an empty hash
// disables the gate entirely (no-op passthrough). Absent or mismatched
// credentials yield 401 with code "UNAUTHORIZED" so clients know to discard
// any cached code and re-prompt.
func AccessGate(secretHash string, cache *ristretto.Cache[string, bool]) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secretHash == "" {
				next.ServeHTTP(w, r)
				return
			}

			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeUnauthorized(w, "access code required")
				return
			}
			code := strings.TrimPrefix(auth, "Bearer ")

			if cache != nil {
				if ok, found := cache.Get(code); found && ok {
					next.ServeHTTP(w, r)
					return
				}
			}

			valid, err := storage.VerifyPassword(code, secretHash)
			if err != nil || !valid {
				writeUnauthorized(w, domain.ErrUnauthorized.Error())
				return
			}

			if cache != nil {
				cache.SetWithTTL(code, true, 1, gateCacheTTL)
			}

			next.ServeHTTP(w, r)
		})
	}
}

// writeUnauthorized writes the 401 response body the web client expects.
func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error": message,
		"code":  "UNAUTHORIZED",
	})
}
