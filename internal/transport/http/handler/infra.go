package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/genz27/Nano-Gaallery/internal/storage"
	"github.com/genz27/Nano-Gaallery/internal/version"
)

// HealthCheck handles GET /api/health. The authRequired flag tells the web
// client whether to prompt for an access code before generating.
func (h *Repo) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"status":         "ok",
		"version":        version.Version,
		"uptime_seconds": int64(time.Since(h.startTime).Seconds()),
		"auth_required":  h.authRequired,
	}, http.StatusOK)
}

// RequestLogs handles GET /api/logs. Returns recent generation calls,
// newest first.
func (h *Repo) RequestLogs(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	logs, err := h.Storage.GetRequestLogs(limit)
	if err != nil {
		writeError(w, "failed to load request logs", http.StatusInternalServerError)
		return
	}

	if logs == nil {
		logs = []*storage.RequestLog{}
	}

	writeJSON(w, map[string]any{"logs": logs}, http.StatusOK)
}
