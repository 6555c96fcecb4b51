package utils

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// HealthStatus is the body served by HealthCheck.
type HealthStatus struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}

// HealthCheck returns a liveness handler reporting the time since started.
func HealthCheck(started time.Time) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(http.StatusOK)

		status := HealthStatus{Status: "ok", Uptime: time.Since(started).Truncate(time.Second).String()}
		if err := json.NewEncoder(w).Encode(status); err != nil {
			slog.Warn("failed to write healthcheck response",
				"component", "healthcheck",
				"method", r.Method,
				"path", r.URL.Path,
				"err", err,
			)
		}
	})
}
