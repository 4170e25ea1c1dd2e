package handlers

import (
	"net/http"
	"runtime"
	"time"

	"photo-gallery/internal/startup"
)

// HealthResponse is the JSON body returned by the health endpoints.
type HealthResponse struct {
	Status       string `json:"status"`
	Version      string `json:"version"`
	Uptime       string `json:"uptime"`
	GoVersion    string `json:"goVersion"`
	NumCPU       int    `json:"numCpu"`
	NumGoroutine int    `json:"numGoroutine"`
	Thumbnails   bool   `json:"thumbnails"`
}

// HealthCheck reports overall process health.
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:       "healthy",
		Version:      startup.Version,
		Uptime:       time.Since(h.startTime).Round(time.Second).String(),
		GoVersion:    runtime.Version(),
		NumCPU:       runtime.NumCPU(),
		NumGoroutine: runtime.NumGoroutine(),
		Thumbnails:   h.thumbs.IsEnabled(),
	})
}

// LivenessCheck is a minimal probe endpoint; it answers as long as the
// process can serve requests at all.
func (h *Handlers) LivenessCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "alive"})
}
