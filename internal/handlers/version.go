package handlers

import (
	"net/http"

	"photo-gallery/internal/startup"
)

// GetVersion returns build information as JSON.
func (h *Handlers) GetVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, startup.GetBuildInfo())
}
