package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"photo-gallery/internal/gallery"
	"photo-gallery/internal/logging"
	"photo-gallery/internal/thumbs"

	"github.com/gorilla/mux"
)

const immutableCacheControl = "public, max-age=31536000, immutable"

// ServePhoto streams an original image file from the photo library.
func (h *Handlers) ServePhoto(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	album := vars["album"]
	filename := vars["filename"]

	if !gallery.IsSafeSegment(album) || !gallery.IsSafeSegment(filename) {
		http.Error(w, "Photo not found", http.StatusNotFound)
		return
	}

	path := filepath.Join(h.photosDir, album, filename)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		http.Error(w, "Photo not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Cache-Control", immutableCacheControl)
	http.ServeFile(w, r, path)
}

// ServeThumbnail serves a resized rendition of an original, generating and
// caching it on first request.
func (h *Handlers) ServeThumbnail(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	album := vars["album"]
	sizeName := vars["size"]
	filename := vars["filename"]

	if !gallery.IsSafeSegment(album) || !gallery.IsSafeSegment(filename) {
		http.Error(w, "Thumbnail not found", http.StatusNotFound)
		return
	}

	size, ok := thumbs.ParseSize(sizeName)
	if !ok {
		http.Error(w, "Unknown thumbnail size", http.StatusBadRequest)
		return
	}

	originalPath := filepath.Join(h.photosDir, album, filename)
	info, err := os.Stat(originalPath)
	if err != nil || info.IsDir() {
		http.Error(w, "Thumbnail not found", http.StatusNotFound)
		return
	}

	if !h.thumbs.IsEnabled() {
		http.Error(w, "Thumbnail cache unavailable", http.StatusServiceUnavailable)
		return
	}

	cachePath, err := h.thumbs.Resolve(originalPath, album, filename, size)
	if err != nil {
		logging.Error("failed to resolve thumbnail for %s/%s: %v", album, filename, err)
		http.Error(w, "Failed to generate thumbnail", http.StatusInternalServerError)
		return
	}

	// Cached webp originals are re-encoded as JPEG under their original
	// name, so the content type comes from the bytes rather than the
	// extension.
	data, err := os.ReadFile(cachePath)
	if err != nil {
		logging.Error("failed to read cached thumbnail %s: %v", cachePath, err)
		http.Error(w, "Failed to read thumbnail", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", http.DetectContentType(data))
	w.Header().Set("Cache-Control", immutableCacheControl)
	if _, err := w.Write(data); err != nil {
		logging.Debug("failed to write thumbnail response: %v", err)
	}
}
