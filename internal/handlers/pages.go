package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"photo-gallery/internal/exif"
	"photo-gallery/internal/gallery"
	"photo-gallery/internal/metrics"

	"github.com/gorilla/mux"
)

// Index renders the album overview page.
func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	albums := gallery.ScanAlbums(h.photosDir)
	metrics.ScanDuration.WithLabelValues("scan_albums").Observe(time.Since(start).Seconds())
	metrics.ScanItemsReturned.WithLabelValues("scan_albums").Observe(float64(len(albums)))

	renderPage(w, indexTemplate, indexData{
		Site:   h.site(),
		Albums: albums,
	})
}

// AlbumPage renders the photo grid for a single album.
func (h *Handlers) AlbumPage(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	album, photos, ok := h.loadAlbum(slug)
	if !ok {
		http.Error(w, "Album not found", http.StatusNotFound)
		return
	}

	renderPage(w, albumTemplate, albumData{
		Site:   h.site(),
		Album:  album,
		Photos: photos,
	})
}

// PhotoPage renders a single photo with its EXIF caption and prev/next
// links within the album's filename ordering.
func (h *Handlers) PhotoPage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slug := vars["slug"]
	filename := vars["filename"]

	if !gallery.IsSafeSegment(filename) {
		http.Error(w, "Photo not found", http.StatusNotFound)
		return
	}

	album, photos, ok := h.loadAlbum(slug)
	if !ok {
		http.Error(w, "Album not found", http.StatusNotFound)
		return
	}

	index := -1
	for i, photo := range photos {
		if photo.Filename == filename {
			index = i
			break
		}
	}
	if index == -1 {
		http.Error(w, "Photo not found", http.StatusNotFound)
		return
	}

	data := photoData{
		Site:  h.site(),
		Album: album,
		Photo: photos[index],
	}
	if index > 0 {
		data.Prev = &photos[index-1]
	}
	if index < len(photos)-1 {
		data.Next = &photos[index+1]
	}

	meta := exif.Extract(filepath.Join(h.photosDir, slug, filename))
	data.Exif = meta
	data.Summary = meta.Summary()

	renderPage(w, photoTemplate, data)
}

// loadAlbum resolves slug to an album directory and loads its metadata and
// photo list. Unsafe or missing slugs report not found.
func (h *Handlers) loadAlbum(slug string) (gallery.Album, []gallery.Photo, bool) {
	if !gallery.IsSafeSegment(slug) {
		return gallery.Album{}, nil, false
	}

	albumPath := filepath.Join(h.photosDir, slug)
	info, err := os.Stat(albumPath)
	if err != nil || !info.IsDir() {
		return gallery.Album{}, nil, false
	}

	start := time.Now()
	photos := gallery.ListPhotos(albumPath)
	metrics.ScanDuration.WithLabelValues("list_photos").Observe(time.Since(start).Seconds())
	metrics.ScanItemsReturned.WithLabelValues("list_photos").Observe(float64(len(photos)))

	return gallery.LoadAlbum(slug, albumPath, photos), photos, true
}
