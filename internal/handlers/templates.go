package handlers

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/http"

	"photo-gallery/internal/exif"
	"photo-gallery/internal/gallery"
	"photo-gallery/internal/logging"
)

//go:embed assets/index.tmpl
var indexTmpl string

//go:embed assets/album.tmpl
var albumTmpl string

//go:embed assets/photo.tmpl
var photoTmpl string

//go:embed assets/style.css
var styleCSS []byte

var (
	indexTemplate = template.Must(template.New("index").Parse(indexTmpl))
	albumTemplate = template.Must(template.New("album").Parse(albumTmpl))
	photoTemplate = template.Must(template.New("photo").Parse(photoTmpl))
)

// Site holds the fields every page template expects. It is embedded in
// each page's data struct so templates can reference .SiteTitle directly.
type Site struct {
	SiteTitle     string
	FooterSnippet *string
}

type indexData struct {
	Site
	Albums []gallery.Album
}

type albumData struct {
	Site
	Album  gallery.Album
	Photos []gallery.Photo
}

type photoData struct {
	Site
	Album   gallery.Album
	Photo   gallery.Photo
	Prev    *gallery.Photo
	Next    *gallery.Photo
	Summary string
	Exif    exif.Metadata
}

func (h *Handlers) site() Site {
	return Site{SiteTitle: h.siteTitle, FooterSnippet: h.footerSnippet}
}

// renderPage executes a template into a buffer first so a render failure
// can still produce a clean 500 instead of a truncated page.
func renderPage(w http.ResponseWriter, tmpl *template.Template, data interface{}) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		logging.Error("failed to render %s template: %v", tmpl.Name(), err)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		logging.Debug("failed to write %s response: %v", tmpl.Name(), err)
	}
}

// StyleSheet serves the embedded stylesheet.
func (h *Handlers) StyleSheet(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	if _, err := w.Write(styleCSS); err != nil {
		logging.Debug("failed to write stylesheet: %v", err)
	}
}
