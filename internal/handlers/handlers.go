package handlers

import (
	"time"

	"photo-gallery/internal/startup"
	"photo-gallery/internal/thumbs"
)

// Handlers carries the immutable per-process state shared by all HTTP
// handlers: the photo root, the thumbnail cache, and site presentation.
type Handlers struct {
	photosDir     string
	thumbs        *thumbs.Cache
	siteTitle     string
	footerSnippet *string
	startTime     time.Time
}

// New builds the handler set from the loaded configuration.
func New(config *startup.Config) *Handlers {
	return &Handlers{
		photosDir:     config.PhotosDir,
		thumbs:        thumbs.NewCache(config.CacheDir, config.ThumbnailsEnabled),
		siteTitle:     config.SiteTitle,
		footerSnippet: config.FooterSnippet,
		startTime:     time.Now(),
	}
}
