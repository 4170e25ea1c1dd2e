package thumbs

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"photo-gallery/internal/logging"
	"photo-gallery/internal/metrics"

	"github.com/disintegration/imaging"
	"github.com/natefinch/atomic"

	_ "golang.org/x/image/webp" // WebP decode support
)

// Size names a thumbnail size variant. The set of variants is closed;
// anything else from a request is a bad-request condition and must be
// rejected with ParseSize before reaching the cache.
type Size string

const (
	// SizeSmall bounds both dimensions to 400 pixels.
	SizeSmall Size = "small"
	// SizeMedium bounds both dimensions to 1200 pixels.
	SizeMedium Size = "medium"
)

// ParseSize maps a requested size name to its variant.
func ParseSize(name string) (Size, bool) {
	switch Size(name) {
	case SizeSmall, SizeMedium:
		return Size(name), true
	}
	return "", false
}

// MaxDimension returns the pixel bound for the variant's longer side.
func (s Size) MaxDimension() int {
	if s == SizeSmall {
		return 400
	}
	return 1200
}

const jpegQuality = 85

// Cache is a filesystem-backed thumbnail cache rooted at a single
// directory. It holds no in-memory state and is safe for concurrent use:
// concurrent first requests for the same key may each regenerate the
// entry, but the output is deterministic and writes are atomic, so the
// persisted result is correct regardless of write order.
type Cache struct {
	root    string
	enabled bool
}

// NewCache creates a thumbnail cache rooted at root. When disabled (for
// example because the cache directory is not writable) every Resolve call
// fails.
func NewCache(root string, enabled bool) *Cache {
	if enabled {
		logging.Debug("thumbs: cache enabled, root: %s", root)
		if err := os.MkdirAll(root, 0o755); err != nil {
			logging.Warn("thumbs: failed to create cache root: %v", err)
		}
	} else {
		logging.Debug("thumbs: cache disabled")
	}
	return &Cache{root: root, enabled: enabled}
}

// IsEnabled reports whether the cache can serve thumbnails.
func (c *Cache) IsEnabled() bool {
	return c.enabled
}

// Resolve returns the path of the cached thumbnail for the given original,
// generating and persisting it first if needed. The album slug is part of
// the cache key so identically named files in different albums never
// collide. originalPath must refer to an existing regular file; callers
// handle absence as not-found before getting here.
//
// A cached entry is trusted as-is: there is no validation against the
// original's modification time. Generation failures are returned to the
// caller and never cached, so the next request retries.
func (c *Cache) Resolve(originalPath, album, filename string, size Size) (string, error) {
	if !c.enabled {
		return "", fmt.Errorf("thumbnail cache disabled")
	}

	cachePath := filepath.Join(c.root, album, string(size), filename)

	if _, err := os.Stat(cachePath); err == nil {
		logging.Debug("thumbs: cache hit: %s", cachePath)
		metrics.ThumbnailCacheHits.Inc()
		return cachePath, nil
	}
	metrics.ThumbnailCacheMisses.Inc()

	start := time.Now()
	if err := c.generate(originalPath, cachePath, size); err != nil {
		metrics.ThumbnailGenerationsTotal.WithLabelValues(string(size), "error").Inc()
		return "", err
	}
	metrics.ThumbnailGenerationsTotal.WithLabelValues(string(size), "success").Inc()
	metrics.ThumbnailGenerationDuration.WithLabelValues(string(size)).Observe(time.Since(start).Seconds())

	logging.Debug("thumbs: generated %s in %v", cachePath, time.Since(start))
	return cachePath, nil
}

// generate decodes the original, resizes it to fit the variant's bound,
// and persists the encoded result atomically at cachePath.
func (c *Cache) generate(originalPath, cachePath string, size Size) error {
	if err := os.MkdirAll(filepath.Dir(cachePath), 0o755); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}

	img, err := imaging.Open(originalPath, imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("decode %s: %w", originalPath, err)
	}

	bound := size.MaxDimension()
	thumb := imaging.Fit(img, bound, bound, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, encodeFormat(originalPath), imaging.JPEGQuality(jpegQuality)); err != nil {
		return fmt.Errorf("encode %s: %w", cachePath, err)
	}

	// Concurrent misses may both generate; the atomic write means readers
	// never see a partial entry.
	if err := atomic.WriteFile(cachePath, &buf); err != nil {
		return fmt.Errorf("persist %s: %w", cachePath, err)
	}

	return nil
}

// encodeFormat picks the output encoding for an original. JPEG and PNG
// thumbnails keep their format family; WebP decodes fine but has no
// encoder here, so WebP originals are re-encoded as JPEG.
func encodeFormat(originalPath string) imaging.Format {
	switch strings.ToLower(filepath.Ext(originalPath)) {
	case ".png":
		return imaging.PNG
	default:
		return imaging.JPEG
	}
}
