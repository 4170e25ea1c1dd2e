// Package thumbs implements the lazy, filesystem-backed thumbnail cache.
//
// Thumbnails are generated on first request and persisted under
// cacheRoot/<album>/<size>/<filename>; subsequent requests are served from
// disk without touching the original. Entries are never invalidated when
// the original changes, which is acceptable for an immutable photo library.
package thumbs
