// Package exif extracts camera metadata from image files and normalizes it
// into display-ready strings.
//
// Extraction never fails: a missing file, an unreadable container, or a
// missing tag degrades to absent fields rather than an error, so callers
// can treat metadata as purely optional decoration.
package exif
