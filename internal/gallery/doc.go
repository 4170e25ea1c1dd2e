// Package gallery implements the photo library model: album discovery from
// a directory tree, per-album override metadata, derived timespan captions,
// and path-segment validation for externally supplied identifiers.
//
// All scanning is synchronous and read-only. Albums and photos are
// reconstructed fresh on every call and never cached in memory, so the
// library can be served concurrently without coordination.
package gallery
