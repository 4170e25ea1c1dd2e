// Package metrics provides Prometheus instrumentation for the photo
// gallery. All metrics are prefixed with "photo_gallery_" and registered
// with the default registry via promauto; expose them by mounting
// promhttp.Handler() on the metrics listener.
//
// Example hit-rate query:
//
//	rate(photo_gallery_thumbnail_cache_hits_total[5m]) /
//	(rate(photo_gallery_thumbnail_cache_hits_total[5m]) +
//	 rate(photo_gallery_thumbnail_cache_misses_total[5m]))
package metrics
