// Package handlers implements the HTTP surface of the photo gallery:
// HTML listing pages rendered from the library scan, original image and
// thumbnail responses, and the health and version endpoints.
//
// Every externally supplied path segment is validated with
// gallery.IsSafeSegment before it is joined onto a filesystem root;
// validation failures are reported as 404, never as internal errors.
package handlers
