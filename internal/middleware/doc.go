// Package middleware provides HTTP middleware for the photo gallery:
// request logging in W3C Extended Log Format, Prometheus request metrics,
// and gzip compression for text responses.
package middleware
