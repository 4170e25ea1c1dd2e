// Package startup handles process configuration: environment variables,
// the optional site config file, directory setup, and structured startup
// and shutdown logging.
package startup
