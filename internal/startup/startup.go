package startup

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"photo-gallery/internal/logging"

	"github.com/joho/godotenv"
)

// Build-time variables (injected via -ldflags)
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
	GoVersion = runtime.Version()
)

// BuildInfo contains version and build information
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

// GetBuildInfo returns the current build information
func GetBuildInfo() BuildInfo {
	return BuildInfo{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: GoVersion,
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// SiteConfigFile is the optional site configuration file inside the data
// directory, in KEY=value format with SITE_TITLE and FOOTER_SNIPPET keys.
const SiteConfigFile = "site.conf"

const defaultSiteTitle = "Photo Gallery"

// Config holds all application configuration. It is established once at
// startup and treated as immutable afterwards; components receive the
// paths they need explicitly rather than reading ambient state.
type Config struct {
	DataDir        string
	PhotosDir      string
	CacheDir       string
	Port           string
	MetricsPort    string
	MetricsEnabled bool
	LogStaticFiles bool

	// Site presentation, from site.conf
	SiteTitle     string
	FooterSnippet *string

	// Thumbnails are disabled when the cache directory is not writable.
	ThumbnailsEnabled bool
}

// LoadConfig loads and validates configuration from environment variables
// and the optional site config file.
func LoadConfig() (*Config, error) {
	printBanner()
	logSystemInfo()

	logging.Info("------------------------------------------------------------")
	logging.Info("CONFIGURATION")
	logging.Info("------------------------------------------------------------")

	dataDir := getEnv("DATA_DIR", "/data")
	cacheDir := getEnv("CACHE_DIR", "/cache")
	port := getEnv("PORT", "8080")
	metricsPort := getEnv("METRICS_PORT", "9090")
	metricsEnabled := getEnvBool("METRICS_ENABLED", true)
	logStaticFiles := getEnvBool("LOG_STATIC_FILES", false)

	logging.Info("  DATA_DIR:            %s", dataDir)
	logging.Info("  CACHE_DIR:           %s", cacheDir)
	logging.Info("  PORT:                %s", port)
	logging.Info("  METRICS_PORT:        %s", metricsPort)
	logging.Info("  METRICS_ENABLED:     %v", metricsEnabled)
	logging.Info("  LOG_STATIC_FILES:    %v", logStaticFiles)
	logging.Info("  LOG_LEVEL:           %s", logging.GetLevel())

	logging.Info("")
	logging.Info("------------------------------------------------------------")
	logging.Info("DIRECTORY SETUP")
	logging.Info("------------------------------------------------------------")

	dataDir, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory path: %w", err)
	}
	logging.Info("  Data directory (absolute):  %s", dataDir)

	cacheDir, err = filepath.Abs(cacheDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve cache directory path: %w", err)
	}
	logging.Info("  Cache directory (absolute): %s", cacheDir)

	config := &Config{
		DataDir:        dataDir,
		PhotosDir:      filepath.Join(dataDir, "photos"),
		CacheDir:       cacheDir,
		Port:           port,
		MetricsPort:    metricsPort,
		MetricsEnabled: metricsEnabled,
		LogStaticFiles: logStaticFiles,
	}

	if err := ensureDirectory(config.PhotosDir, "photos"); err != nil {
		logging.Warn("  Photos directory issue: %v", err)
	}

	config.ThumbnailsEnabled = setupCacheDir(cacheDir)

	loadSiteConfig(config)

	logging.Info("")
	logging.Info("  Feature availability:")
	logging.Info("    Thumbnails: %s", enabledString(config.ThumbnailsEnabled))
	logging.Info("    Metrics:    %s", enabledString(config.MetricsEnabled))

	return config, nil
}

// loadSiteConfig applies the optional site.conf from the data directory.
// A missing or unparsable file leaves the defaults in place.
func loadSiteConfig(config *Config) {
	config.SiteTitle = defaultSiteTitle

	path := filepath.Join(config.DataDir, SiteConfigFile)
	values, err := godotenv.Read(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Warn("  Ignoring unparsable %s: %v", path, err)
		}
		return
	}

	if title, ok := values["SITE_TITLE"]; ok && title != "" {
		config.SiteTitle = title
	}
	if snippet, ok := values["FOOTER_SNIPPET"]; ok {
		config.FooterSnippet = &snippet
	}

	logging.Info("  Site title: %q", config.SiteTitle)
}

// setupCacheDir prepares the thumbnail cache directory, returning false
// when it cannot be created or written.
func setupCacheDir(path string) bool {
	logging.Debug("  Setting up cache directory: %s", path)

	if err := os.MkdirAll(path, 0o755); err != nil {
		logging.Warn("    Failed to create cache directory: %v", err)
		logging.Warn("    Thumbnails will be disabled")
		return false
	}

	testFile := filepath.Join(path, ".write-test")
	if err := os.WriteFile(testFile, []byte("test"), 0o644); err != nil {
		logging.Warn("    Cache directory is not writable: %v", err)
		logging.Warn("    Thumbnails will be disabled")
		return false
	}
	if err := os.Remove(testFile); err != nil {
		logging.Warn("    failed to remove test file %s: %v", testFile, err)
		// Write access was confirmed either way
	}

	logging.Debug("    [OK] Cache directory ready")
	return true
}

func enabledString(enabled bool) string {
	if enabled {
		return "ENABLED"
	}
	return "DISABLED"
}

// LogServerStarted logs successful server start with endpoint information
func LogServerStarted(config *Config, startupDuration time.Duration) {
	logging.Info("")
	logging.Info("------------------------------------------------------------")
	logging.Info("SERVER STARTED")
	logging.Info("------------------------------------------------------------")
	logging.Info("  Startup time:  %v", startupDuration)
	logging.Info("")
	logging.Info("  Endpoints:")
	logging.Info("    Gallery:     http://localhost:%s", config.Port)
	if config.MetricsEnabled {
		logging.Info("    Metrics:     http://localhost:%s/metrics", config.MetricsPort)
	} else {
		logging.Info("    Metrics:     DISABLED")
	}
	logging.Info("")
	logging.Info("  Press Ctrl+C to stop the server")
	logging.Info("------------------------------------------------------------")
	logging.Info("")
}

// LogShutdownInitiated logs shutdown start
func LogShutdownInitiated(signal string) {
	logging.Info("")
	logging.Info("------------------------------------------------------------")
	logging.Info("SHUTDOWN INITIATED (received %s)", signal)
	logging.Info("------------------------------------------------------------")
}

// LogShutdownComplete logs shutdown completion
func LogShutdownComplete() {
	logging.Info("  [OK] Shutdown complete")
}

// LogFatal logs a fatal error and exits
func LogFatal(format string, args ...interface{}) {
	logging.Fatal(format, args...)
}

// Helper functions

func printBanner() {
	logging.Info("------------------------------------------------------------")
	logging.Info("  photo-gallery")
	logging.Info("  Version:    %s", Version)
	logging.Info("  Commit:     %s", Commit)
	logging.Info("  Build Time: %s", BuildTime)
	logging.Info("  Started:    %s", time.Now().Format(time.RFC1123))
	logging.Info("")
}

func logSystemInfo() {
	logging.Info("------------------------------------------------------------")
	logging.Info("SYSTEM INFORMATION")
	logging.Info("------------------------------------------------------------")
	logging.Info("  Go version:      %s", runtime.Version())
	logging.Info("  OS/Arch:         %s/%s", runtime.GOOS, runtime.GOARCH)
	logging.Info("  CPUs available:  %d", runtime.NumCPU())
	logging.Info("  GOMAXPROCS:      %d", runtime.GOMAXPROCS(0))
	logging.Info("")
}

func ensureDirectory(path, name string) error {
	logging.Debug("  Checking %s directory: %s", name, path)

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		logging.Debug("    Directory does not exist, creating...")
		if err := os.MkdirAll(path, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
		logging.Debug("    [OK] Created directory: %s", path)
		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to stat directory: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("path exists but is not a directory")
	}

	logging.Debug("    [OK] Directory exists")
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		logging.Warn("Invalid boolean value for %s: %q, using default: %v", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}
