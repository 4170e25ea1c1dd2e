package startup

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetEnv(t *testing.T) {
	t.Run("returns value when set", func(t *testing.T) {
		t.Setenv("TEST_STARTUP_VAR", "custom")
		if got := getEnv("TEST_STARTUP_VAR", "default"); got != "custom" {
			t.Errorf("getEnv() = %q, want %q", got, "custom")
		}
	})

	t.Run("returns default when unset", func(t *testing.T) {
		if got := getEnv("TEST_STARTUP_UNSET", "default"); got != "default" {
			t.Errorf("getEnv() = %q, want %q", got, "default")
		}
	})

	t.Run("returns default when empty", func(t *testing.T) {
		t.Setenv("TEST_STARTUP_EMPTY", "")
		if got := getEnv("TEST_STARTUP_EMPTY", "default"); got != "default" {
			t.Errorf("getEnv() = %q, want %q", got, "default")
		}
	})
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		name         string
		value        string
		defaultValue bool
		want         bool
	}{
		{"true", "true", false, true},
		{"false", "false", true, false},
		{"1", "1", false, true},
		{"0", "0", true, false},
		{"invalid uses default", "yes please", false, false},
		{"empty uses default", "", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv("TEST_STARTUP_BOOL", tt.value)
			} else {
				os.Unsetenv("TEST_STARTUP_BOOL")
			}
			if got := getEnvBool("TEST_STARTUP_BOOL", tt.defaultValue); got != tt.want {
				t.Errorf("getEnvBool(%q, %v) = %v, want %v", tt.value, tt.defaultValue, got, tt.want)
			}
		})
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	dataDir := t.TempDir()
	cacheDir := t.TempDir()
	t.Setenv("DATA_DIR", dataDir)
	t.Setenv("CACHE_DIR", cacheDir)

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if config.Port != "8080" {
		t.Errorf("Port = %q, want 8080", config.Port)
	}
	if config.MetricsPort != "9090" {
		t.Errorf("MetricsPort = %q, want 9090", config.MetricsPort)
	}
	if !config.MetricsEnabled {
		t.Error("MetricsEnabled = false, want true by default")
	}
	if config.LogStaticFiles {
		t.Error("LogStaticFiles = true, want false by default")
	}
	if config.PhotosDir != filepath.Join(dataDir, "photos") {
		t.Errorf("PhotosDir = %q, want %q", config.PhotosDir, filepath.Join(dataDir, "photos"))
	}
	if !config.ThumbnailsEnabled {
		t.Error("ThumbnailsEnabled = false with a writable cache dir")
	}
	if config.SiteTitle != defaultSiteTitle {
		t.Errorf("SiteTitle = %q, want %q", config.SiteTitle, defaultSiteTitle)
	}
	if config.FooterSnippet != nil {
		t.Errorf("FooterSnippet = %q, want nil", *config.FooterSnippet)
	}

	// The photos directory is created on demand
	if _, err := os.Stat(config.PhotosDir); err != nil {
		t.Errorf("photos directory not created: %v", err)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("DATA_DIR", t.TempDir())
	t.Setenv("CACHE_DIR", t.TempDir())
	t.Setenv("PORT", "3000")
	t.Setenv("METRICS_PORT", "3001")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("LOG_STATIC_FILES", "true")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if config.Port != "3000" {
		t.Errorf("Port = %q, want 3000", config.Port)
	}
	if config.MetricsPort != "3001" {
		t.Errorf("MetricsPort = %q, want 3001", config.MetricsPort)
	}
	if config.MetricsEnabled {
		t.Error("MetricsEnabled = true, want false")
	}
	if !config.LogStaticFiles {
		t.Error("LogStaticFiles = false, want true")
	}
}

func TestLoadConfigSiteConfig(t *testing.T) {
	dataDir := t.TempDir()
	t.Setenv("DATA_DIR", dataDir)
	t.Setenv("CACHE_DIR", t.TempDir())

	siteConf := "SITE_TITLE=My Photos\nFOOTER_SNIPPET=All rights reserved\n"
	if err := os.WriteFile(filepath.Join(dataDir, SiteConfigFile), []byte(siteConf), 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if config.SiteTitle != "My Photos" {
		t.Errorf("SiteTitle = %q, want %q", config.SiteTitle, "My Photos")
	}
	if config.FooterSnippet == nil || *config.FooterSnippet != "All rights reserved" {
		t.Errorf("FooterSnippet = %v, want %q", config.FooterSnippet, "All rights reserved")
	}
}

func TestLoadConfigEmptySiteTitleIgnored(t *testing.T) {
	dataDir := t.TempDir()
	t.Setenv("DATA_DIR", dataDir)
	t.Setenv("CACHE_DIR", t.TempDir())

	if err := os.WriteFile(filepath.Join(dataDir, SiteConfigFile), []byte("SITE_TITLE=\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if config.SiteTitle != defaultSiteTitle {
		t.Errorf("SiteTitle = %q, want default %q", config.SiteTitle, defaultSiteTitle)
	}
}

func TestGetBuildInfo(t *testing.T) {
	info := GetBuildInfo()

	if info.Version == "" {
		t.Error("Version is empty")
	}
	if info.GoVersion == "" {
		t.Error("GoVersion is empty")
	}
	if info.OS == "" || info.Arch == "" {
		t.Error("OS/Arch not populated")
	}
}
