// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// legacyConfigPath is the path to the configuration file used in previous versions.
	legacyConfigPath = "config.json"
	// defaultRequestTimeout is the default timeout for registry HTTP requests.
	defaultRequestTimeout = 30 * time.Second
	// defaultNPMBaseURL is the npm registry endpoint used when the config omits it.
	defaultNPMBaseURL = "https://registry.npmjs.org"
	// defaultPyPIBaseURL is the PyPI JSON API endpoint used when the config omits it.
	defaultPyPIBaseURL = "https://pypi.org/pypi"
)

// Config represents the top-level application configuration.
type Config struct {
	NPMRegistryURL  string `json:"npmRegistryUrl,omitempty"`
	PyPIRegistryURL string `json:"pypiRegistryUrl,omitempty"`
	TimeoutSeconds  int    `json:"timeout,omitempty"`
	LogFile         string `json:"logFile,omitempty"`
	Debug           bool   `json:"debug"`
	ConfigPath      string `json:"-"`
}

// NPMBaseURL returns the npm registry base URL, falling back to the public
// registry if not specified. A trailing slash is trimmed so callers can join
// path segments uniformly.
func (c Config) NPMBaseURL() string {
	if u := strings.TrimSpace(c.NPMRegistryURL); u != "" {
		return strings.TrimRight(u, "/")
	}
	return defaultNPMBaseURL
}

// PyPIBaseURL returns the PyPI JSON API base URL, falling back to the public
// index if not specified.
func (c Config) PyPIBaseURL() string {
	if u := strings.TrimSpace(c.PyPIRegistryURL); u != "" {
		return strings.TrimRight(u, "/")
	}
	return defaultPyPIBaseURL
}

// RequestTimeout returns the timeout duration for registry HTTP requests,
// falling back to the default if not specified.
func (c Config) RequestTimeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultRequestTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return "pkgdocs.log"
}

// Load reads the application configuration from the specified path, with
// fallback to a legacy path. A missing file is not an error when the default
// path is in play: the zero Config carries working defaults.
func Load(path string) (Config, error) {
	requested := path != "" && path != DefaultConfigPath
	if path == "" {
		path = DefaultConfigPath
	}

	config, err := loadFromPath(path)
	if err == nil {
		config.ConfigPath = path
		return config, nil
	}

	if os.IsNotExist(err) {
		if !requested {
			config, legacyErr := loadFromPath(legacyConfigPath)
			if legacyErr == nil {
				config.ConfigPath = legacyConfigPath
				return config, nil
			}
			if os.IsNotExist(legacyErr) {
				return Config{}, nil
			}
			return Config{}, fmt.Errorf("could not read config file %q: %w", legacyConfigPath, legacyErr)
		}
		return Config{}, fmt.Errorf("no configuration file found at %q", path)
	}

	return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
}

// loadFromPath is a helper function that loads the configuration from a specific file path.
func loadFromPath(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var config Config
	if err := json.NewDecoder(file).Decode(&config); err != nil {
		return Config{}, err
	}
	if config.TimeoutSeconds <= 0 {
		config.TimeoutSeconds = int(defaultRequestTimeout.Seconds())
	}

	return config, nil
}
