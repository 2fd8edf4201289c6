// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Implements automatic discovery of configuration files in
//              standard locations, checking the working directory, the
//              user config directory, and system-wide paths in order.
// Author: coxioxi
// Version: v0.1.0
// Created: 2025-08-11
// Modified: 2025-08-11
//
// Change History:
// - 2025-08-11 v0.1.0: Initial implementation with standard path discovery

package config

import (
	"os"
	"path/filepath"
	"strings"

	icelerror "github.com/coxioxi/icel/foundation/core/error"
)

// DiscoveryOptions defines options for configuration file discovery
type DiscoveryOptions struct {
	// Paths lists directories to search, in priority order
	Paths []string

	// Filenames lists base names to look for (without extension)
	Filenames []string

	// Extensions lists file extensions to try, in priority order
	Extensions []string

	// EnvPrefix is passed through to the loaded configuration
	EnvPrefix string

	// Required reports an error when no file is found; otherwise
	// discovery falls back to an empty configuration
	Required bool
}

// DefaultDiscoveryOptions returns the standard search locations: the
// working directory, ~/.config/icel, and /etc/icel.
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}

	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "icel"))
	}
	paths = append(paths, "/etc/icel")

	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"icel"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  "ICEL",
		Required:   false,
	}
}

// Discover searches the configured locations and loads the first
// configuration file found. When no file exists and Required is false,
// it returns an empty configuration so environment overrides and
// defaults still apply.
func Discover(options DiscoveryOptions) (*Config, error) {
	if filePath, found := FindConfigFile(options); found {
		return LoadWithOptions(filePath, LoadOptions{
			Format:    FormatAuto,
			EnvPrefix: options.EnvPrefix,
		})
	}

	if options.Required {
		return nil, icelerror.Newf("no config file found in search paths: %s",
			strings.Join(options.Paths, ", ")).
			WithCode(icelerror.CodeMissingConfig).
			WithOperation("config.Discover").
			WithDetail("filenames", strings.Join(options.Filenames, ", ")).
			WithDetail("extensions", strings.Join(options.Extensions, ", "))
	}

	return Empty(options.EnvPrefix), nil
}

// FindConfigFile locates the first existing configuration file in the
// search locations without loading it.
func FindConfigFile(options DiscoveryOptions) (string, bool) {
	for _, dir := range options.Paths {
		for _, name := range options.Filenames {
			for _, ext := range options.Extensions {
				candidate := filepath.Join(dir, name+ext)
				if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
					return candidate, true
				}
			}
		}
	}

	return "", false
}
