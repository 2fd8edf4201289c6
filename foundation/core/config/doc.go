// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config provides configuration management for ICEL
//              tools with support for TOML and YAML formats. Features
//              include automatic file discovery, environment variable
//              overrides, validation rules, and type-safe access.
// Author: coxioxi
// Version: v0.1.0
// Created: 2025-08-11
// Modified: 2025-08-11
//
// Change History:
// - 2025-08-11 v0.1.0: Initial implementation with TOML/YAML support

/*
Package config provides configuration management for ICEL applications.

Package: config
Title: Core Configuration Management
Description: Provides configuration management for ICEL tools with support
             for TOML and YAML formats, environment variable overrides,
             file discovery in standard locations, and validation rules.
Author: coxioxi
Version: v0.1.0
Created: 2025-08-11
Modified: 2025-08-11

Change History:
- 2025-08-11 v0.1.0: Initial implementation with TOML/YAML support

Key Features:
  • Multi-format support (TOML, YAML) with automatic detection
  • Environment variable overrides with configurable prefix
  • Automatic discovery in working directory, user config, and system paths
  • Validation rules with type checks, bounds, and defaults
  • Thread-safe concurrent access
  • Structured error codes for missing, unreadable, and malformed files

# Basic Configuration Loading

Load and access configuration values:

	cfg, err := config.Load("icel.toml")
	if err != nil {
		return err
	}

	maxLen := cfg.GetInt("engine.max_expression_length", 4096)
	level := cfg.GetString("logging.level", "info")
	ttl := cfg.GetDuration("engine.cache_ttl", 10*time.Minute)

# Configuration Discovery

Command-line tools rarely know where their configuration lives. Discover
checks the working directory, ~/.config/icel, and /etc/icel for
icel.toml, icel.yaml, or icel.yml and loads the first match:

	cfg, err := config.Discover(config.DefaultDiscoveryOptions())
	if err != nil {
		return err
	}

When no file exists, Discover returns an empty configuration so getter
defaults and environment overrides still apply. Set Required to treat a
missing file as an error instead.

# Environment Variable Overrides

Values from the file are overridden by environment variables following a
consistent naming convention:

	# icel.toml
	[engine]
	cache_size = 1024

	[logging]
	level = "info"

	# Environment overrides (prefix "ICEL")
	export ICEL_ENGINE_CACHE_SIZE="2048"
	export ICEL_LOGGING_LEVEL="debug"

	cfg, _ := config.LoadWithOptions("icel.toml", config.LoadOptions{
		EnvPrefix: "ICEL",
	})

	size := cfg.GetInt("engine.cache_size")   // Returns 2048
	level := cfg.GetString("logging.level")   // Returns "debug"

# Configuration Validation

Validate structure and constraints before using the values:

	rules := config.ValidationRules{
		"engine.max_expression_length": {
			Type: "int",
			Min:  1,
			Max:  1 << 20,
		},
		"engine.cache_ttl": {
			Type:    "duration",
			Default: "10m",
		},
		"logging.level": {
			Type:    "string",
			Default: "info",
		},
	}

	if result := cfg.Validate(rules); !result.Valid {
		return fmt.Errorf("invalid configuration: %s",
			strings.Join(result.Errors, "; "))
	}

Validation applies rule defaults to missing keys and coerces whole-number
floats to integers, so a validated configuration is normalized for the
typed getters.

# Multi-Format Support

The package detects the format from the file extension:

	cfg1, _ := config.Load("icel.toml")
	cfg2, _ := config.Load("icel.yaml")
	cfg3, _ := config.Load("icel.yml")

	// Explicit format for non-standard extensions
	cfg4, _ := config.LoadWithOptions("settings.conf", config.LoadOptions{
		Format: config.FormatTOML,
	})

String content works the same way, which keeps tests free of fixtures:

	cfg, err := config.LoadFromString(`[engine]
	cache_size = 64`, config.FormatTOML)

# Error Handling

Loading failures carry structured error codes:

	cfg, err := config.Load(path)
	if err != nil {
		switch {
		case icelerror.HasCode(err, icelerror.CodeFileNotFound):
			// fall back to defaults
		case icelerror.HasCode(err, icelerror.CodeInvalidConfig):
			// report the syntax error and abort
		default:
			return err
		}
	}

# Thread Safety

All accessors lock internally. Loading produces an independent Config;
Set and Validate take the write lock, the typed getters take read locks.
Environment lookups go straight to the process environment on every call
so test overrides via t.Setenv behave as expected.
*/
package config
