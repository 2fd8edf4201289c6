// File: config.go
// Title: Core Configuration Management Implementation
// Description: Implements the Config type backed by a flat key space.
//              TOML and YAML trees are flattened into dot-notation keys
//              on load, so every lookup is a single map read. Environment
//              variables override file values.
// Author: coxioxi
// Version: v0.1.0
// Created: 2025-08-11
// Modified: 2025-08-11
//
// Change History:
// - 2025-08-11 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	icelerror "github.com/coxioxi/icel/foundation/core/error"
	icelstringx "github.com/coxioxi/icel/foundation/utils/stringx"
)

// Format identifies a configuration file format.
type Format int

const (
	// FormatTOML is the default file format.
	FormatTOML Format = iota

	// FormatYAML covers .yaml and .yml files.
	FormatYAML

	// FormatAuto selects the format from the file extension.
	FormatAuto
)

var formatNames = [...]string{"toml", "yaml", "auto"}

// String returns the lowercase name of the format.
func (f Format) String() string {
	if f < FormatTOML || f > FormatAuto {
		return "unknown"
	}
	return formatNames[f]
}

// Config holds configuration values under flat dot-notation keys, e.g.
// "engine.cache_size". Access is safe for concurrent use. Environment
// variables override stored values; see LoadOptions.EnvPrefix.
type Config struct {
	mu        sync.RWMutex
	values    map[string]interface{}
	filePath  string
	format    Format
	envPrefix string
}

// LoadOptions controls how a configuration file is loaded.
type LoadOptions struct {
	// Format forces a file format; FormatAuto detects it from the
	// extension.
	Format Format

	// EnvPrefix enables environment overrides: with prefix "ICEL" the
	// key "engine.cache_size" reads ICEL_ENGINE_CACHE_SIZE.
	EnvPrefix string

	// Defaults fills keys the file leaves unset. Entries may be nested
	// maps or already use dot notation.
	Defaults map[string]interface{}
}

// Load reads a configuration file, detecting the format from its
// extension.
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{Format: FormatAuto})
}

// LoadWithOptions reads a configuration file with explicit options.
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if icelstringx.IsBlank(filePath) {
		return nil, icelerror.New("config file path cannot be empty").
			WithCode(icelerror.CodeValidationFailed).
			WithOperation("config.LoadWithOptions")
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, icelerror.Newf("config file not found: %s", filePath).
				WithCode(icelerror.CodeFileNotFound).
				WithOperation("config.LoadWithOptions").
				WithDetail("filePath", filePath)
		}
		return nil, icelerror.Wrap(err, "failed to read config file").
			WithCode(icelerror.CodeIOError).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath)
	}

	format := options.Format
	if format == FormatAuto {
		format = formatForPath(filePath)
	}

	tree, err := parse(content, format)
	if err != nil {
		return nil, icelerror.Wrap(err, "failed to parse config file").
			WithCode(icelerror.CodeInvalidConfig).
			WithOperation("config.LoadWithOptions").
			WithDetail("filePath", filePath).
			WithDetail("format", format.String())
	}

	cfg := &Config{
		values:    make(map[string]interface{}),
		filePath:  filePath,
		format:    format,
		envPrefix: options.EnvPrefix,
	}
	flatten("", tree, cfg.values)
	cfg.applyDefaults(options.Defaults)

	return cfg, nil
}

// LoadFromString parses configuration text in the given format.
// FormatAuto falls back to TOML.
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	tree, err := parse([]byte(content), format)
	if err != nil {
		return nil, icelerror.Wrap(err, "failed to parse config from string").
			WithCode(icelerror.CodeInvalidConfig).
			WithOperation("config.LoadFromString").
			WithDetail("format", format.String())
	}

	cfg := &Config{values: make(map[string]interface{}), format: format}
	flatten("", tree, cfg.values)

	return cfg, nil
}

// Empty returns a configuration with no stored values. Getters fall
// back to their defaults, and environment overrides still apply.
func Empty(envPrefix string) *Config {
	return &Config{
		values:    make(map[string]interface{}),
		format:    FormatTOML,
		envPrefix: envPrefix,
	}
}

// formatForPath picks the format implied by a file extension. Anything
// that is not YAML is treated as TOML.
func formatForPath(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// parse unmarshals configuration text into a nested tree.
func parse(content []byte, format Format) (map[string]interface{}, error) {
	var tree map[string]interface{}
	var err error

	switch format {
	case FormatTOML:
		err = toml.Unmarshal(content, &tree)
	case FormatYAML:
		err = yaml.Unmarshal(content, &tree)
	default:
		return nil, icelerror.Newf("unsupported format: %s", format).
			WithCode(icelerror.CodeInvalidConfig).
			WithOperation("config.parse")
	}

	if err != nil {
		return nil, icelerror.Wrap(err, format.String()+" parse error").
			WithCode(icelerror.CodeInvalidConfig).
			WithOperation("config.parse")
	}
	return tree, nil
}

// flatten stores every leaf of a nested tree under its dot-joined path.
// Arrays stay leaves.
func flatten(prefix string, tree map[string]interface{}, into map[string]interface{}) {
	for key, value := range tree {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		if child, ok := value.(map[string]interface{}); ok {
			flatten(path, child, into)
			continue
		}
		into[path] = value
	}
}

// applyDefaults fills keys that loading left unset.
func (c *Config) applyDefaults(defaults map[string]interface{}) {
	if len(defaults) == 0 {
		return
	}

	flat := make(map[string]interface{})
	flatten("", defaults, flat)

	for key, value := range flat {
		if _, ok := c.values[key]; !ok {
			c.values[key] = value
		}
	}
}

// value returns the stored leaf for a key. Nil values count as absent.
func (c *Config) value(key string) (interface{}, bool) {
	c.mu.RLock()
	v, ok := c.values[key]
	c.mu.RUnlock()

	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// envOverride returns the environment value overriding a key. Unset and
// empty variables do not override.
func (c *Config) envOverride(key string) (string, bool) {
	v := os.Getenv(envName(c.envPrefix, key))
	return v, v != ""
}

// envName maps a dot-notation key to its environment variable:
// "engine.cache_size" with prefix "ICEL" becomes ICEL_ENGINE_CACHE_SIZE.
func envName(prefix, key string) string {
	name := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if prefix == "" {
		return name
	}
	return strings.ToUpper(prefix) + "_" + name
}

// GetString returns a string value. Non-string leaves are formatted.
// The optional fallback applies when the key is absent.
func (c *Config) GetString(key string, fallback ...string) string {
	if raw, ok := c.envOverride(key); ok {
		return raw
	}
	if v, ok := c.value(key); ok {
		return asString(v)
	}
	if len(fallback) > 0 {
		return fallback[0]
	}
	return ""
}

// GetInt returns an integer value. Numeric strings are parsed;
// overrides that do not parse fall through to the stored value.
func (c *Config) GetInt(key string, fallback ...int) int {
	if raw, ok := c.envOverride(key); ok {
		if n, err := strconv.Atoi(raw); err == nil {
			return n
		}
	}
	if v, ok := c.value(key); ok {
		if n, ok := asInt(v); ok {
			return n
		}
	}
	if len(fallback) > 0 {
		return fallback[0]
	}
	return 0
}

// GetBool returns a boolean value. Strings go through strconv.ParseBool.
func (c *Config) GetBool(key string, fallback ...bool) bool {
	if raw, ok := c.envOverride(key); ok {
		if b, err := strconv.ParseBool(raw); err == nil {
			return b
		}
	}
	if v, ok := c.value(key); ok {
		if b, ok := asBool(v); ok {
			return b
		}
	}
	if len(fallback) > 0 {
		return fallback[0]
	}
	return false
}

// GetDuration returns a duration value. Stored values may be duration
// strings ("5m") or nanosecond counts.
func (c *Config) GetDuration(key string, fallback ...time.Duration) time.Duration {
	if raw, ok := c.envOverride(key); ok {
		if d, err := time.ParseDuration(raw); err == nil {
			return d
		}
	}
	if v, ok := c.value(key); ok {
		if d, ok := asDuration(v); ok {
			return d
		}
	}
	if len(fallback) > 0 {
		return fallback[0]
	}
	return 0
}

// GetStringSlice returns a string slice value. A scalar string becomes
// a one-element slice. There is no environment override for slices.
func (c *Config) GetStringSlice(key string, fallback ...[]string) []string {
	if v, ok := c.value(key); ok {
		if items, ok := asStringSlice(v); ok {
			return items
		}
	}
	if len(fallback) > 0 {
		return fallback[0]
	}
	return nil
}

func asString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func asInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case string:
		if parsed, err := strconv.Atoi(n); err == nil {
			return parsed, true
		}
	}
	return 0, false
}

func asBool(v interface{}) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		if parsed, err := strconv.ParseBool(b); err == nil {
			return parsed, true
		}
	}
	return false, false
}

func asDuration(v interface{}) (time.Duration, bool) {
	switch d := v.(type) {
	case time.Duration:
		return d, true
	case string:
		if parsed, err := time.ParseDuration(d); err == nil {
			return parsed, true
		}
	case int:
		return time.Duration(d), true
	case int64:
		return time.Duration(d), true
	}
	return 0, false
}

func asStringSlice(v interface{}) ([]string, bool) {
	switch items := v.(type) {
	case []string:
		return items, true
	case []interface{}:
		out := make([]string, len(items))
		for i, item := range items {
			out[i] = fmt.Sprintf("%v", item)
		}
		return out, true
	case string:
		return []string{items}, true
	}
	return nil, false
}

// Has reports whether a key holds a value.
func (c *Config) Has(key string) bool {
	_, ok := c.value(key)
	return ok
}

// Set stores a value at runtime. Nothing is written back to the file.
func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	c.values[key] = value
	c.mu.Unlock()
}

// GetAll rebuilds the nested tree from the flat key space and returns
// it. The result is independent of the configuration.
func (c *Config) GetAll() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return unflatten(c.values)
}

// unflatten is the inverse of flatten. When a scalar and a deeper path
// collide, the deeper path wins.
func unflatten(flat map[string]interface{}) map[string]interface{} {
	tree := make(map[string]interface{})

	for path, value := range flat {
		parts := strings.Split(path, ".")
		node := tree
		for _, part := range parts[:len(parts)-1] {
			child, ok := node[part].(map[string]interface{})
			if !ok {
				child = make(map[string]interface{})
				node[part] = child
			}
			node = child
		}
		node[parts[len(parts)-1]] = copyLeaf(value)
	}
	return tree
}

// copyLeaf copies slice leaves so callers cannot mutate stored state.
func copyLeaf(v interface{}) interface{} {
	switch items := v.(type) {
	case []interface{}:
		return append([]interface{}(nil), items...)
	case []string:
		return append([]string(nil), items...)
	default:
		return v
	}
}

// FilePath returns the path the configuration was loaded from, if any.
func (c *Config) FilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// Format returns the loaded file format.
func (c *Config) Format() Format {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.format
}

// String summarizes the configuration without dumping its values.
func (c *Config) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var b strings.Builder
	fmt.Fprintf(&b, "Config{format: %s", c.format)
	if c.filePath != "" {
		fmt.Fprintf(&b, ", path: %s", c.filePath)
	}
	if c.envPrefix != "" {
		fmt.Fprintf(&b, ", envPrefix: %s", c.envPrefix)
	}
	fmt.Fprintf(&b, ", keys: %d}", len(c.values))
	return b.String()
}
