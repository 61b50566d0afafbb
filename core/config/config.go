// File: config.go
// Title: Configuration Management Implementation
// Description: Loads configuration from TOML or YAML files (or strings),
//              resolves dot-notation keys and lets environment variables
//              override file values.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	sherror "github.com/msto63/stringhandler/core/error"
	"github.com/msto63/stringhandler/core/errors"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto detects the format from the file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config represents a configuration instance with thread-safe access
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	filePath  string
	format    Format
	envPrefix string
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format                 // File format (default: auto-detect)
	EnvPrefix string                 // Environment variable prefix (default: none)
	Defaults  map[string]interface{} // Default values, dot-notation keys allowed
}

// Load loads configuration from a file with default options
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{Format: FormatAuto})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, errors.NewErrorBuilder(errors.ModuleConfig).
			Operation("LoadWithOptions").
			Code(sherror.CodeMissingConfig).
			Message("config file path cannot be empty").
			Build()
	}

	format := options.Format
	if format == FormatAuto {
		format = DetectFormat(filePath)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		code := sherror.CodeConfigError
		if os.IsNotExist(err) {
			code = sherror.CodeNotFound
		}
		return nil, errors.NewErrorBuilder(errors.ModuleConfig).
			Operation("LoadWithOptions").
			Code(code).
			Message("failed to read config file").
			Cause(err).
			Detail("filePath", filePath).
			Build()
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, errors.NewErrorBuilder(errors.ModuleConfig).
			Operation("LoadWithOptions").
			Code(sherror.CodeInvalidConfig).
			Message("failed to parse config file").
			Cause(err).
			Detail("filePath", filePath).
			Detail("format", format.String()).
			Build()
	}

	cfg := &Config{
		data:      data,
		filePath:  filePath,
		format:    format,
		envPrefix: options.EnvPrefix,
	}
	cfg.applyDefaults(options.Defaults)

	return cfg, nil
}

// LoadFromString loads configuration from a string with specified format
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, errors.NewErrorBuilder(errors.ModuleConfig).
			Operation("LoadFromString").
			Code(sherror.CodeInvalidConfig).
			Message("failed to parse config from string").
			Cause(err).
			Detail("format", format.String()).
			Build()
	}

	return &Config{data: data, format: format}, nil
}

// Empty returns a configuration without file data. Environment overrides
// and defaults still apply.
func Empty(options LoadOptions) *Config {
	cfg := &Config{
		data:      make(map[string]interface{}),
		format:    options.Format,
		envPrefix: options.EnvPrefix,
	}
	cfg.applyDefaults(options.Defaults)
	return cfg
}

// DetectFormat determines the configuration format from the file extension
func DetectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// parseContent parses configuration content based on format
func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	data := make(map[string]interface{})

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, sherror.Wrap(err, "TOML parse error").WithCode(sherror.CodeInvalidFormat)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, sherror.Wrap(err, "YAML parse error").WithCode(sherror.CodeInvalidFormat)
		}
		if data == nil {
			data = make(map[string]interface{})
		}
	default:
		return nil, sherror.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(sherror.CodeInvalidFormat)
	}

	return data, nil
}

// applyDefaults sets every default whose key is absent
func (c *Config) applyDefaults(defaults map[string]interface{}) {
	for k, v := range defaults {
		if c.getValue(k) == nil {
			c.setValue(k, v)
		}
	}
}

// GetString returns a string configuration value with optional default
func (c *Config) GetString(key string, defaultValue ...string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue, ok := c.getEnvValue(key); ok {
		return envValue
	}

	value := c.getValue(key)
	if value == nil {
		if len(defaultValue) > 0 {
			return defaultValue[0]
		}
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// GetInt returns an integer configuration value with optional default
func (c *Config) GetInt(key string, defaultValue ...int) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue, ok := c.getEnvValue(key); ok {
		if intVal, err := strconv.Atoi(envValue); err == nil {
			return intVal
		}
	}

	switch v := c.getValue(key).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if intVal, err := strconv.Atoi(v); err == nil {
			return intVal
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// GetBool returns a boolean configuration value with optional default
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue, ok := c.getEnvValue(key); ok {
		if boolVal, err := strconv.ParseBool(envValue); err == nil {
			return boolVal
		}
	}

	switch v := c.getValue(key).(type) {
	case bool:
		return v
	case string:
		if boolVal, err := strconv.ParseBool(v); err == nil {
			return boolVal
		}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return false
}

// GetStringSlice returns a string slice value. Environment overrides are
// comma separated.
func (c *Config) GetStringSlice(key string, defaultValue ...[]string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if envValue, ok := c.getEnvValue(key); ok {
		var result []string
		for _, part := range strings.Split(envValue, ",") {
			if part = strings.TrimSpace(part); part != "" {
				result = append(result, part)
			}
		}
		return result
	}

	switch v := c.getValue(key).(type) {
	case []string:
		return append([]string(nil), v...)
	case []interface{}:
		result := make([]string, 0, len(v))
		for _, item := range v {
			result = append(result, fmt.Sprintf("%v", item))
		}
		return result
	case string:
		return []string{v}
	}

	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return nil
}

// Has checks if a configuration key exists in the file data or environment
func (c *Config) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if _, ok := c.getEnvValue(key); ok {
		return true
	}
	return c.getValue(key) != nil
}

// Set sets a configuration value (dot notation creates nested maps)
func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.setValue(key, value)
}

// GetAll returns a deep copy of all configuration data
func (c *Config) GetAll() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return deepCopyMap(c.data)
}

// FilePath returns the path of the loaded configuration file
func (c *Config) FilePath() string {
	return c.filePath
}

// Format returns the configuration file format
func (c *Config) Format() Format {
	return c.format
}

// String returns a short description of the configuration
func (c *Config) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	parts := []string{fmt.Sprintf("Config{format: %s", c.format)}
	if c.filePath != "" {
		parts = append(parts, fmt.Sprintf("path: %s", c.filePath))
	}
	if c.envPrefix != "" {
		parts = append(parts, fmt.Sprintf("envPrefix: %s", c.envPrefix))
	}
	parts = append(parts, fmt.Sprintf("keys: %d}", len(c.data)))

	return strings.Join(parts, ", ")
}

// getValue retrieves a value by dot-notation key
func (c *Config) getValue(key string) interface{} {
	current := c.data
	keys := strings.Split(key, ".")

	for i, k := range keys {
		if i == len(keys)-1 {
			return current[k]
		}

		next, ok := current[k].(map[string]interface{})
		if !ok {
			return nil
		}
		current = next
	}

	return nil
}

// setValue stores a value by dot-notation key, creating nested maps
func (c *Config) setValue(key string, value interface{}) {
	current := c.data
	keys := strings.Split(key, ".")

	for i, k := range keys {
		if i == len(keys)-1 {
			current[k] = value
			return
		}

		next, ok := current[k].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[k] = next
		}
		current = next
	}
}

// getEnvValue looks up the environment override for key
func (c *Config) getEnvValue(key string) (string, bool) {
	value, ok := os.LookupEnv(c.formatEnvKey(key))
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// formatEnvKey converts a config key to environment variable format:
// translit.language -> TRANSLIT_LANGUAGE (STRHANDLER_TRANSLIT_LANGUAGE with prefix)
func (c *Config) formatEnvKey(key string) string {
	envKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if c.envPrefix != "" {
		envKey = strings.ToUpper(c.envPrefix) + "_" + envKey
	}
	return envKey
}

func deepCopyMap(src map[string]interface{}) map[string]interface{} {
	dst := make(map[string]interface{}, len(src))

	for k, v := range src {
		switch val := v.(type) {
		case map[string]interface{}:
			dst[k] = deepCopyMap(val)
		case []interface{}:
			dst[k] = append([]interface{}(nil), val...)
		default:
			dst[k] = v
		}
	}

	return dst
}
