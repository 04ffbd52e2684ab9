// Package config resolves symgraph CLI settings from an optional YAML file and
// SYMGRAPH_-prefixed environment variables. Command-line flags are applied on
// top by the caller.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/symgraph/core"
	"github.com/katalvlaran/symgraph/internal/logging"
)

// Backend names accepted by Config.Backend.
const (
	BackendMap   = "map"
	BackendIndex = "index"
)

// Environment variables consulted by ApplyEnv.
const (
	EnvDelimiter   = "SYMGRAPH_DELIM"
	EnvBackend     = "SYMGRAPH_BACKEND"
	EnvMaxLineSize = "SYMGRAPH_MAX_LINE_SIZE"
	EnvLogFormat   = "SYMGRAPH_LOG_FORMAT"
	EnvLogLevel    = "SYMGRAPH_LOG_LEVEL"
)

// DefaultMaxLineSize matches the core loader's default line limit.
const DefaultMaxLineSize = 1 << 20

// maxFileSize bounds the config file read.
const maxFileSize = 64 << 10

// ErrInvalidConfig marks a config value outside its allowed set.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config holds the CLI configuration.
type Config struct {
	Delimiter   string    `yaml:"delimiter"`
	Backend     string    `yaml:"backend"`
	MaxLineSize int       `yaml:"max_line_size"`
	Log         LogConfig `yaml:"log"`
}

// LogConfig selects the logger format and level.
type LogConfig struct {
	Format string `yaml:"format"`
	Level  string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Delimiter:   " ",
		Backend:     BackendMap,
		MaxLineSize: DefaultMaxLineSize,
		Log: LogConfig{
			Format: "text",
			Level:  "warn",
		},
	}
}

// Load starts from Default, overlays the YAML file at path (skipped when path
// is empty), then environment variables. The result is not validated; callers
// apply flag overrides first and then call Validate.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}
	cfg.ApplyEnv()

	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxFileSize+1))
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if len(data) > maxFileSize {
		return fmt.Errorf("config: %s larger than %d bytes", path, maxFileSize)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	return nil
}

// ApplyEnv overlays any set SYMGRAPH_* variables. An unparsable
// SYMGRAPH_MAX_LINE_SIZE keeps the current value.
func (c *Config) ApplyEnv() {
	c.Delimiter = getEnv(EnvDelimiter, c.Delimiter)
	c.Backend = getEnv(EnvBackend, c.Backend)
	c.MaxLineSize = getEnvAsInt(EnvMaxLineSize, c.MaxLineSize)
	c.Log.Format = getEnv(EnvLogFormat, c.Log.Format)
	c.Log.Level = getEnv(EnvLogLevel, c.Log.Level)
}

// Validate reports the first field outside its allowed set.
func (c *Config) Validate() error {
	if c.Delimiter == "" {
		return fmt.Errorf("%w: delimiter must not be empty", ErrInvalidConfig)
	}
	if c.Backend != BackendMap && c.Backend != BackendIndex {
		return fmt.Errorf("%w: backend %q (want %s or %s)", ErrInvalidConfig, c.Backend, BackendMap, BackendIndex)
	}
	if c.MaxLineSize <= 0 {
		return fmt.Errorf("%w: max_line_size must be > 0, got %d", ErrInvalidConfig, c.MaxLineSize)
	}
	if !slices.Contains(logging.Formats, strings.ToLower(c.Log.Format)) {
		return fmt.Errorf("%w: log format %q (want one of %s)", ErrInvalidConfig, c.Log.Format, strings.Join(logging.Formats, ", "))
	}
	if !slices.Contains(logging.Levels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("%w: log level %q (want one of %s)", ErrInvalidConfig, c.Log.Level, strings.Join(logging.Levels, ", "))
	}

	return nil
}

// GraphFactory returns the constructor for the configured backend.
// Call Validate first; an unknown backend falls back to MapGraph.
func (c *Config) GraphFactory() func() core.Graph {
	if c.Backend == BackendIndex {
		return func() core.Graph { return core.NewIndexGraph() }
	}

	return func() core.Graph { return core.NewMapGraph() }
}

func getEnv(key, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
