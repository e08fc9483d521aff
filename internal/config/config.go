// Package config loads the cxcomplete configuration: an embedded default
// document with an optional user file decoded on top of it.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/cxcomplete/pkg/logger"
)

//go:embed default_config.yaml
var embeddedDefaultConfig []byte

// Formats lists the values accepted by output.format.
var Formats = []string{"menu", "table", "preview", "tree", "yaml", "json", "toml", "csv", "lsp", "raw"}

// Config is the full configuration file.
type Config struct {
	Render RenderConfig `yaml:"render"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// RenderConfig controls how records are built.
type RenderConfig struct {
	ExtraSpace bool `yaml:"extraSpace"`
	Workers    int  `yaml:"workers"`
	Dedupe     bool `yaml:"dedupe"`
}

// OutputConfig controls how records are printed.
type OutputConfig struct {
	Format   string       `yaml:"format"`
	Snippets bool         `yaml:"snippets"`
	NoColor  bool         `yaml:"noColor"`
	Colors   ColorsConfig `yaml:"colors"`
}

// ColorsConfig overrides the terminal palette. Empty values keep the default.
type ColorsConfig struct {
	Header           string `yaml:"header"`
	HeaderBackground string `yaml:"headerBackground"`
	Label            string `yaml:"label"`
	Param            string `yaml:"param"`
	Kind             string `yaml:"kind"`
	Separator        string `yaml:"separator"`
}

// LogConfig controls the process logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

var (
	defaultOnce sync.Once
	defaultCfg  Config
	defaultErr  error
)

// DefaultYAML returns a copy of the embedded default config.
func DefaultYAML() []byte {
	return append([]byte(nil), embeddedDefaultConfig...)
}

// Default decodes the embedded default config.
func Default() (Config, error) {
	defaultOnce.Do(func() {
		if len(embeddedDefaultConfig) == 0 {
			defaultErr = fmt.Errorf("embedded default config is empty")
			return
		}
		defaultCfg, defaultErr = decode(embeddedDefaultConfig, Config{})
		if defaultErr != nil {
			defaultErr = fmt.Errorf("decode embedded default config: %w", defaultErr)
		}
	})
	return defaultCfg, defaultErr
}

// Load returns the default config merged with the file at path. An empty
// path yields the defaults. Keys missing from the file keep their default.
func Load(path string) (Config, error) {
	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	merged, err := Merge(cfg, data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return merged, nil
}

// Merge decodes data on top of base and validates the result.
func Merge(base Config, data []byte) (Config, error) {
	cfg, err := decode(data, base)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decode(data []byte, into Config) (Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&into); err != nil {
		// An empty or comment-only file has no document at all.
		if errors.Is(err, io.EOF) {
			return into, nil
		}
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return into, nil
}

// Validate checks enumerated values and ranges.
func (c Config) Validate() error {
	if !slices.Contains(Formats, c.Output.Format) {
		return fmt.Errorf("output.format %q is not one of %s", c.Output.Format, strings.Join(Formats, ", "))
	}
	if c.Render.Workers < 0 {
		return fmt.Errorf("render.workers must be >= 0, got %d", c.Render.Workers)
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch c.Log.Format {
	case "", logger.FormatJSON, logger.FormatConsole:
	default:
		return fmt.Errorf("log.format %q is not one of json, console", c.Log.Format)
	}
	return nil
}

// LogLevel returns the zap level for Log.Level. Validate has already
// rejected unknown names, so those fall back to info.
func (c Config) LogLevel() int8 {
	lvl, err := logger.ParseLevel(c.Log.Level)
	if err != nil {
		return 0
	}
	return lvl
}

// YAML renders the config for `cxcomplete config`.
func (c Config) YAML() (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	return buf.String(), nil
}
