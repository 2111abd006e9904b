package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"

	"easyinit/internal/gen"
	"easyinit/internal/logger"
)

// FileName is the name of the project configuration file.
const FileName = ".easyinit.yaml"

// Config is the merged generator configuration.
type Config struct {
	// Style is "extension" or "member".
	Style string `yaml:"style,omitempty"`
	// Suffix replaces ".go" in the source file name to form the output name.
	Suffix string `yaml:"suffix,omitempty"`
	// Packages are the package patterns generated when none are given.
	Packages []string `yaml:"packages,omitempty"`
	// Log configures the tool's own logging.
	Log LogConfig `yaml:"log,omitempty"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `yaml:"level,omitempty"`
	JSON  bool   `yaml:"json,omitempty"`
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		Style:    gen.ExtensionStyle.String(),
		Suffix:   gen.DefaultGeneratorConfig().Suffix,
		Packages: []string{"."},
		Log:      LogConfig{Level: string(logger.InfoLevel)},
	}
}

// LoadFile loads and parses a YAML configuration file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse parses YAML data into a Config. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	normalize(&cfg)

	return &cfg, nil
}

// normalize trims values that are compared case-insensitively.
func normalize(cfg *Config) {
	cfg.Style = strings.ToLower(strings.TrimSpace(cfg.Style))
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
}

// Find looks for FileName in dir and its parents. It returns "" when there is
// none.
func Find(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for {
		p := filepath.Join(dir, FileName)

		_, err := os.Stat(p)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("checking %s: %w", p, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Merge applies the non-zero values of other over c.
func (c *Config) Merge(other *Config) error {
	if other == nil {
		return nil
	}

	return mergo.Merge(c, other, mergo.WithOverride)
}

// Validate checks that every value is one the generator understands.
func (c *Config) Validate() error {
	var errs []error

	if _, err := gen.ParseStyle(c.Style); err != nil {
		errs = append(errs, err)
	}

	if !strings.HasSuffix(c.Suffix, ".go") || strings.ContainsRune(c.Suffix, filepath.Separator) {
		errs = append(errs, fmt.Errorf("invalid suffix %q (want a file name ending in .go)", c.Suffix))
	}

	if c.Suffix == ".go" {
		errs = append(errs, errors.New("suffix .go would overwrite the source file"))
	}

	switch logger.LogLevel(c.Log.Level) {
	case logger.DebugLevel, logger.InfoLevel, logger.WarnLevel, logger.ErrorLevel, logger.DisabledLevel:
	default:
		errs = append(errs, fmt.Errorf("unknown log level %q", c.Log.Level))
	}

	return errors.Join(errs...)
}

// GeneratorStyle returns the parsed style. Call Validate first.
func (c *Config) GeneratorStyle() gen.Style {
	style, _ := gen.ParseStyle(c.Style)
	return style
}

// Marshal serializes a Config to YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}
