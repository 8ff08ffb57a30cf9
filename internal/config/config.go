// Package config loads and stores the linebreak command's settings.
//
// Settings live in a YAML file; every field is optional and a missing file
// is the same as an empty one.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"
)

// DefaultFallbackWidth is used when no width is configured and the
// terminal cannot be queried.
const DefaultFallbackWidth = 80

// Ambiguous width settings.
const (
	AmbiguousAuto   = "auto"
	AmbiguousNarrow = "narrow"
	AmbiguousWide   = "wide"
)

// ErrUnknownKey is returned for keys Get and Set do not know.
var ErrUnknownKey = errors.New("unknown config key")

// Config holds the user's settings.
type Config struct {
	// Width to wrap at; 0 means ask the terminal.
	Width int `yaml:"width,omitempty"`
	// FallbackWidth is used when Width is 0 and there is no terminal.
	FallbackWidth int `yaml:"fallback_width,omitempty"`
	// Indent prefixes every line.
	Indent string `yaml:"indent,omitempty"`
	// Ambiguous is one of "auto", "narrow" or "wide".
	Ambiguous string `yaml:"ambiguous,omitempty"`
	// Paragraphs keeps blank-line separated paragraphs apart.
	Paragraphs bool `yaml:"paragraphs,omitempty"`
}

// Keys lists the settings Get and Set accept, in sorted order.
var Keys = []string{"ambiguous", "fallback_width", "indent", "paragraphs", "width"}

// Path returns the location of the config file: $LINEBREAK_CONFIG, else
// linebreak/config.yaml under $XDG_CONFIG_HOME or ~/.config.
func Path() (string, error) {
	if p := os.Getenv("LINEBREAK_CONFIG"); p != "" {
		return p, nil
	}
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("locate config: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "linebreak", "config.yaml"), nil
}

// Load reads the config at path from fs. A missing file yields the
// defaults.
func Load(fs billy.Filesystem, path string) (*Config, error) {
	c := &Config{}
	data, err := util.ReadFile(fs, path)
	if errors.Is(err, os.ErrNotExist) {
		return c.withDefaults(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return c.withDefaults(), nil
}

// Save writes c to path on fs, creating parent directories.
func (c *Config) Save(fs billy.Filesystem, path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	if err := util.WriteFile(fs, path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// ApplyEnv lets $LINEBREAK_WIDTH override the configured width.
func (c *Config) ApplyEnv() error {
	v := os.Getenv("LINEBREAK_WIDTH")
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return fmt.Errorf("invalid LINEBREAK_WIDTH: %s", v)
	}
	c.Width = n
	return nil
}

// AmbiguousWide reports whether East Asian Ambiguous characters should
// count as two columns. "auto" follows the locale in the environment.
func (c *Config) AmbiguousWide() bool {
	switch c.Ambiguous {
	case AmbiguousWide:
		return true
	case AmbiguousNarrow:
		return false
	}
	return runewidth.IsEastAsian()
}

// Get returns the value of key as text.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "width":
		return strconv.Itoa(c.Width), nil
	case "fallback_width":
		return strconv.Itoa(c.FallbackWidth), nil
	case "indent":
		return c.Indent, nil
	case "ambiguous":
		return c.Ambiguous, nil
	case "paragraphs":
		return strconv.FormatBool(c.Paragraphs), nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
}

// Set parses value and stores it under key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "width":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid width %q: expected a number >= 0", value)
		}
		c.Width = n
	case "fallback_width":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid fallback_width %q: expected a number > 0", value)
		}
		c.FallbackWidth = n
	case "indent":
		c.Indent = value
	case "ambiguous":
		v := strings.ToLower(value)
		if !validAmbiguous(v) {
			return fmt.Errorf("invalid ambiguous %q: expected auto, narrow or wide", value)
		}
		c.Ambiguous = v
	case "paragraphs":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid paragraphs %q: expected true or false", value)
		}
		c.Paragraphs = b
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// List returns every key and its value, sorted by key.
func (c *Config) List() [][2]string {
	out := make([][2]string, 0, len(Keys))
	for _, k := range Keys {
		v, _ := c.Get(k)
		out = append(out, [2]string{k, v})
	}
	return out
}

func (c *Config) validate() error {
	if c.Width < 0 {
		return fmt.Errorf("width must be >= 0, got %d", c.Width)
	}
	if c.FallbackWidth < 0 {
		return fmt.Errorf("fallback_width must be > 0, got %d", c.FallbackWidth)
	}
	if c.Ambiguous != "" && !validAmbiguous(c.Ambiguous) {
		return fmt.Errorf("ambiguous must be auto, narrow or wide, got %q", c.Ambiguous)
	}
	return nil
}

func (c *Config) withDefaults() *Config {
	if c.FallbackWidth == 0 {
		c.FallbackWidth = DefaultFallbackWidth
	}
	if c.Ambiguous == "" {
		c.Ambiguous = AmbiguousAuto
	}
	return c
}

func validAmbiguous(v string) bool {
	return v == AmbiguousAuto || v == AmbiguousNarrow || v == AmbiguousWide
}
