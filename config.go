package thunk

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ColorMode selects when diagnostics are colored.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Config holds the settings read from a .thunk.yml file.
type Config struct {
	MaxDepth   int       `yaml:"max_depth"`
	Color      ColorMode `yaml:"color"`
	History    string    `yaml:"history"`
	ShowTokens bool      `yaml:"show_tokens"`
	ShowTree   bool      `yaml:"show_tree"`
}

const (
	ConfigEnv      = "THUNK_CONFIG"
	configFileName = ".thunk.yml"
	historyName    = ".thunk_history"
)

// DefaultConfig returns the settings used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		MaxDepth: DefaultMaxDepth,
		Color:    ColorAuto,
	}
}

// ConfigError collects every problem found while validating a config.
type ConfigError struct {
	Path   string
	Issues []string
}

func (e *ConfigError) Error() string {
	var b strings.Builder
	b.WriteString("config")
	if e.Path != "" {
		b.WriteString(" ")
		b.WriteString(e.Path)
	}
	b.WriteString(": invalid configuration")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

// DecodeConfig reads YAML from r on top of the defaults. Unknown keys are
// rejected.
func DecodeConfig(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig reads the config at path. An empty path falls back to
// $THUNK_CONFIG, then ~/.thunk.yml; if neither exists the defaults are
// returned.
func LoadConfig(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = os.Getenv(ConfigEnv)
		explicit = path != ""
	}
	if !explicit {
		home, err := os.UserHomeDir()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = filepath.Join(home, configFileName)
	}

	f, err := os.Open(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := DecodeConfig(f)
	if err != nil {
		var cerr *ConfigError
		if errors.As(err, &cerr) {
			cerr.Path = path
		}
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings, filling in an empty color mode.
func (c *Config) Validate() error {
	var issues []string
	if c.MaxDepth < 1 {
		issues = append(issues, fmt.Sprintf("max_depth must be positive, got %d", c.MaxDepth))
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	case "":
		c.Color = ColorAuto
	default:
		issues = append(issues, fmt.Sprintf("color must be one of auto, always, never, got %q", c.Color))
	}
	if len(issues) > 0 {
		return &ConfigError{Issues: issues}
	}
	return nil
}

// HistoryPath is where the REPL keeps its history. An empty History means
// ~/.thunk_history; a leading ~/ is expanded.
func (c *Config) HistoryPath() string {
	home, _ := os.UserHomeDir()
	if c.History == "" {
		if home == "" {
			return ""
		}
		return filepath.Join(home, historyName)
	}
	if strings.HasPrefix(c.History, "~/") && home != "" {
		return filepath.Join(home, c.History[2:])
	}
	return c.History
}

// UseColor resolves the color mode; isTerminal is consulted only for auto.
func (c *Config) UseColor(isTerminal bool) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	return isTerminal
}

// Interpreter builds an interpreter with the configured limits.
func (c *Config) Interpreter() *Interpreter {
	return NewInterpreter(WithMaxDepth(c.MaxDepth))
}
