// Package config provides configuration management for soon.
//
// The configuration is stored in TOML format and supports validation
// and default values for all fields.
package config

import (
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Output formats accepted by the format key and the --format flag.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// DefaultRepository is the GitHub repository queried by soon update.
const DefaultRepository = "chazuruo/soon"

// Config is the top-level configuration struct for soon.
type Config struct {
	// Shell is used when --shell is not given. It takes precedence over $SHELL.
	Shell string `toml:"shell" json:"shell" yaml:"shell"`

	// Top is the number of rows soon stats prints.
	Top int `toml:"top" json:"top" yaml:"top"`

	// Format is the default output format.
	// Valid values: "text", "json", "yaml".
	Format string `toml:"format" json:"format" yaml:"format"`

	// LogLevel is the minimum level written to stderr.
	// Valid values: "debug", "info", "warn", "error".
	LogLevel string `toml:"log_level" json:"log_level" yaml:"log_level"`

	History HistoryConfig `toml:"history" json:"history" yaml:"history"`
	Update  UpdateConfig  `toml:"update" json:"update" yaml:"update"`
}

// HistoryConfig overrides the history file read for each shell.
// Empty values use the shell's standard location.
type HistoryConfig struct {
	Bash string `toml:"bash" json:"bash" yaml:"bash"`
	Zsh  string `toml:"zsh" json:"zsh" yaml:"zsh"`
	Fish string `toml:"fish" json:"fish" yaml:"fish"`
}

// UpdateConfig contains release check settings.
type UpdateConfig struct {
	// Repository is the GitHub "owner/name" to check for releases.
	Repository string `toml:"repository" json:"repository" yaml:"repository"`

	// IncludePrerelease allows pre-releases to count as the latest version.
	IncludePrerelease bool `toml:"include_prerelease" json:"include_prerelease" yaml:"include_prerelease"`
}

// DefaultConfig returns a Config with all default values set.
func DefaultConfig() *Config {
	return &Config{
		Shell:    "",
		Top:      10,
		Format:   FormatText,
		LogLevel: "error",
		Update: UpdateConfig{
			Repository:        DefaultRepository,
			IncludePrerelease: false,
		},
	}
}

// Validate checks the configuration for valid values.
// Returns a nil error if the config is valid, or an error describing the problem.
func (c *Config) Validate() error {
	if strings.ContainsAny(c.Shell, " \t\n/") {
		return fmt.Errorf("shell must be a bare shell name; got %q", c.Shell)
	}

	if c.Top < 1 {
		return fmt.Errorf("top must be >= 1; got %d", c.Top)
	}

	if err := ValidateFormat(c.Format); err != nil {
		return err
	}

	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level must be one of: debug, info, warn, error; got %q", c.LogLevel)
	}

	owner, name, ok := strings.Cut(c.Update.Repository, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return fmt.Errorf("update.repository must be in owner/name form; got %q", c.Update.Repository)
	}

	return nil
}

// ValidateFormat reports whether format names a supported output format.
func ValidateFormat(format string) error {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
		return nil
	default:
		return fmt.Errorf("format must be one of: text, json, yaml; got %q", format)
	}
}

// HistoryPaths returns the configured history overrides keyed by shell name.
// Shells without an override are omitted.
func (c *Config) HistoryPaths() map[string]string {
	paths := map[string]string{}
	for shell, path := range map[string]string{
		"bash": c.History.Bash,
		"zsh":  c.History.Zsh,
		"fish": c.History.Fish,
	} {
		if path != "" {
			paths[shell] = path
		}
	}
	return paths
}
