package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	soonerrors "github.com/chazuruo/soon/internal/errors"
)

// Env is the slice of the process environment the loader reads.
type Env struct {
	// Home is the user's home directory.
	Home string

	// LookupEnv reads an environment variable. Nil means os.LookupEnv.
	LookupEnv func(key string) (string, bool)
}

func (e Env) lookup(key string) (string, bool) {
	if e.LookupEnv == nil {
		return os.LookupEnv(key)
	}
	return e.LookupEnv(key)
}

// DefaultPath returns where the config file lives for env:
// $XDG_CONFIG_HOME/soon/config.toml, or ~/.config/soon/config.toml.
// It returns "" when neither location can be resolved.
func DefaultPath(env Env) string {
	if dir, ok := env.lookup("XDG_CONFIG_HOME"); ok && dir != "" {
		return filepath.Join(dir, "soon", "config.toml")
	}
	if env.Home == "" {
		return ""
	}
	return filepath.Join(env.Home, ".config", "soon", "config.toml")
}

// DetectConfigPath returns DefaultPath if a file exists there, or empty string
// if none exists (caller should use defaults).
func DetectConfigPath(env Env) string {
	configPath := DefaultPath(env)
	if configPath == "" {
		return ""
	}
	if _, err := os.Stat(configPath); err == nil {
		return configPath
	}
	return ""
}

// Load loads a config from the specified path.
// If the file doesn't exist, returns an error.
// After loading, applies environment variable overrides and validates.
func Load(path string, env Env) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, &soonerrors.ConfigError{Path: path, Err: soonerrors.ErrNotFound}
	}
	if err != nil {
		return nil, &soonerrors.ConfigError{Path: path, Err: fmt.Errorf("%w: %w", soonerrors.ErrIO, err)}
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, &soonerrors.ConfigError{Path: path, Err: fmt.Errorf("%w: %w", soonerrors.ErrInvalid, err)}
	}

	applyEnvOverrides(cfg, env)
	expandPaths(cfg, env.Home)

	if err := cfg.Validate(); err != nil {
		return nil, &soonerrors.ConfigError{Path: path, Err: fmt.Errorf("%w: %w", soonerrors.ErrInvalid, err)}
	}

	return cfg, nil
}

// LoadWithDefaults loads the config from DefaultPath.
// If no config file is found, returns a config with all default values.
// If a config file is found but fails to load/validate, returns an error.
func LoadWithDefaults(env Env) (*Config, error) {
	configPath := DetectConfigPath(env)
	if configPath != "" {
		return Load(configPath, env)
	}

	cfg := DefaultConfig()
	applyEnvOverrides(cfg, env)
	expandPaths(cfg, env.Home)

	if err := cfg.Validate(); err != nil {
		return nil, &soonerrors.ConfigError{Err: fmt.Errorf("%w: %w", soonerrors.ErrInvalid, err)}
	}
	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables follow the pattern: SOON_[<SECTION>_]<FIELD>
//
// Examples:
// - SOON_SHELL overrides shell
// - SOON_HISTORY_ZSH overrides [history].zsh
// - SOON_UPDATE_INCLUDE_PRERELEASE overrides [update].include_prerelease
//
// Boolean fields: use "true"/"false" strings
func applyEnvOverrides(c *Config, env Env) {
	applyString := func(key string, target *string) {
		if val, ok := env.lookup(key); ok && val != "" {
			*target = val
		}
	}

	applyBool := func(key string, target *bool) {
		if val, ok := env.lookup(key); ok && val != "" {
			switch strings.ToLower(val) {
			case "true", "1", "yes", "on":
				*target = true
			case "false", "0", "no", "off":
				*target = false
			}
		}
	}

	applyInt := func(key string, target *int) {
		if val, ok := env.lookup(key); ok && val != "" {
			var i int
			if _, err := fmt.Sscanf(val, "%d", &i); err == nil {
				*target = i
			}
		}
	}

	applyString("SOON_SHELL", &c.Shell)
	applyInt("SOON_TOP", &c.Top)
	applyString("SOON_FORMAT", &c.Format)
	applyString("SOON_LOG_LEVEL", &c.LogLevel)

	// History section
	applyString("SOON_HISTORY_BASH", &c.History.Bash)
	applyString("SOON_HISTORY_ZSH", &c.History.Zsh)
	applyString("SOON_HISTORY_FISH", &c.History.Fish)

	// Update section
	applyString("SOON_UPDATE_REPOSITORY", &c.Update.Repository)
	applyBool("SOON_UPDATE_INCLUDE_PRERELEASE", &c.Update.IncludePrerelease)
}

// expandPaths expands ~ to home in the history overrides.
func expandPaths(c *Config, home string) {
	for _, p := range []*string{&c.History.Bash, &c.History.Zsh, &c.History.Fish} {
		*p = expandHome(*p, home)
	}
}

func expandHome(path, home string) string {
	if home == "" {
		return path
	}
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, strings.TrimPrefix(path, "~/"))
	}
	return path
}
