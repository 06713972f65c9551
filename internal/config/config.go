// Package config loads server configuration from a TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultConfigFileName is the standard configuration file name.
const DefaultConfigFileName = "reagent.toml"

// Config holds the server configuration. Zero values fall back to defaults.
type Config struct {
	Addr    string `toml:"addr"`
	DBPath  string `toml:"db_path"`
	LogPath string `toml:"log_path"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr:   ":8080",
		DBPath: "reagent.sqlite3",
	}
}

// Load reads configuration in order of precedence: the explicit path if
// given, ./reagent.toml, then the XDG config path. Missing files are not an
// error; defaults fill any field the file leaves unset.
func Load(explicitPath string) (Config, error) {
	cfg := Default()

	path := explicitPath
	if path == "" {
		for _, candidate := range []string{DefaultConfigFileName, xdgConfigPath()} {
			if candidate == "" {
				continue
			}
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
		if path == "" {
			return cfg, nil
		}
	}

	var fileCfg Config
	if _, err := toml.DecodeFile(path, &fileCfg); err != nil {
		return cfg, fmt.Errorf("loading config from %s: %w", path, err)
	}

	if fileCfg.Addr != "" {
		cfg.Addr = fileCfg.Addr
	}
	if fileCfg.DBPath != "" {
		cfg.DBPath = fileCfg.DBPath
	}
	if fileCfg.LogPath != "" {
		cfg.LogPath = fileCfg.LogPath
	}
	return cfg, nil
}

// xdgConfigPath returns ~/.config/reagent/reagent.toml (or the XDG override),
// or "" when no home directory is available.
func xdgConfigPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "reagent", DefaultConfigFileName)
}
