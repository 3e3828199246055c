// Package config holds the ambient debug toggles and the TOML-loaded
// settings file consumed by cmd/arkdump (spec §5 "callers may cap
// max_objects to bound work").
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

var (
	DEBUG                = os.Getenv("DEBUG") != ""
	DEBUG_SAVE_DECRYPTED = os.Getenv("DEBUG_SAVE_DECRYPTED") != ""
	DEBUG_SAVE_BINARY    = os.Getenv("DEBUG_SAVE_BINARY") != ""
	DEBUG_SAVE_JSON      = os.Getenv("DEBUG_SAVE_JSON") != ""
)

// Settings is the TOML-loaded configuration for the arkdump CLI.
type Settings struct {
	MaxObjects int    `toml:"max_objects"`
	OutputDir  string `toml:"output_dir"`
	MapName    string `toml:"map_name"`
}

// DefaultSettings returns the settings used when no config file is
// present.
func DefaultSettings() Settings {
	return Settings{MaxObjects: 0, OutputDir: ".", MapName: "TheIsland"}
}

// LoadSettings reads a TOML settings file, falling back to
// DefaultSettings for any field left unset if the file does not exist.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return s, nil
	}
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return Settings{}, err
	}
	return s, nil
}
