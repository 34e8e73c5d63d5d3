package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/TheFuzzyGiggler/klipper-fan-tests/internal/messages"
)

// Load reads and validates the config at path. A missing file yields the
// stock defaults; any other read or parse failure is fatal before the
// deployment touches anything.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg := Default()
		if err := cfg.expandDirs(); err != nil {
			return nil, err
		}
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigReadFileFmt, path, err)
	}
	return Parse(data, path)
}

// Parse decodes TOML config data, fills defaults, validates, and expands
// home-relative directories. source identifies the origin in error messages.
func Parse(data []byte, source string) (*Config, error) {
	var cfg Config
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidTOMLFmt, source, err)
	}
	cfg.fillDefaults()
	if err := cfg.Validate(source); err != nil {
		return nil, err
	}
	if err := cfg.expandDirs(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// expandDirs resolves a leading ~ in the configured directories.
func (c *Config) expandDirs() error {
	target, err := homedir.Expand(c.TargetDir)
	if err != nil {
		return fmt.Errorf(messages.ConfigExpandPathFmt, c.TargetDir, err)
	}
	source, err := homedir.Expand(c.SourceDir)
	if err != nil {
		return fmt.Errorf(messages.ConfigExpandPathFmt, c.SourceDir, err)
	}
	c.TargetDir = target
	c.SourceDir = source
	return nil
}
