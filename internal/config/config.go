package config

import (
	"fmt"
	"path/filepath"

	"github.com/TheFuzzyGiggler/klipper-fan-tests/internal/messages"
)

// DefaultPath is the config file looked up in the working directory when
// --config is not given. A missing file is not an error; defaults apply.
const DefaultPath = "kft.toml"

// Config describes the deployment: which files to manage, where they come
// from, where they go, and which service to restart afterwards.
type Config struct {
	// TargetDir is the host plugin directory receiving the patched files.
	TargetDir string `toml:"target_dir"`
	// SourceDir holds this tool's canonical patched files.
	SourceDir string `toml:"source_dir"`
	// Service is the systemd service probed and restarted.
	Service string `toml:"service"`
	// BackupSuffix is appended to a target path to form its backup path.
	BackupSuffix string `toml:"backup_suffix"`
	// Files are the managed file names, identical in source and target dirs.
	Files []string `toml:"files"`
}

// Default returns the stock configuration for a standard Klipper install.
func Default() *Config {
	return &Config{
		TargetDir:    "~/klipper/klippy/extras",
		SourceDir:    ".",
		Service:      "klipper",
		BackupSuffix: ".bak",
		Files:        []string{"fan.py", "fan_generic.py", "temperature_fan.py"},
	}
}

// fillDefaults replaces zero-valued fields with their stock values so a
// partial config file only overrides what it names.
func (c *Config) fillDefaults() {
	def := Default()
	if c.TargetDir == "" {
		c.TargetDir = def.TargetDir
	}
	if c.SourceDir == "" {
		c.SourceDir = def.SourceDir
	}
	if c.Service == "" {
		c.Service = def.Service
	}
	if c.BackupSuffix == "" {
		c.BackupSuffix = def.BackupSuffix
	}
	// A nil slice means the key was absent; an explicitly empty list is left
	// for Validate to reject.
	if c.Files == nil {
		c.Files = def.Files
	}
}

// Validate checks the config for values the deployment cannot work with.
// source identifies the config origin in error messages.
func (c *Config) Validate(source string) error {
	if len(c.Files) == 0 {
		return fmt.Errorf(messages.ConfigNoFilesFmt, source)
	}
	for _, name := range c.Files {
		if !isBareFileName(name) {
			return fmt.Errorf(messages.ConfigBadFileNameFmt, source, name)
		}
	}
	if c.Service == "" {
		return fmt.Errorf(messages.ConfigMissingServiceFmt, source)
	}
	if c.TargetDir == "" {
		return fmt.Errorf(messages.ConfigMissingTargetFmt, source)
	}
	if c.SourceDir == "" {
		return fmt.Errorf(messages.ConfigMissingSourceFmt, source)
	}
	if len(c.BackupSuffix) < 2 || c.BackupSuffix[0] != '.' {
		return fmt.Errorf(messages.ConfigBadBackupSuffixFmt, source, c.BackupSuffix)
	}
	return nil
}

// isBareFileName reports whether name is a plain file name with no path
// components. Managed file names address both source and target dirs, so a
// separator would escape the managed directories.
func isBareFileName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return filepath.Base(name) == name
}
