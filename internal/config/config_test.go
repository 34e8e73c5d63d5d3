package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mitchellh/go-homedir"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(t.TempDir(), "kft.toml"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Service != "klipper" {
		t.Fatalf("unexpected service: %q", cfg.Service)
	}
	if cfg.BackupSuffix != ".bak" {
		t.Fatalf("unexpected backup suffix: %q", cfg.BackupSuffix)
	}
	want := filepath.Join(home, "klipper", "klippy", "extras")
	if cfg.TargetDir != want {
		t.Fatalf("expected expanded target dir %q, got %q", want, cfg.TargetDir)
	}
	if len(cfg.Files) != 3 {
		t.Fatalf("unexpected default files: %v", cfg.Files)
	}
}

func TestLoadPartialConfigFillsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kft.toml")
	content := "target_dir = \"" + dir + "\"\nfiles = [\"fan.py\"]\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.TargetDir != dir {
		t.Fatalf("unexpected target dir: %q", cfg.TargetDir)
	}
	if len(cfg.Files) != 1 || cfg.Files[0] != "fan.py" {
		t.Fatalf("unexpected files: %v", cfg.Files)
	}
	if cfg.Service != "klipper" {
		t.Fatalf("expected default service, got %q", cfg.Service)
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("service = \"klipper\"\nbogus = true\n"), "test config")
	if err == nil {
		t.Fatalf("expected unknown-key error")
	}
	if !strings.Contains(err.Error(), "test config") {
		t.Fatalf("expected source in error, got %v", err)
	}
}

func TestParseRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"empty files":     "files = []\n",
		"path in name":    "files = [\"../fan.py\"]\n",
		"dot name":        "files = [\".\"]\n",
		"bad suffix":      "backup_suffix = \"bak\"\n",
		"bare dot suffix": "backup_suffix = \".\"\n",
	}
	for name, content := range cases {
		if _, err := Parse([]byte(content), "test config"); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestParseRejectsInvalidTOML(t *testing.T) {
	if _, err := Parse([]byte("service = [unclosed"), "test config"); err == nil {
		t.Fatalf("expected TOML parse error")
	}
}

func TestValidateEmptyService(t *testing.T) {
	cfg := Default()
	cfg.Service = ""
	if err := cfg.Validate("test config"); err == nil {
		t.Fatalf("expected validation error for empty service")
	}
}
