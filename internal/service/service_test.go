package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/TheFuzzyGiggler/klipper-fan-tests/internal/testutil"
)

func TestIsActiveActive(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteStub(t, dir, "systemctl")
	testutil.StubPath(t, dir)

	active, err := NewClient().IsActive(context.Background(), "klipper")
	if err != nil {
		t.Fatalf("IsActive error: %v", err)
	}
	if !active {
		t.Fatalf("expected active")
	}
}

func TestIsActiveInactive(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteStubWithExit(t, dir, "systemctl", 3)
	testutil.StubPath(t, dir)

	active, err := NewClient().IsActive(context.Background(), "klipper")
	if err != nil {
		t.Fatalf("IsActive error: %v", err)
	}
	if active {
		t.Fatalf("expected inactive")
	}
}

func TestIsActiveProbeFailure(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteStubWithExit(t, dir, "systemctl", 7)
	testutil.StubPath(t, dir)

	_, err := NewClient().IsActive(context.Background(), "klipper")
	if err == nil {
		t.Fatalf("expected probe error for exit code 7")
	}
	if !strings.Contains(err.Error(), "klipper") {
		t.Fatalf("expected service name in error, got %v", err)
	}
}

func TestRestart(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "calls.log")
	testutil.WriteStubRecording(t, dir, "sudo", logPath)
	testutil.StubPath(t, dir)

	if err := NewClient().Restart(context.Background(), "klipper"); err != nil {
		t.Fatalf("Restart error: %v", err)
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if strings.TrimSpace(string(data)) != "systemctl restart klipper" {
		t.Fatalf("unexpected sudo invocation: %q", string(data))
	}
}

func TestRestartFailure(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteStubWithExit(t, dir, "sudo", 1)
	testutil.StubPath(t, dir)

	err := NewClient().Restart(context.Background(), "klipper")
	if err == nil {
		t.Fatalf("expected restart error")
	}
	if !strings.Contains(err.Error(), "klipper") {
		t.Fatalf("expected service name in error, got %v", err)
	}
}
