package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteStubWithExit(t *testing.T) {
	dir := t.TempDir()
	WriteStubWithExit(t, dir, "probe", 3)

	err := exec.Command(filepath.Join(dir, "probe")).Run()
	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("expected exit error, got %v", err)
	}
	if exitErr.ExitCode() != 3 {
		t.Fatalf("expected exit code 3, got %d", exitErr.ExitCode())
	}
}

func TestWriteStubExpectArg(t *testing.T) {
	dir := t.TempDir()
	WriteStubExpectArg(t, dir, "probe", "restart")

	if err := exec.Command(filepath.Join(dir, "probe"), "restart", "klipper").Run(); err != nil {
		t.Fatalf("expected success when arg present: %v", err)
	}
	if err := exec.Command(filepath.Join(dir, "probe"), "status").Run(); err == nil {
		t.Fatalf("expected failure when arg absent")
	}
}

func TestWriteStubRecording(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "calls.log")
	WriteStubRecording(t, dir, "probe", logPath)

	if err := exec.Command(filepath.Join(dir, "probe"), "one", "two").Run(); err != nil {
		t.Fatalf("run stub: %v", err)
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if strings.TrimSpace(string(data)) != "one two" {
		t.Fatalf("unexpected recorded args: %q", string(data))
	}
}

func TestStubPath(t *testing.T) {
	dir := t.TempDir()
	WriteStub(t, dir, "probe")
	StubPath(t, dir)

	resolved, err := exec.LookPath("probe")
	if err != nil {
		t.Fatalf("lookpath: %v", err)
	}
	if resolved != filepath.Join(dir, "probe") {
		t.Fatalf("expected stub to resolve from PATH, got %s", resolved)
	}
}
