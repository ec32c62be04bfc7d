// Package testutil provides helpers for tests that execute host commands.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// WriteStub writes an executable shell stub named name that exits successfully.
func WriteStub(t *testing.T, dir string, name string) {
	t.Helper()
	WriteStubWithExit(t, dir, name, 0)
}

// WriteStubWithExit writes an executable shell stub that exits with exitCode.
func WriteStubWithExit(t *testing.T, dir string, name string, exitCode int) {
	t.Helper()
	path := filepath.Join(dir, name)
	content := []byte(fmt.Sprintf("#!/bin/sh\nexit %d\n", exitCode))
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
}

// WriteRecordingStub writes an executable shell stub that appends its
// arguments, one per line, to recordPath and exits with exitCode. Tests use
// it to stand in for systemctl and the deployed interpreter.
func WriteRecordingStub(t *testing.T, dir string, name string, recordPath string, exitCode int) {
	t.Helper()
	path := filepath.Join(dir, name)
	content := []byte(fmt.Sprintf("#!/bin/sh\nfor arg in \"$@\"; do\n  printf '%%s\\n' \"$arg\" >> %q\ndone\nexit %d\n", recordPath, exitCode))
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("write recording stub: %v", err)
	}
}

// PrependPath returns a PATH value with dir ahead of the current PATH.
func PrependPath(dir string) string {
	return dir + string(os.PathListSeparator) + os.Getenv("PATH")
}

// WithWorkingDir runs fn with dir as the current working directory and
// restores the previous directory afterwards.
func WithWorkingDir(t *testing.T, dir string, fn func()) {
	t.Helper()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer func() {
		if err := os.Chdir(cwd); err != nil {
			t.Fatalf("restore chdir: %v", err)
		}
	}()
	fn()
}
