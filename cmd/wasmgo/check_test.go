// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"strings"
	"testing"

	"wasmgo-cli/internal/testutil"
)

func TestCheckReadyProject(t *testing.T) {
	skipOnWindows(t)
	toolDir := t.TempDir()
	testutil.WriteFakeTool(t, toolDir, "go", "go version go1.25 linux/amd64", 0)
	writeFakeTinygo(t, toolDir)
	defer testutil.MustSetenv(t, "PATH", toolDir)()

	proj := setupGoProject(t)

	stdout, _, err := executeCommand(t, "check", proj)
	if err != nil {
		t.Fatalf("check failed: %v\n%s", err, stdout)
	}
	for _, want := range []string{"can be handled", "go.mod present", "main.go", "ready to build"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output missing %q:\n%s", want, stdout)
		}
	}
}

func TestCheckMissingTool(t *testing.T) {
	skipOnWindows(t)
	toolDir := t.TempDir()
	testutil.WriteFakeTool(t, toolDir, "go", "go version go1.25 linux/amd64", 0)
	// No tinygo on PATH.
	defer testutil.MustSetenv(t, "PATH", toolDir)()

	proj := setupGoProject(t)

	stdout, _, err := executeCommand(t, "check", proj)
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("check should fail with *ExitError, got %v", err)
	}
	if !strings.Contains(stdout, "tinygo not found") {
		t.Errorf("output should report the missing tool:\n%s", stdout)
	}
}

func TestCheckNonexistentDirectory(t *testing.T) {
	_, stderr, err := executeCommand(t, "check", t.TempDir()+"/does-not-exist")
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("check should fail with *ExitError, got %v", err)
	}
	if !strings.Contains(stderr, "invalid project") {
		t.Errorf("stderr should explain the failure:\n%s", stderr)
	}
}

func TestCheckSingleFileProjectWarnsAboutGoMod(t *testing.T) {
	skipOnWindows(t)
	toolDir := t.TempDir()
	testutil.WriteFakeTool(t, toolDir, "go", "go version go1.25 linux/amd64", 0)
	writeFakeTinygo(t, toolDir)
	defer testutil.MustSetenv(t, "PATH", toolDir)()

	proj := t.TempDir()
	testutil.MustWriteFile(t, proj+"/main.go", "package main\n\nfunc main() {}\n")

	stdout, _, err := executeCommand(t, "check", proj)
	if err != nil {
		t.Fatalf("check failed: %v\n%s", err, stdout)
	}
	if !strings.Contains(stdout, "go.mod missing") {
		t.Errorf("output should warn about missing go.mod:\n%s", stdout)
	}
}
