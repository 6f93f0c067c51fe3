// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"wasmgo-cli/internal/testutil"
)

func TestCleanRemovesDist(t *testing.T) {
	proj := setupGoProject(t)
	dist := filepath.Join(proj, "dist")
	testutil.MustWriteFile(t, filepath.Join(dist, "main.wasm"), "stale")
	testutil.MustWriteFile(t, filepath.Join(dist, "index.html"), "<html>")

	stdout, _, err := executeCommand(t, "clean", proj)
	if err != nil {
		t.Fatalf("clean failed: %v\n%s", err, stdout)
	}
	if _, statErr := os.Stat(dist); !os.IsNotExist(statErr) {
		t.Errorf("dist should be removed, stat err = %v", statErr)
	}

	// Source files are untouched.
	if _, statErr := os.Stat(filepath.Join(proj, "main.go")); statErr != nil {
		t.Errorf("main.go should survive clean: %v", statErr)
	}
}

func TestCleanWithoutDistSucceeds(t *testing.T) {
	proj := setupGoProject(t)

	if _, _, err := executeCommand(t, "clean", proj); err != nil {
		t.Fatalf("clean on a pristine project failed: %v", err)
	}
}
