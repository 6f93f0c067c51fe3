// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"wasmgo-cli/internal/config"
	"wasmgo-cli/internal/testutil"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake tools are POSIX shell scripts")
	}
}

// writeFakeTinygo installs a tinygo stand-in that creates the -o
// artifact on "build" and answers the probes the commands make.
func writeFakeTinygo(t *testing.T, dir string) {
	t.Helper()
	script := `#!/bin/sh
PATH="/usr/bin:/bin:$PATH"
if [ "$1" = "build" ]; then touch "$3"; exit 0; fi
if [ "$1" = "env" ]; then echo /opt/tinygo; exit 0; fi
echo "tinygo version 0.34.0"
`
	if err := os.WriteFile(filepath.Join(dir, "tinygo"), []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
}

// setupGoProject lays out a minimal buildable project fixture.
func setupGoProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(dir, "go.mod"), "module demo\n")
	testutil.MustWriteFile(t, filepath.Join(dir, "main.go"), "package main\n\nfunc main() {}\n")
	return dir
}

// executeCommand runs the root command with the given arguments and
// returns the captured stdout and stderr. Package-level flag state is
// reset afterwards so tests do not leak into each other.
func executeCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	// Point the config loader at an empty directory so the host's real
	// config file never influences a test.
	config.SetConfigDirOverride(t.TempDir())
	t.Cleanup(config.Reset)

	var outBuf, errBuf bytes.Buffer
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		verbose = false
		cfgFile = ""
		buildOutput = ""
		buildOptimization = ""
		buildTarget = "wasm"
		runWatch = false
		depsInstall = false
	})

	err = rootCmd.ExecuteContext(context.Background())
	return outBuf.String(), errBuf.String(), err
}
