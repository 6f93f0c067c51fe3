// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"path/filepath"
	"strings"
	"testing"

	"wasmgo-cli/internal/testutil"
)

func TestGetVersionString(t *testing.T) {
	// Not parallel: subtests mutate package-level Version/Commit/BuildDate vars.

	t.Run("ldflags version takes priority", func(t *testing.T) {
		origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
		t.Cleanup(func() {
			Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
		})

		Version = "v0.3.0"
		Commit = "abc1234"
		BuildDate = "2026-08-01T10:00:00Z"

		got := getVersionString()
		want := "v0.3.0 (commit: abc1234, built: 2026-08-01T10:00:00Z)"
		if got != want {
			t.Errorf("getVersionString() = %q, want %q", got, want)
		}
	})

	t.Run("dev build fallback", func(t *testing.T) {
		origVersion := Version
		t.Cleanup(func() { Version = origVersion })

		Version = "dev"
		if got := getVersionString(); got != "dev (built from source)" {
			t.Errorf("getVersionString() = %q", got)
		}
	})
}

func TestVerboseFlagFromConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	testutil.MustWriteFile(t, cfgPath, "[ui]\nverbose = true\n")

	if _, _, err := executeCommand(t, "--config", cfgPath, "frameworks"); err != nil {
		t.Fatalf("frameworks failed: %v", err)
	}
	if !verbose {
		t.Error("verbose should be enabled by the config file")
	}
}

func TestUnknownCommandFails(t *testing.T) {
	_, _, err := executeCommand(t, "bogus")
	if err == nil {
		t.Fatal("unknown command should fail")
	}
	if !strings.Contains(err.Error(), "bogus") {
		t.Errorf("error should name the unknown command, got %v", err)
	}
}
