// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wasmgo-cli/internal/config"
	"wasmgo-cli/internal/testutil"
	"wasmgo-cli/internal/toolchain"
)

func TestBuildProducesWasm(t *testing.T) {
	skipOnWindows(t)
	toolDir := t.TempDir()
	writeFakeTinygo(t, toolDir)
	defer testutil.MustSetenv(t, "PATH", toolDir)()

	proj := setupGoProject(t)

	stdout, _, err := executeCommand(t, "build", proj)
	if err != nil {
		t.Fatalf("build failed: %v\n%s", err, stdout)
	}

	wasm := filepath.Join(proj, "dist", "main.wasm")
	if _, statErr := os.Stat(wasm); statErr != nil {
		t.Errorf("expected artifact at %s: %v", wasm, statErr)
	}
	if !strings.Contains(stdout, "main.wasm") {
		t.Errorf("output should name the artifact:\n%s", stdout)
	}
}

func TestBuildHonorsOutputFlag(t *testing.T) {
	skipOnWindows(t)
	toolDir := t.TempDir()
	writeFakeTinygo(t, toolDir)
	defer testutil.MustSetenv(t, "PATH", toolDir)()

	proj := setupGoProject(t)
	outDir := filepath.Join(t.TempDir(), "artifacts")

	stdout, _, err := executeCommand(t, "build", "-o", outDir, proj)
	if err != nil {
		t.Fatalf("build failed: %v\n%s", err, stdout)
	}
	if _, statErr := os.Stat(filepath.Join(outDir, "main.wasm")); statErr != nil {
		t.Errorf("expected artifact in %s: %v", outDir, statErr)
	}
}

func TestBuildRejectsInvalidOptimization(t *testing.T) {
	proj := setupGoProject(t)

	_, stderr, err := executeCommand(t, "build", "--optimization", "turbo", proj)
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("build should fail with *ExitError, got %v", err)
	}
	if !errors.Is(err, toolchain.ErrInvalidOptimizationLevel) {
		t.Errorf("error should wrap ErrInvalidOptimizationLevel, got %v", err)
	}
	if !strings.Contains(stderr, "turbo") {
		t.Errorf("stderr should name the bad value:\n%s", stderr)
	}
}

func TestBuildRejectsInvalidTarget(t *testing.T) {
	proj := setupGoProject(t)

	_, _, err := executeCommand(t, "build", "--target", "native", proj)
	if !errors.Is(err, toolchain.ErrInvalidTargetType) {
		t.Errorf("error should wrap ErrInvalidTargetType, got %v", err)
	}
}

func TestBuildMissingTinygo(t *testing.T) {
	defer testutil.MustSetenv(t, "PATH", t.TempDir())()

	proj := setupGoProject(t)

	_, stderr, err := executeCommand(t, "build", proj)
	if !errors.Is(err, toolchain.ErrToolNotFound) {
		t.Fatalf("error should wrap ErrToolNotFound, got %v", err)
	}
	if !strings.Contains(stderr, "tinygo") {
		t.Errorf("stderr should name the missing tool:\n%s", stderr)
	}
}

func TestResolveBuildConfigDefaults(t *testing.T) {
	config.SetConfigDirOverride(t.TempDir())
	t.Cleanup(config.Reset)
	proj := setupGoProject(t)

	cfg, err := resolveBuildConfig(proj)
	if err != nil {
		t.Fatalf("resolveBuildConfig() error: %v", err)
	}
	if want := filepath.Join(proj, toolchain.DistDirName); cfg.OutputDir != want {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, want)
	}
	if cfg.Optimization != toolchain.OptimizationRelease {
		t.Errorf("Optimization = %q, want release", cfg.Optimization)
	}
	if cfg.Target != toolchain.TargetWasm {
		t.Errorf("Target = %q, want wasm", cfg.Target)
	}
}

func TestResolveBuildConfigReadsConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	testutil.MustWriteFile(t, cfgPath, "output_dir = \"/srv/wasm\"\noptimization = \"debug\"\n")
	config.SetConfigFilePathOverride(cfgPath)
	t.Cleanup(config.Reset)

	cfg, err := resolveBuildConfig(setupGoProject(t))
	if err != nil {
		t.Fatalf("resolveBuildConfig() error: %v", err)
	}
	if cfg.Optimization != toolchain.OptimizationDebug {
		t.Errorf("Optimization = %q, want debug from config file", cfg.Optimization)
	}
	if cfg.OutputDir != "/srv/wasm" {
		t.Errorf("OutputDir = %q, want /srv/wasm from config file", cfg.OutputDir)
	}
}

func TestResolveBuildConfigFlagWinsOverDefault(t *testing.T) {
	config.SetConfigDirOverride(t.TempDir())
	t.Cleanup(config.Reset)
	proj := setupGoProject(t)

	buildOptimization = "size"
	buildOutput = "/tmp/custom-out"
	t.Cleanup(func() { buildOptimization = ""; buildOutput = "" })

	cfg, err := resolveBuildConfig(proj)
	if err != nil {
		t.Fatalf("resolveBuildConfig() error: %v", err)
	}
	if cfg.Optimization != toolchain.OptimizationSize {
		t.Errorf("Optimization = %q, want size", cfg.Optimization)
	}
	if cfg.OutputDir != "/tmp/custom-out" {
		t.Errorf("OutputDir = %q, want /tmp/custom-out", cfg.OutputDir)
	}
}
