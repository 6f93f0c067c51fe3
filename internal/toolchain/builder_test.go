// SPDX-License-Identifier: MPL-2.0

package toolchain

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wasmgo-cli/internal/manifest"
	"wasmgo-cli/internal/project"
	"wasmgo-cli/internal/testutil"
)

var builderManifest = &manifest.Manifest{
	Name:       "wasmgo",
	Extensions: []string{"go"},
	EntryFiles: []string{"main.go", "cmd/main.go", "app.go", "go.mod"},
	Dependencies: manifest.Dependencies{
		Tools: []string{"go", "tinygo"},
	},
}

func setupProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(dir, "go.mod"), "module demo\n")
	testutil.MustWriteFile(t, filepath.Join(dir, "main.go"), "package main\n\nfunc main() {}\n")
	return dir
}

func TestCompileSuccess(t *testing.T) {
	skipOnWindows(t)
	toolDir := t.TempDir()
	// Fake tinygo: "build -o <path> ..." creates the artifact.
	writeScript(t, toolDir, "tinygo", `if [ "$1" = "build" ]; then touch "$3"; fi`+"\n")
	defer testutil.MustSetenv(t, "PATH", toolDir)()

	proj := setupProject(t)
	outDir := filepath.Join(t.TempDir(), "dist")

	res, err := NewBuilder(builderManifest, false).Compile(context.Background(), CompileConfig{
		ProjectPath:  proj,
		OutputDir:    outDir,
		Optimization: OptimizationRelease,
		Target:       TargetWasm,
	})
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}

	if want := filepath.Join(outDir, "main.wasm"); res.WasmPath != want {
		t.Errorf("WasmPath = %q, want %q", res.WasmPath, want)
	}
	if _, err := os.Stat(res.WasmPath); err != nil {
		t.Errorf("wasm artifact missing: %v", err)
	}
	if res.JSPath != "" {
		t.Errorf("JSPath = %q, want empty for wasm target", res.JSPath)
	}
}

func TestCompileMissingTinygo(t *testing.T) {
	defer testutil.MustSetenv(t, "PATH", t.TempDir())()

	_, err := NewBuilder(builderManifest, false).Compile(context.Background(), CompileConfig{
		ProjectPath:  setupProject(t),
		OutputDir:    t.TempDir(),
		Optimization: OptimizationRelease,
		Target:       TargetWasm,
	})
	if !errors.Is(err, ErrToolNotFound) {
		t.Errorf("Compile() without tinygo = %v, want ErrToolNotFound", err)
	}
}

func TestCompileNoEntryFile(t *testing.T) {
	skipOnWindows(t)
	toolDir := t.TempDir()
	writeScript(t, toolDir, "tinygo", "exit 0\n")
	defer testutil.MustSetenv(t, "PATH", toolDir)()

	_, err := NewBuilder(builderManifest, false).Compile(context.Background(), CompileConfig{
		ProjectPath:  t.TempDir(),
		OutputDir:    t.TempDir(),
		Optimization: OptimizationRelease,
		Target:       TargetWasm,
	})
	if !errors.Is(err, project.ErrNoEntryFile) {
		t.Errorf("Compile() on empty project = %v, want ErrNoEntryFile", err)
	}
}

func TestCompileBuildFailure(t *testing.T) {
	skipOnWindows(t)
	toolDir := t.TempDir()
	writeScript(t, toolDir, "tinygo", "echo 'cannot compile: unsupported package' >&2\nexit 1\n")
	defer testutil.MustSetenv(t, "PATH", toolDir)()

	_, err := NewBuilder(builderManifest, false).Compile(context.Background(), CompileConfig{
		ProjectPath:  setupProject(t),
		OutputDir:    t.TempDir(),
		Optimization: OptimizationRelease,
		Target:       TargetWasm,
	})

	var ie *InvocationError
	if !errors.As(err, &ie) {
		t.Fatalf("Compile() error = %v, want *InvocationError", err)
	}
	if !strings.Contains(ie.Stderr, "unsupported package") {
		t.Errorf("InvocationError.Stderr = %q, want compiler diagnostics", ie.Stderr)
	}
}

func TestCompileArtifactMissing(t *testing.T) {
	skipOnWindows(t)
	toolDir := t.TempDir()
	// Fake tinygo reports success but never writes the artifact.
	writeScript(t, toolDir, "tinygo", "exit 0\n")
	defer testutil.MustSetenv(t, "PATH", toolDir)()

	_, err := NewBuilder(builderManifest, false).Compile(context.Background(), CompileConfig{
		ProjectPath:  setupProject(t),
		OutputDir:    t.TempDir(),
		Optimization: OptimizationRelease,
		Target:       TargetWasm,
	})
	if !errors.Is(err, ErrInvocationFailed) {
		t.Errorf("Compile() with missing artifact = %v, want ErrInvocationFailed", err)
	}
}

func TestCompileWebAppTarget(t *testing.T) {
	skipOnWindows(t)
	toolDir := t.TempDir()
	tinygoRoot := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(tinygoRoot, "targets", "wasm_exec.js"), "// glue\n")

	writeScript(t, toolDir, "tinygo",
		`if [ "$1" = "build" ]; then touch "$3"; fi`+"\n"+
			`if [ "$1" = "env" ]; then echo "`+tinygoRoot+`"; fi`+"\n")
	defer testutil.MustSetenv(t, "PATH", toolDir)()

	outDir := filepath.Join(t.TempDir(), "dist")
	res, err := NewBuilder(builderManifest, false).Compile(context.Background(), CompileConfig{
		ProjectPath:  setupProject(t),
		OutputDir:    outDir,
		Optimization: OptimizationSize,
		Target:       TargetWebApp,
	})
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}

	if want := filepath.Join(outDir, "wasm_exec.js"); res.JSPath != want {
		t.Errorf("JSPath = %q, want %q", res.JSPath, want)
	}
	if len(res.AdditionalFiles) != 1 || filepath.Base(res.AdditionalFiles[0]) != "index.html" {
		t.Errorf("AdditionalFiles = %v, want index.html", res.AdditionalFiles)
	}

	html, err := os.ReadFile(filepath.Join(outDir, "index.html"))
	if err != nil {
		t.Fatalf("read index.html: %v", err)
	}
	if !strings.Contains(string(html), "main.wasm") {
		t.Errorf("index.html does not reference the wasm module:\n%s", html)
	}
}

func TestOutputName(t *testing.T) {
	tests := []struct {
		entry   string
		project string
		want    string
	}{
		{"/p/demo/main.go", "/p/demo", "main.wasm"},
		{"/p/demo/cmd/main.go", "/p/demo", "main.wasm"},
		{"/p/demo/app.go", "/p/demo", "app.wasm"},
		{"/p/demo/go.mod", "/p/demo", "demo.wasm"},
	}

	for _, tt := range tests {
		if got := outputName(tt.entry, tt.project); got != tt.want {
			t.Errorf("outputName(%s) = %q, want %q", tt.entry, got, tt.want)
		}
	}
}

func TestClean(t *testing.T) {
	proj := setupProject(t)
	dist := filepath.Join(proj, DistDirName)
	testutil.MustWriteFile(t, filepath.Join(dist, "main.wasm"), "stale")

	b := NewBuilder(builderManifest, false)
	if err := b.Clean(proj); err != nil {
		t.Fatalf("Clean() error: %v", err)
	}
	if _, err := os.Stat(dist); !os.IsNotExist(err) {
		t.Error("Clean() left the dist directory in place")
	}

	// Cleaning a project without dist is a no-op.
	if err := b.Clean(proj); err != nil {
		t.Errorf("Clean() on clean project = %v, want nil", err)
	}
}
