// SPDX-License-Identifier: MPL-2.0

package project

import (
	"errors"
	"path/filepath"
	"testing"

	"wasmgo-cli/internal/manifest"
	"wasmgo-cli/internal/testutil"
)

var testManifest = &manifest.Manifest{
	Name:       "wasmgo",
	Extensions: []string{"go"},
	EntryFiles: []string{"main.go", "cmd/main.go", "app.go", "go.mod"},
}

func TestResolveEntryFileAtRoot(t *testing.T) {
	dir := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(dir, "main.go"), "package main\n")

	got, err := ResolveEntryFile(dir, testManifest.EntryFiles)
	if err != nil {
		t.Fatalf("ResolveEntryFile() error: %v", err)
	}
	if want := filepath.Join(dir, "main.go"); got != want {
		t.Errorf("ResolveEntryFile() = %q, want %q", got, want)
	}
}

func TestResolveEntryFileInCmdDir(t *testing.T) {
	dir := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(dir, "cmd", "main.go"), "package main\n")

	got, err := ResolveEntryFile(dir, testManifest.EntryFiles)
	if err != nil {
		t.Fatalf("ResolveEntryFile() error: %v", err)
	}
	if want := filepath.Join(dir, "cmd", "main.go"); got != want {
		t.Errorf("ResolveEntryFile() = %q, want %q", got, want)
	}
}

func TestResolveEntryFilePriorityOrder(t *testing.T) {
	dir := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(dir, "app.go"), "package main\n")
	testutil.MustWriteFile(t, filepath.Join(dir, "main.go"), "package main\n")

	got, err := ResolveEntryFile(dir, testManifest.EntryFiles)
	if err != nil {
		t.Fatalf("ResolveEntryFile() error: %v", err)
	}
	// main.go outranks app.go regardless of directory order.
	if want := filepath.Join(dir, "main.go"); got != want {
		t.Errorf("ResolveEntryFile() = %q, want %q", got, want)
	}
}

func TestResolveEntryFileFallsBackToAnyGoFile(t *testing.T) {
	dir := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(dir, "widget.go"), "package main\n")

	got, err := ResolveEntryFile(dir, testManifest.EntryFiles)
	if err != nil {
		t.Fatalf("ResolveEntryFile() error: %v", err)
	}
	if want := filepath.Join(dir, "widget.go"); got != want {
		t.Errorf("ResolveEntryFile() = %q, want %q", got, want)
	}
}

func TestResolveEntryFileNotFound(t *testing.T) {
	dir := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(dir, "README.md"), "# nothing to build\n")

	_, err := ResolveEntryFile(dir, testManifest.EntryFiles)
	if !errors.Is(err, ErrNoEntryFile) {
		t.Fatalf("ResolveEntryFile() = %v, want ErrNoEntryFile", err)
	}

	var nef *NoEntryFileError
	if !errors.As(err, &nef) {
		t.Fatalf("error %v is not a *NoEntryFileError", err)
	}
	if len(nef.Candidates) != len(testManifest.EntryFiles) {
		t.Errorf("Candidates = %v, want the full priority list", nef.Candidates)
	}
}

func TestCanHandle(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, dir string)
		want  bool
	}{
		{
			name: "go.mod only",
			setup: func(t *testing.T, dir string) {
				testutil.MustWriteFile(t, filepath.Join(dir, "go.mod"), "module demo\n")
			},
			want: true,
		},
		{
			name: "go file only",
			setup: func(t *testing.T, dir string) {
				testutil.MustWriteFile(t, filepath.Join(dir, "tool.go"), "package main\n")
			},
			want: true,
		},
		{
			name: "uppercase extension",
			setup: func(t *testing.T, dir string) {
				testutil.MustWriteFile(t, filepath.Join(dir, "MAIN.GO"), "package main\n")
			},
			want: true,
		},
		{
			name:  "empty directory",
			setup: func(t *testing.T, dir string) {},
			want:  false,
		},
		{
			name: "unrelated files",
			setup: func(t *testing.T, dir string) {
				testutil.MustWriteFile(t, filepath.Join(dir, "main.rs"), "fn main() {}\n")
			},
			want: false,
		},
		{
			name: "go file in subdirectory only",
			setup: func(t *testing.T, dir string) {
				testutil.MustWriteFile(t, filepath.Join(dir, "pkg", "lib.go"), "package lib\n")
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			tt.setup(t, dir)

			if got := CanHandle(dir, testManifest); got != tt.want {
				t.Errorf("CanHandle() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidateDir(t *testing.T) {
	dir := t.TempDir()
	if err := ValidateDir(dir); err != nil {
		t.Errorf("ValidateDir(existing dir) = %v, want nil", err)
	}

	if err := ValidateDir(filepath.Join(dir, "missing")); !errors.Is(err, ErrInvalidProject) {
		t.Errorf("ValidateDir(missing) = %v, want ErrInvalidProject", err)
	}

	file := filepath.Join(dir, "file.txt")
	testutil.MustWriteFile(t, file, "x")
	if err := ValidateDir(file); !errors.Is(err, ErrInvalidProject) {
		t.Errorf("ValidateDir(file) = %v, want ErrInvalidProject", err)
	}
}

func TestNewHandle(t *testing.T) {
	dir := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(dir, "go.mod"), "module demo\n")
	testutil.MustWriteFile(t, filepath.Join(dir, "main.go"), "package main\n")

	h, err := New(dir, testManifest)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if !h.Detected {
		t.Error("Detected = false, want true")
	}
	if want := filepath.Join(dir, "main.go"); h.EntryFile != want {
		t.Errorf("EntryFile = %q, want %q", h.EntryFile, want)
	}
}

func TestNewHandleUndetected(t *testing.T) {
	dir := t.TempDir()

	h, err := New(dir, testManifest)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if h.Detected {
		t.Error("Detected = true for empty directory, want false")
	}
	if h.EntryFile != "" {
		t.Errorf("EntryFile = %q, want empty", h.EntryFile)
	}
}

func TestGoFilesAndHasGoMod(t *testing.T) {
	dir := t.TempDir()
	testutil.MustWriteFile(t, filepath.Join(dir, "main.go"), "package main\n")
	testutil.MustWriteFile(t, filepath.Join(dir, "util.go"), "package main\n")
	testutil.MustWriteFile(t, filepath.Join(dir, "go.mod"), "module demo\n")
	testutil.MustMkdirAll(t, filepath.Join(dir, "vendor"), 0o755)

	files, err := GoFiles(dir)
	if err != nil {
		t.Fatalf("GoFiles() error: %v", err)
	}
	if len(files) != 2 {
		t.Errorf("GoFiles() = %v, want 2 entries", files)
	}

	if !HasGoMod(dir) {
		t.Error("HasGoMod() = false, want true")
	}
}
