// SPDX-License-Identifier: MPL-2.0

package project

import (
	"os"
	"path/filepath"
	"strings"

	"wasmgo-cli/internal/manifest"
)

// Handle describes a target project for the duration of one command
// invocation. It is created per invocation and discarded afterwards.
type Handle struct {
	// Root is the project directory as given by the caller.
	Root string
	// EntryFile is the resolved entry point, empty when resolution failed.
	EntryFile string
	// Detected reports whether the plugin can handle this project at all.
	Detected bool
}

// New validates root, determines whether the plugin can handle the
// project, and resolves its entry file. A project that is handled but
// has no resolvable entry file yields a Handle with Detected set and an
// empty EntryFile; callers that need an entry point should use
// ResolveEntryFile directly for a typed error.
func New(root string, m *manifest.Manifest) (*Handle, error) {
	if err := ValidateDir(root); err != nil {
		return nil, err
	}

	h := &Handle{Root: root, Detected: CanHandle(root, m)}
	if entry, err := ResolveEntryFile(root, m.EntryFiles); err == nil {
		h.EntryFile = entry
	}
	return h, nil
}

// ValidateDir checks that path exists and is a directory.
func ValidateDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return &InvalidProjectError{Path: path, Reason: "directory does not exist"}
	}
	if !info.IsDir() {
		return &InvalidProjectError{Path: path, Reason: "path is not a directory"}
	}
	return nil
}

// CanHandle reports whether the plugin can handle the project at root:
// either a go.mod exists there, or the root contains a file with a
// manifest-claimed extension.
func CanHandle(root string, m *manifest.Manifest) bool {
	if fileExists(filepath.Join(root, "go.mod")) {
		return true
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(entry.Name()), "."))
		if ext != "" && m.SupportsExtension(ext) {
			return true
		}
	}
	return false
}

// ResolveEntryFile returns the first candidate that exists under root.
// Bare file names are also tried under the conventional cmd/
// subdirectory. When no candidate matches, the root is scanned for any
// .go file as a last resort before failing with NoEntryFileError.
func ResolveEntryFile(root string, candidates []string) (string, error) {
	for _, name := range candidates {
		path := filepath.Join(root, filepath.FromSlash(name))
		if fileExists(path) {
			return path, nil
		}

		// "main.go" may live under cmd/ in larger layouts; candidates
		// that already carry a directory are taken literally.
		if !strings.ContainsRune(name, '/') {
			path = filepath.Join(root, "cmd", name)
			if fileExists(path) {
				return path, nil
			}
		}
	}

	entries, err := os.ReadDir(root)
	if err == nil {
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if filepath.Ext(entry.Name()) == ".go" {
				return filepath.Join(root, entry.Name()), nil
			}
		}
	}

	return "", &NoEntryFileError{Root: root, Candidates: candidates}
}

// GoFiles lists the .go files directly under root, for project
// inspection output. Subdirectories are not walked.
func GoFiles(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, &InvalidProjectError{Path: root, Reason: err.Error()}
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if filepath.Ext(entry.Name()) == ".go" {
			files = append(files, entry.Name())
		}
	}
	return files, nil
}

// HasGoMod reports whether root carries a go.mod file.
func HasGoMod(root string) bool {
	return fileExists(filepath.Join(root, "go.mod"))
}

// fileExists checks if a file exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
