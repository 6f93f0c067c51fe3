// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	_ "embed"
	"os"
	"slices"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"wasmgo-cli/pkg/cueutil"
)

// DescriptorFileName is the on-disk descriptor that overrides the
// embedded one when present in the working directory.
const DescriptorFileName = "plugin.toml"

//go:embed plugin.toml
var embeddedDescriptor []byte

//go:embed manifest_schema.cue
var manifestSchema string

type (
	// Manifest is the static plugin descriptor. It is read once at
	// startup and never mutated.
	Manifest struct {
		// Name identifies the plugin to the host orchestrator.
		Name        string `toml:"name"`
		Version     string `toml:"version"`
		Description string `toml:"description"`
		Author      string `toml:"author"`

		// Extensions are the file extensions (without dot) this plugin claims.
		Extensions []string `toml:"extensions"`

		// EntryFiles are entry file candidates in resolution priority
		// order; the first existing match wins.
		EntryFiles []string `toml:"entry_files"`

		Capabilities Capabilities `toml:"capabilities"`
		Dependencies Dependencies `toml:"dependencies"`
	}

	// Capabilities are the feature flags the plugin advertises to the host.
	Capabilities struct {
		CompileWasm   bool     `toml:"compile_wasm"`
		CompileWebApp bool     `toml:"compile_webapp"`
		LiveReload    bool     `toml:"live_reload"`
		Optimization  bool     `toml:"optimization"`
		CustomTargets []string `toml:"custom_targets"`
	}

	// Dependencies lists the external tools the plugin shells out to.
	Dependencies struct {
		// Tools are probed in order; report order follows list order.
		Tools []string `toml:"tools"`
	}
)

// Parse decodes and validates a TOML descriptor. path is used only in
// error messages; pass "" for the embedded descriptor.
func Parse(data []byte, path string) (*Manifest, error) {
	filename := path
	if filename == "" {
		filename = "embedded " + DescriptorFileName
	}

	if err := cueutil.CheckFileSize(data, cueutil.DefaultMaxFileSize, filename); err != nil {
		return nil, &ParseError{Path: path, Reason: err}
	}

	// Decode to a generic map first so the CUE schema sees the raw
	// shape, including unknown or mistyped keys.
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, &ParseError{Path: path, Reason: err}
	}

	if err := cueutil.Validate(manifestSchema, "#Manifest", raw, filename); err != nil {
		return nil, &ParseError{Path: path, Reason: err}
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, &ParseError{Path: path, Reason: err}
	}

	return &m, nil
}

// Load reads the descriptor from path. With an empty path it prefers a
// plugin.toml in the working directory and falls back to the embedded
// descriptor, mirroring how the original plugin resolves its metadata.
func Load(path string) (*Manifest, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, &ParseError{Path: path, Reason: err}
		}
		return Parse(data, path)
	}

	if data, err := os.ReadFile(DescriptorFileName); err == nil {
		return Parse(data, DescriptorFileName)
	}

	return Parse(embeddedDescriptor, "")
}

// defaultOnce caches the embedded descriptor parse. The embedded
// descriptor is covered by tests, so a failure here is a build defect,
// not a runtime condition.
var defaultOnce = sync.OnceValues(func() (*Manifest, error) {
	return Parse(embeddedDescriptor, "")
})

// Default returns the manifest parsed from the embedded descriptor.
// The result is cached for the lifetime of the process.
func Default() (*Manifest, error) {
	return defaultOnce()
}

// SupportsExtension reports whether ext (without dot, case-insensitive
// on the caller's side) is claimed by the plugin.
func (m *Manifest) SupportsExtension(ext string) bool {
	return slices.Contains(m.Extensions, ext)
}

// SupportsTarget reports whether the named custom target is advertised.
func (m *Manifest) SupportsTarget(target string) bool {
	return slices.Contains(m.Capabilities.CustomTargets, target)
}
