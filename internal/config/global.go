// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"sync"
)

var (
	// globalMu guards the package-level cache and overrides below.
	globalMu sync.Mutex

	// globalConfig caches the result of Load so repeated lookups during a
	// single invocation do not re-read the filesystem.
	globalConfig *Config

	// configFilePathOverride forces Load to read a specific config file,
	// set from the --config flag.
	configFilePathOverride string

	// configDirOverride allows tests to override the config directory.
	// This is necessary because os.UserHomeDir() doesn't reliably respect
	// the HOME environment variable on all platforms (e.g., macOS in CI).
	configDirOverride string
)

// Load returns the process-wide configuration, reading it from disk on
// first use and caching it afterwards. Use a Provider for uncached,
// option-driven loading.
func Load() (*Config, error) {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalConfig != nil {
		return globalConfig, nil
	}

	cfg, _, err := loadWithOptions(context.Background(), LoadOptions{
		ConfigFilePath: configFilePathOverride,
	})
	if err != nil {
		// Fall back to defaults so callers still get a usable config
		// alongside the error.
		return DefaultConfig(), err
	}

	globalConfig = cfg
	return globalConfig, nil
}

// SetConfigFilePathOverride sets a custom config file path (from the
// --config flag) and clears the cache so the next Load honors it.
func SetConfigFilePathOverride(path string) {
	globalMu.Lock()
	defer globalMu.Unlock()
	configFilePathOverride = path
	globalConfig = nil
}

// SetConfigDirOverride sets a custom config directory path.
// This is primarily intended for testing to bypass os.UserHomeDir() which
// doesn't reliably respect the HOME env var on all platforms (e.g., macOS in CI).
func SetConfigDirOverride(dir string) {
	globalMu.Lock()
	defer globalMu.Unlock()
	configDirOverride = dir
	globalConfig = nil
}

// Reset clears the cache and all overrides. Call from test cleanup to
// restore defaults.
func Reset() {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalConfig = nil
	configFilePathOverride = ""
	configDirOverride = ""
}
