// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with TOML as the file format.
//
// Configuration is loaded from ~/.config/wasmgo/config.toml (or XDG equivalent on Linux,
// ~/Library/Application Support/wasmgo/config.toml on macOS, %APPDATA%\wasmgo\config.toml
// on Windows), with a config.toml in the current directory honored as a project-local
// fallback. All values have defaults, so a missing config file is not an error.
package config
