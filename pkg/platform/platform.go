// SPDX-License-Identifier: MPL-2.0

// Package platform provides cross-platform compatibility utilities.
//
// This package centralizes the platform-specific concerns of invoking
// external toolchain binaries: GOOS string constants and executable
// naming conventions.
package platform

import "runtime"

// OS name constants for runtime.GOOS comparisons.
// Centralizes the string literals to avoid scattered magic strings.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)

// ExeName returns the platform-specific executable name for a tool.
// On Windows the ".exe" suffix is appended; elsewhere the name is
// returned unchanged. exec.LookPath handles PATHEXT itself, so this is
// only needed when constructing explicit file paths.
func ExeName(tool string) string {
	if runtime.GOOS == Windows {
		return tool + ".exe"
	}
	return tool
}

// IsWindows reports whether the current platform is Windows.
func IsWindows() bool {
	return runtime.GOOS == Windows
}
