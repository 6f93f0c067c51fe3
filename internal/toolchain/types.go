// SPDX-License-Identifier: MPL-2.0

package toolchain

import "errors"

const (
	// OptimizationDebug compiles fast and keeps debug symbols.
	OptimizationDebug OptimizationLevel = "debug"
	// OptimizationRelease is the balanced default for production builds.
	OptimizationRelease OptimizationLevel = "release"
	// OptimizationSize produces the smallest possible wasm binary.
	OptimizationSize OptimizationLevel = "size"

	// TargetWasm emits a standard WebAssembly module.
	TargetWasm TargetType = "wasm"
	// TargetWebApp emits a wasm module plus the JS glue and HTML loader
	// for running it in a browser.
	TargetWebApp TargetType = "webapp"
)

var (
	// ErrInvalidOptimizationLevel is returned when an OptimizationLevel value is not recognized.
	ErrInvalidOptimizationLevel = errors.New("invalid optimization level")
	// ErrInvalidTargetType is returned when a TargetType value is not recognized.
	ErrInvalidTargetType = errors.New("invalid target type")
)

type (
	// OptimizationLevel selects the TinyGo optimization flags.
	OptimizationLevel string

	// TargetType selects what artifacts a compilation produces.
	TargetType string
)

// IsValid reports whether the OptimizationLevel is one of the known values.
func (o OptimizationLevel) IsValid() bool {
	switch o {
	case OptimizationDebug, OptimizationRelease, OptimizationSize:
		return true
	default:
		return false
	}
}

// Flags returns the tinygo build flags for the optimization level.
// An unknown level falls back to the release flags.
func (o OptimizationLevel) Flags() []string {
	switch o {
	case OptimizationDebug:
		return []string{"-opt=1"}
	case OptimizationSize:
		return []string{"-opt=z", "-no-debug"}
	default:
		return []string{"-opt=2"}
	}
}

// ParseOptimizationLevel validates a user-supplied optimization level.
func ParseOptimizationLevel(s string) (OptimizationLevel, error) {
	o := OptimizationLevel(s)
	if !o.IsValid() {
		return "", ErrInvalidOptimizationLevel
	}
	return o, nil
}

// IsValid reports whether the TargetType is one of the known values.
func (t TargetType) IsValid() bool {
	switch t {
	case TargetWasm, TargetWebApp:
		return true
	default:
		return false
	}
}

// ParseTargetType validates a user-supplied target type.
func ParseTargetType(s string) (TargetType, error) {
	t := TargetType(s)
	if !t.IsValid() {
		return "", ErrInvalidTargetType
	}
	return t, nil
}
