// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// OptimizationDebug builds with no optimization and full debug info.
	// Defined locally to avoid coupling config to internal/toolchain;
	// the command layer casts to toolchain.OptimizationLevel at the boundary.
	OptimizationDebug Optimization = "debug"
	// OptimizationRelease builds with standard optimizations.
	OptimizationRelease Optimization = "release"
	// OptimizationSize optimizes for binary size and strips debug info.
	OptimizationSize Optimization = "size"

	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidOptimization is returned when an Optimization value is not recognized.
	ErrInvalidOptimization = errors.New("invalid optimization level")
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidOutputDirPath is returned when an OutputDirPath value is whitespace-only.
	ErrInvalidOutputDirPath = errors.New("invalid output dir path")
	// ErrInvalidUIConfig is the sentinel error wrapped by InvalidUIConfigError.
	ErrInvalidUIConfig = errors.New("invalid UI config")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// Optimization specifies the compilation optimization profile.
	Optimization string

	// InvalidOptimizationError is returned when an Optimization value is not
	// recognized. It wraps ErrInvalidOptimization for errors.Is() compatibility.
	InvalidOptimizationError struct {
		Value Optimization
	}

	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not
	// recognized. It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// OutputDirPath represents a filesystem path for compiled artifacts.
	// The zero value ("") is valid and means "use ./dist in the project".
	// Non-zero values must not be whitespace-only.
	OutputDirPath string

	// InvalidOutputDirPathError is returned when an OutputDirPath value is
	// non-empty but whitespace-only.
	InvalidOutputDirPathError struct {
		Value OutputDirPath
	}

	// InvalidUIConfigError is returned when a UIConfig has invalid fields.
	// It wraps ErrInvalidUIConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidUIConfigError struct {
		FieldErrors []error
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// OutputDir overrides where compiled artifacts are written
		OutputDir OutputDirPath `json:"output_dir" mapstructure:"output_dir"`
		// Optimization sets the default optimization profile for builds
		Optimization Optimization `json:"optimization" mapstructure:"optimization"`
		// UI configures the user interface
		UI UIConfig `json:"ui" mapstructure:"ui"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables verbose output
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}
)

// IsValid returns whether the UIConfig has valid fields.
// It delegates to ColorScheme.IsValid(); bool fields need no validation.
func (c UIConfig) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidUIConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidUIConfigError.
func (e *InvalidUIConfigError) Error() string {
	return fmt.Sprintf("invalid UI config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidUIConfig for errors.Is() compatibility.
func (e *InvalidUIConfigError) Unwrap() error { return ErrInvalidUIConfig }

// IsValid returns whether the Config has valid fields.
// It delegates to OutputDir.IsValid(), Optimization.IsValid(), and UI.IsValid().
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.OutputDir.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Optimization.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.UI.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// String returns the string representation of the OutputDirPath.
func (p OutputDirPath) String() string { return string(p) }

// IsValid returns whether the OutputDirPath is valid.
// The zero value ("") is valid (means "use ./dist in the project").
// Non-zero values must not be whitespace-only.
func (p OutputDirPath) IsValid() (bool, []error) {
	if p == "" {
		return true, nil
	}
	if strings.TrimSpace(string(p)) == "" {
		return false, []error{&InvalidOutputDirPathError{Value: p}}
	}
	return true, nil
}

// Error implements the error interface for InvalidOutputDirPathError.
func (e *InvalidOutputDirPathError) Error() string {
	return fmt.Sprintf("invalid output dir path %q: non-empty value must not be whitespace-only", e.Value)
}

// Unwrap returns ErrInvalidOutputDirPath for errors.Is() compatibility.
func (e *InvalidOutputDirPathError) Unwrap() error { return ErrInvalidOutputDirPath }

// Error implements the error interface for InvalidOptimizationError.
func (e *InvalidOptimizationError) Error() string {
	return fmt.Sprintf("invalid optimization level %q (valid: debug, release, size)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidOptimizationError) Unwrap() error {
	return ErrInvalidOptimization
}

// String returns the string representation of the Optimization.
func (o Optimization) String() string { return string(o) }

// IsValid returns whether the Optimization is one of the defined profiles,
// and a list of validation errors if it is not.
func (o Optimization) IsValid() (bool, []error) {
	switch o {
	case OptimizationDebug, OptimizationRelease, OptimizationSize:
		return true, nil
	default:
		return false, []error{&InvalidOptimizationError{Value: o}}
	}
}

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error {
	return ErrInvalidColorScheme
}

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// IsValid returns whether the ColorScheme is one of the defined color schemes,
// and a list of validation errors if it is not.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: cs}}
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		OutputDir:    "",
		Optimization: OptimizationRelease,
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
	}
}
