// SPDX-License-Identifier: MPL-2.0

package toolchain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrToolNotFound is the sentinel error wrapped by ToolNotFoundError.
	ErrToolNotFound = errors.New("build tool not found")
	// ErrInvocationFailed is the sentinel error wrapped by InvocationError.
	ErrInvocationFailed = errors.New("tool invocation failed")
	// ErrOutputDir is the sentinel error wrapped by OutputDirError.
	ErrOutputDir = errors.New("output directory creation failed")
)

// ToolNotFoundError is returned when a required external binary is
// absent from the environment. It wraps ErrToolNotFound for errors.Is()
// compatibility.
type ToolNotFoundError struct {
	// Tool is the binary name that could not be found.
	Tool string
	// Hint is an optional installation suggestion.
	Hint string
}

// Error implements the error interface.
func (e *ToolNotFoundError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("build tool not found: %s (%s)", e.Tool, e.Hint)
	}
	return fmt.Sprintf("build tool not found: %s", e.Tool)
}

// Unwrap returns ErrToolNotFound for errors.Is() compatibility.
func (e *ToolNotFoundError) Unwrap() error { return ErrToolNotFound }

// InvocationError is returned when an external tool exits non-zero or
// its output contract is violated (e.g., a build reports success but
// the artifact is missing). It carries the captured stderr so callers
// can surface the compiler's own diagnostics. It wraps
// ErrInvocationFailed for errors.Is() compatibility.
type InvocationError struct {
	Tool     string
	Args     []string
	ExitCode int
	Stderr   string
}

// Error implements the error interface.
func (e *InvocationError) Error() string {
	msg := fmt.Sprintf("%s %s: exit status %d", e.Tool, strings.Join(e.Args, " "), e.ExitCode)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}

// Unwrap returns ErrInvocationFailed for errors.Is() compatibility.
func (e *InvocationError) Unwrap() error { return ErrInvocationFailed }

// OutputDirError is returned when the build output directory cannot be
// created. It wraps ErrOutputDir for errors.Is() compatibility.
type OutputDirError struct {
	Path   string
	Reason error
}

// Error implements the error interface.
func (e *OutputDirError) Error() string {
	return fmt.Sprintf("output directory creation failed: %s: %v", e.Path, e.Reason)
}

// Unwrap returns ErrOutputDir for errors.Is() compatibility.
func (e *OutputDirError) Unwrap() error { return ErrOutputDir }
