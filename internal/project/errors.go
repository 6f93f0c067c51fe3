// SPDX-License-Identifier: MPL-2.0

package project

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoEntryFile is the sentinel error wrapped by NoEntryFileError.
	ErrNoEntryFile = errors.New("no entry file found")
	// ErrInvalidProject is the sentinel error wrapped by InvalidProjectError.
	ErrInvalidProject = errors.New("invalid project structure")
)

// NoEntryFileError is returned when none of the manifest's entry file
// candidates exist under the project root. It wraps ErrNoEntryFile for
// errors.Is() compatibility.
type NoEntryFileError struct {
	// Root is the project directory that was searched.
	Root string
	// Candidates are the entry file names that were tried, in priority order.
	Candidates []string
}

// Error implements the error interface.
func (e *NoEntryFileError) Error() string {
	return fmt.Sprintf("no entry file found in %s (expected one of: %s)",
		e.Root, strings.Join(e.Candidates, ", "))
}

// Unwrap returns ErrNoEntryFile for errors.Is() compatibility.
func (e *NoEntryFileError) Unwrap() error { return ErrNoEntryFile }

// InvalidProjectError is returned when the target path does not exist,
// is not a directory, or is otherwise not a usable project root. It
// wraps ErrInvalidProject for errors.Is() compatibility.
type InvalidProjectError struct {
	Path   string
	Reason string
}

// Error implements the error interface.
func (e *InvalidProjectError) Error() string {
	return fmt.Sprintf("invalid project %s: %s", e.Path, e.Reason)
}

// Unwrap returns ErrInvalidProject for errors.Is() compatibility.
func (e *InvalidProjectError) Unwrap() error { return ErrInvalidProject }
