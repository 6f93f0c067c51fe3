// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"errors"
	"fmt"
)

// ErrManifestParse is the sentinel error wrapped by ParseError.
var ErrManifestParse = errors.New("invalid plugin manifest")

// ParseError is returned when the plugin descriptor is malformed or
// missing required keys. It wraps ErrManifestParse for errors.Is()
// compatibility.
type ParseError struct {
	// Path is the descriptor file that failed to parse. Empty for the
	// embedded descriptor.
	Path string
	// Reason is the underlying decode or validation failure.
	Reason error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	path := e.Path
	if path == "" {
		path = "embedded plugin.toml"
	}
	return fmt.Sprintf("parse plugin manifest %s: %v", path, e.Reason)
}

// Unwrap returns ErrManifestParse for errors.Is() compatibility.
func (e *ParseError) Unwrap() error { return ErrManifestParse }
