// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// DefaultMaxFileSize is the largest descriptor file the loaders accept.
// Manifests and config files are small; anything above this is almost
// certainly the wrong file.
const DefaultMaxFileSize int64 = 1 << 20 // 1 MiB

// Validate checks an already-decoded Go value against a CUE schema
// definition.
//
// The flow mirrors schema-validated config loading:
//
//  1. Compile the embedded schema
//  2. Encode the Go value into CUE and unify with the definition
//  3. Validate with concrete values required
//
// Parameters:
//   - schema: the embedded CUE schema source (from //go:embed)
//   - schemaPath: the path to the root definition (e.g., "#Manifest")
//   - value: the decoded data, typically a struct or map from a TOML file
//   - filename: the originating file, used in error messages
//
// Returns a path-annotated error when the value violates the schema.
func Validate(schema, schemaPath string, value any, filename string) error {
	ctx := cuecontext.New()

	schemaValue := ctx.CompileString(schema)
	if schemaValue.Err() != nil {
		return fmt.Errorf("internal error: failed to compile schema: %w", schemaValue.Err())
	}

	schemaRoot := schemaValue.LookupPath(cue.ParsePath(schemaPath))
	if schemaRoot.Err() != nil {
		return fmt.Errorf("internal error: schema definition %s not found: %w", schemaPath, schemaRoot.Err())
	}

	encoded := ctx.Encode(value)
	if encoded.Err() != nil {
		return FormatError(encoded.Err(), filename)
	}

	unified := schemaRoot.Unify(encoded)
	if err := unified.Validate(cue.Concrete(true), cue.Final()); err != nil {
		return FormatError(err, filename)
	}

	return nil
}
