// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides CUE schema validation utilities.
//
// The plugin manifest and the user configuration are authored in TOML,
// but their shape is enforced by embedded CUE schemas. This package
// unifies already-decoded Go values with a schema definition and turns
// CUE's error trees into single, path-annotated error messages.
package cueutil
