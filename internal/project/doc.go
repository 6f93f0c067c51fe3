// SPDX-License-Identifier: MPL-2.0

// Package project inspects target directories and resolves their
// WebAssembly entry point.
//
// A project is handled when it has a go.mod at its root or contains any
// file with a manifest-claimed extension. Entry files are resolved from
// the manifest's priority-ordered candidate list; the first existing
// match wins. Resolution only reads the filesystem and has no other
// side effects.
package project
