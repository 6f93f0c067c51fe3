// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for wasmgo.
//
// This package implements the Cobra command hierarchy for the wasmgo
// plugin: project analysis (check), compilation (build, run, clean),
// dependency reporting (deps), and plugin metadata (info, frameworks).
// Commands are executed through charmbracelet/fang for styled output
// and signal handling.
package cmd
