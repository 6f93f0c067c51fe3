// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"wasmgo-cli/internal/issue"
	"wasmgo-cli/internal/manifest"
	"wasmgo-cli/internal/project"
	"wasmgo-cli/internal/toolchain"

	"github.com/spf13/cobra"
)

// projectPathArg resolves the optional positional project path, defaulting
// to the current directory and normalising to an absolute path.
func projectPathArg(args []string) (string, error) {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path %q: %w", path, err)
	}
	return abs, nil
}

// loadManifest returns the plugin manifest, honoring a plugin.toml in the
// working directory over the embedded descriptor.
func loadManifest() (*manifest.Manifest, error) {
	return manifest.Load("")
}

// newInvoker creates a toolchain invoker honoring the global verbose flag.
func newInvoker() *toolchain.Invoker {
	return toolchain.NewInvoker(verbose)
}

// issueFor maps a domain error to its catalog entry, or nil when the
// failure has no dedicated help text.
func issueFor(err error) *issue.Issue {
	switch {
	case errors.Is(err, manifest.ErrManifestParse):
		return issue.Get(issue.ManifestParseErrorId)
	case errors.Is(err, project.ErrNoEntryFile):
		return issue.Get(issue.NoEntryFileId)
	case errors.Is(err, project.ErrInvalidProject):
		return issue.Get(issue.InvalidProjectId)
	case errors.Is(err, toolchain.ErrToolNotFound):
		return issue.Get(issue.ToolNotFoundId)
	case errors.Is(err, toolchain.ErrInvocationFailed):
		return issue.Get(issue.CompilationFailedId)
	default:
		return nil
	}
}

// renderFailure prints the error and, when available, the rendered help
// card for its failure class, then returns an ExitError so main exits
// non-zero without cobra re-printing usage.
func renderFailure(cmd *cobra.Command, err error) error {
	stderr := cmd.ErrOrStderr()

	fmt.Fprintf(stderr, "%s %s\n", errorIcon, formatErrorForDisplay(err, verbose))

	if iss := issueFor(err); iss != nil {
		if rendered, renderErr := iss.Render("auto"); renderErr == nil {
			fmt.Fprintln(stderr, rendered)
		}
	}

	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return &ExitError{Code: 1, Err: err}
}

// printArtifacts lists the files a compilation produced.
func printArtifacts(stdout io.Writer, result *toolchain.CompileResult) {
	fmt.Fprintf(stdout, "%s %s\n", successIcon, PathStyle.Render(result.WasmPath))
	if result.JSPath != "" {
		fmt.Fprintf(stdout, "%s %s\n", successIcon, PathStyle.Render(result.JSPath))
	}
	for _, extra := range result.AdditionalFiles {
		fmt.Fprintf(stdout, "%s %s\n", successIcon, PathStyle.Render(extra))
	}
}
