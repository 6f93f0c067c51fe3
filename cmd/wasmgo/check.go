// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"wasmgo-cli/internal/project"

	"github.com/spf13/cobra"
)

// checkCmd analyzes a project directory and reports whether this plugin
// can build it.
var checkCmd = &cobra.Command{
	Use:     "check [path]",
	Aliases: []string{"inspect", "can-handle"},
	Short:   "Analyze a project and report whether wasmgo can build it",
	Long: `Analyze a Go project directory.

Reports the can-handle verdict, the resolved entry file, the Go source
files found at the project root, go.mod presence, and the status of the
required build tools. Exits non-zero when the project cannot be handled
or a required tool is missing.

Examples:
  wasmgo check              Analyze the current directory
  wasmgo check ./myapp      Analyze a specific project`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stdout := cmd.OutOrStdout()

		root, err := projectPathArg(args)
		if err != nil {
			return err
		}

		m, err := loadManifest()
		if err != nil {
			return renderFailure(cmd, err)
		}

		fmt.Fprintln(stdout, TitleStyle.Render("Project Analysis"))
		fmt.Fprintf(stdout, "%s Path: %s\n", infoIcon, PathStyle.Render(root))
		fmt.Fprintln(stdout)

		if err := project.ValidateDir(root); err != nil {
			return renderFailure(cmd, err)
		}

		failed := false

		if project.CanHandle(root, m) {
			fmt.Fprintf(stdout, "%s Project can be handled by %s\n", successIcon, m.Name)
		} else {
			fmt.Fprintf(stdout, "%s Project cannot be handled (no go.mod or .go files)\n", errorIcon)
			failed = true
		}

		if project.HasGoMod(root) {
			fmt.Fprintf(stdout, "%s go.mod present\n", successIcon)
		} else {
			fmt.Fprintf(stdout, "%s go.mod missing (single-file project)\n", warnIcon)
		}

		handle, err := project.New(root, m)
		if err == nil && handle.EntryFile != "" {
			fmt.Fprintf(stdout, "%s Entry file: %s\n", successIcon, PathStyle.Render(handle.EntryFile))
		} else {
			fmt.Fprintf(stdout, "%s No entry file found\n", errorIcon)
			failed = true
		}

		goFiles, err := project.GoFiles(root)
		if err != nil {
			return renderFailure(cmd, err)
		}
		fmt.Fprintf(stdout, "%s %d Go file(s) at project root\n", infoIcon, len(goFiles))
		if verbose {
			for _, f := range goFiles {
				fmt.Fprintf(stdout, "    %s\n", VerboseStyle.Render(f))
			}
		}

		fmt.Fprintln(stdout)
		missing := newInvoker().Missing(cmd.Context(), m.Dependencies.Tools)
		for _, tool := range m.Dependencies.Tools {
			found := true
			for _, miss := range missing {
				if miss.Tool == tool {
					found = false
					break
				}
			}
			if found {
				fmt.Fprintf(stdout, "%s %s available\n", successIcon, tool)
			} else {
				fmt.Fprintf(stdout, "%s %s not found\n", errorIcon, tool)
				failed = true
			}
		}

		if failed {
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
			return &ExitError{Code: 1}
		}

		fmt.Fprintln(stdout)
		fmt.Fprintf(stdout, "%s Project is ready to build\n", successIcon)
		return nil
	},
}
