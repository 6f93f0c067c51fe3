// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"wasmgo-cli/internal/toolchain"

	"github.com/spf13/cobra"
)

var (
	depsInstall bool

	depsCmd = &cobra.Command{
		Use:   "deps",
		Short: "Check (and optionally install) the required build tools",
		Long: `Check that the external tools the plugin manifest declares are
available on PATH. Each tool is probed by running its version
subcommand, so a broken installation is reported the same way as a
missing one.

With --install, missing tools are installed through the first supported
package manager found on PATH (Homebrew, then apt-get). When neither is
available the manual installation instructions are printed instead.

Examples:
  wasmgo deps            Report the status of each required tool
  wasmgo deps --install  Install whatever is missing`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadManifest()
			if err != nil {
				return renderFailure(cmd, err)
			}

			stdout := cmd.OutOrStdout()
			fmt.Fprintln(stdout, TitleStyle.Render("Dependency Check"))

			inv := newInvoker()
			tools := m.Dependencies.Tools
			missing := inv.Missing(cmd.Context(), tools)
			absent := make(map[string]*toolchain.ToolNotFoundError, len(missing))
			for _, mErr := range missing {
				absent[mErr.Tool] = mErr
			}

			for _, tool := range tools {
				if mErr, ok := absent[tool]; ok {
					fmt.Fprintf(stdout, "  %s %s", ErrorStyle.Render(errorIcon), tool)
					if mErr.Hint != "" {
						fmt.Fprintf(stdout, "  %s", VerboseStyle.Render(mErr.Hint))
					}
					fmt.Fprintln(stdout)
					continue
				}
				fmt.Fprintf(stdout, "  %s %s\n", SuccessStyle.Render(successIcon), tool)
			}

			if len(missing) == 0 {
				fmt.Fprintf(stdout, "\n%s All %d tools are installed\n", successIcon, len(tools))
				return nil
			}

			if !depsInstall {
				fmt.Fprintf(stdout, "\n%s %d of %d tools missing; run %s to install them\n",
					warnIcon, len(missing), len(tools), PathStyle.Render("wasmgo deps --install"))
				cmd.SilenceUsage = true
				cmd.SilenceErrors = true
				return &ExitError{Code: 1, Err: fmt.Errorf("%d missing tools", len(missing))}
			}

			names := make([]string, 0, len(missing))
			for _, mErr := range missing {
				names = append(names, mErr.Tool)
			}
			fmt.Fprintf(stdout, "\n%s Installing: %v\n", infoIcon, names)
			if err := inv.Install(cmd.Context(), names); err != nil {
				return renderFailure(cmd, err)
			}

			// Re-probe so a manager that claims success but installs a
			// broken binary is still caught.
			if still := inv.Missing(cmd.Context(), names); len(still) > 0 {
				return renderFailure(cmd, still[0])
			}
			fmt.Fprintf(stdout, "%s Installed %d tools\n", successIcon, len(names))
			return nil
		},
	}
)

func init() {
	depsCmd.Flags().BoolVar(&depsInstall, "install", false, "install missing tools via brew or apt-get")
}
