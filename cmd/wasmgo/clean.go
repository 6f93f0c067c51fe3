// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"

	"wasmgo-cli/internal/toolchain"

	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [path]",
	Short: "Remove build artifacts",
	Long: `Remove the project's dist directory and everything in it. Only the
directory wasmgo itself writes to is touched; source files are never
removed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := projectPathArg(args)
		if err != nil {
			return err
		}

		m, err := loadManifest()
		if err != nil {
			return renderFailure(cmd, err)
		}

		if err := toolchain.NewBuilder(m, verbose).Clean(root); err != nil {
			return renderFailure(cmd, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s Removed %s\n",
			successIcon, PathStyle.Render(filepath.Join(root, toolchain.DistDirName)))
		return nil
	},
}
