// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"wasmgo-cli/internal/toolchain"

	"github.com/spf13/cobra"
)

var frameworksCmd = &cobra.Command{
	Use:   "frameworks",
	Short: "List supported project types, build tools, and optimization levels",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		stdout := cmd.OutOrStdout()

		fmt.Fprintln(stdout, TitleStyle.Render("Supported Frameworks"))
		fmt.Fprintln(stdout)

		fmt.Fprintln(stdout, SubtitleStyle.Render("Project types"))
		fmt.Fprintf(stdout, "  %s Plain Go modules (go.mod at the root)\n", infoIcon)
		fmt.Fprintf(stdout, "  %s Single-file Go programs\n", infoIcon)
		fmt.Fprintf(stdout, "  %s syscall/js browser applications\n", infoIcon)
		fmt.Fprintln(stdout)

		fmt.Fprintln(stdout, SubtitleStyle.Render("Build tools"))
		fmt.Fprintf(stdout, "  %s tinygo (preferred, small binaries)\n", infoIcon)
		fmt.Fprintf(stdout, "  %s go (standard toolchain, GOOS=js GOARCH=wasm)\n", infoIcon)
		fmt.Fprintln(stdout)

		fmt.Fprintln(stdout, SubtitleStyle.Render("Optimization levels"))
		for _, lvl := range []toolchain.OptimizationLevel{
			toolchain.OptimizationDebug,
			toolchain.OptimizationRelease,
			toolchain.OptimizationSize,
		} {
			fmt.Fprintf(stdout, "  %s %s\n", infoIcon, lvl)
		}
		fmt.Fprintln(stdout)

		fmt.Fprintln(stdout, SubtitleStyle.Render("Targets"))
		fmt.Fprintf(stdout, "  %s %s (standalone module)\n", infoIcon, toolchain.TargetWasm)
		fmt.Fprintf(stdout, "  %s %s (module + wasm_exec.js + index.html)\n", infoIcon, toolchain.TargetWebApp)
		return nil
	},
}
