// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"wasmgo-cli/internal/manifest"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show plugin metadata and capabilities",
	Long: `Show the plugin's name, version, capabilities, and usage, rendered
from its manifest. This is the report the host orchestrator displays
when listing installed plugins.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadManifest()
		if err != nil {
			return renderFailure(cmd, err)
		}

		rendered, err := glamour.Render(infoMarkdown(m), "auto")
		if err != nil {
			// Markdown still reads fine unstyled.
			rendered = infoMarkdown(m)
		}
		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	},
}

func infoMarkdown(m *manifest.Manifest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s %s\n\n", m.Name, m.Version)
	if m.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", m.Description)
	}
	if m.Author != "" {
		fmt.Fprintf(&b, "Author: %s\n\n", m.Author)
	}

	b.WriteString("## Capabilities\n\n")
	fmt.Fprintf(&b, "- Compile to wasm: %s\n", yesNo(m.Capabilities.CompileWasm))
	fmt.Fprintf(&b, "- Web application bundles: %s\n", yesNo(m.Capabilities.CompileWebApp))
	fmt.Fprintf(&b, "- Live reload: %s\n", yesNo(m.Capabilities.LiveReload))
	fmt.Fprintf(&b, "- Optimization levels: %s\n", yesNo(m.Capabilities.Optimization))
	if len(m.Capabilities.CustomTargets) > 0 {
		fmt.Fprintf(&b, "- Targets: %s\n", strings.Join(m.Capabilities.CustomTargets, ", "))
	}

	b.WriteString("\n## Project detection\n\n")
	fmt.Fprintf(&b, "- Extensions: %s\n", strings.Join(m.Extensions, ", "))
	fmt.Fprintf(&b, "- Entry files (priority order): %s\n", strings.Join(m.EntryFiles, ", "))

	if len(m.Dependencies.Tools) > 0 {
		b.WriteString("\n## Required tools\n\n")
		for _, tool := range m.Dependencies.Tools {
			fmt.Fprintf(&b, "- `%s`\n", tool)
		}
	}

	b.WriteString("\n## Usage\n\n")
	b.WriteString("```\n")
	b.WriteString("wasmgo check [path]    Verify a project can be built\n")
	b.WriteString("wasmgo build [path]    Compile to WebAssembly\n")
	b.WriteString("wasmgo run [path]      Compile and print the artifact path\n")
	b.WriteString("wasmgo deps            Check required tools\n")
	b.WriteString("```\n")
	return b.String()
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
