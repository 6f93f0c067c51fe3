// SPDX-License-Identifier: MPL-2.0

package toolchain

import (
	"context"
	"fmt"
	"strings"
)

// InstallHint returns a short installation suggestion for a known tool,
// or an empty string for tools we have no specific advice for.
func InstallHint(tool string) string {
	switch tool {
	case "tinygo":
		return "install from https://tinygo.org/getting-started/install/"
	case "go":
		return "install from https://go.dev/dl/"
	default:
		return ""
	}
}

// Missing probes every tool and returns a ToolNotFoundError for each
// one that is absent or broken, in the order the manifest listed them.
// An empty slice means all dependencies are satisfied.
func (i *Invoker) Missing(ctx context.Context, tools []string) []*ToolNotFoundError {
	var missing []*ToolNotFoundError
	for _, tool := range tools {
		if !i.Installed(ctx, tool) {
			missing = append(missing, &ToolNotFoundError{Tool: tool, Hint: InstallHint(tool)})
		}
	}
	return missing
}

// installCommands maps a package manager binary to the argument prefix
// for an unattended install. Probed in order; the first one on PATH wins.
var installCommands = []struct {
	manager string
	args    []string
}{
	{"brew", []string{"install"}},
	{"apt-get", []string{"install", "-y"}},
}

// Install attempts to install the given tools through the first
// supported package manager found on PATH (Homebrew, then apt-get).
// When neither is available the error carries the manual installation
// instructions instead.
func (i *Invoker) Install(ctx context.Context, tools []string) error {
	for _, pm := range installCommands {
		if err := i.LookTool(pm.manager); err != nil {
			continue
		}
		for _, tool := range tools {
			args := append(append([]string{}, pm.args...), tool)
			if _, err := i.Invoke(ctx, "", pm.manager, args...); err != nil {
				return fmt.Errorf("install %s via %s: %w", tool, pm.manager, err)
			}
		}
		return nil
	}

	var hints []string
	for _, tool := range tools {
		if hint := InstallHint(tool); hint != "" {
			hints = append(hints, fmt.Sprintf("%s: %s", tool, hint))
		}
	}
	return fmt.Errorf("no supported package manager found; install manually:\n  %s",
		strings.Join(hints, "\n  "))
}
