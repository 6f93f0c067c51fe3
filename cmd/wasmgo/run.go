// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"time"

	"wasmgo-cli/internal/manifest"
	"wasmgo-cli/internal/toolchain"
	"wasmgo-cli/internal/watch"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	runWatch bool

	runCmd = &cobra.Command{
		Use:     "run [path]",
		Aliases: []string{"r"},
		Short:   "Compile a project and print the artifact for the host to execute",
		Long: `Compile a Go project to WebAssembly and print the resulting module
path on stdout so the orchestrator can load and execute it.

With --watch, wasmgo stays running and recompiles whenever a Go source
file, go.mod, go.sum, or plugin.toml changes. Rebuilds are debounced
and serialized; a change arriving mid-build triggers another build
once the current one finishes.

Examples:
  wasmgo run .           Compile once and print the wasm path
  wasmgo run -w .        Recompile on every source change`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := projectPathArg(args)
			if err != nil {
				return err
			}

			cfg, err := resolveBuildConfig(root)
			if err != nil {
				return renderFailure(cmd, err)
			}

			m, err := loadManifest()
			if err != nil {
				return renderFailure(cmd, err)
			}

			builder := toolchain.NewBuilder(m, verbose)
			result, err := builder.Compile(cmd.Context(), *cfg)
			if err != nil {
				return renderFailure(cmd, err)
			}

			// The wasm path is the contract with the host: it must be the
			// only thing on stdout so the orchestrator can parse it.
			fmt.Fprintln(cmd.OutOrStdout(), result.WasmPath)

			if !runWatch {
				return nil
			}
			return watchAndRebuild(cmd, m, builder, root, cfg)
		},
	}
)

func init() {
	runCmd.Flags().BoolVarP(&runWatch, "watch", "w", false, "recompile when source files change")
}

// watchAndRebuild blocks until the context is canceled, recompiling the
// project on every debounced batch of source changes.
func watchAndRebuild(cmd *cobra.Command, m *manifest.Manifest, builder *toolchain.Builder, root string, cfg *toolchain.CompileConfig) error {
	if !m.Capabilities.LiveReload {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s live_reload is disabled in %s\n",
			warnIcon, manifest.DescriptorFileName)
	}

	logger := log.New(cmd.ErrOrStderr())
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}

	w, err := watch.New(watch.Config{
		BaseDir: root,
		Stdout:  cmd.ErrOrStderr(),
		Logger:  logger,
		OnRebuild: func(ctx context.Context, changed []string) error {
			started := time.Now()
			result, err := builder.Compile(ctx, *cfg)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", errorIcon, formatErrorForDisplay(err, verbose))
				// Keep watching; a broken intermediate state is normal.
				return nil
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%s Rebuilt in %s (%d changed)\n",
				successIcon, time.Since(started).Round(time.Millisecond), len(changed))
			fmt.Fprintln(cmd.OutOrStdout(), result.WasmPath)
			return nil
		},
	})
	if err != nil {
		return renderFailure(cmd, err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "%s Watching %s for changes (Ctrl+C to stop)\n",
		infoIcon, PathStyle.Render(root))
	if err := w.Run(cmd.Context()); err != nil {
		return renderFailure(cmd, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%s Watch stopped\n", infoIcon)
	return nil
}
