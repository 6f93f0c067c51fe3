// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"

	"wasmgo-cli/internal/config"
	"wasmgo-cli/internal/toolchain"

	"github.com/spf13/cobra"
)

var (
	buildOutput       string
	buildOptimization string
	buildTarget       string

	buildCmd = &cobra.Command{
		Use:     "build [path]",
		Aliases: []string{"compile", "c"},
		Short:   "Compile a Go project to WebAssembly",
		Long: `Compile a Go project to WebAssembly with TinyGo.

The entry file is resolved through the plugin manifest's priority list
(main.go, cmd/main.go, app.go, go.mod). Artifacts are written to the
output directory, which is created if missing.

Optimization levels:
  debug     fast compile, full debug info (-opt=1)
  release   standard optimizations (-opt=2)
  size      smallest binary, no debug info (-opt=z -no-debug)

Targets:
  wasm      a WebAssembly module only
  webapp    the module plus wasm_exec.js and an index.html loader

Examples:
  wasmgo build .                            Compile to ./dist
  wasmgo build -o out --optimization size . Smallest binary into ./out
  wasmgo build --target webapp .            Browser-ready bundle`,
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

			stdout := cmd.OutOrStdout()
			fmt.Fprintf(stdout, "%s Compiled %s\n", successIcon, PathStyle.Render(root))
			printArtifacts(stdout, result)
			return nil
		},
	}
)

func init() {
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "output directory (default ./dist in the project)")
	buildCmd.Flags().StringVar(&buildOptimization, "optimization", "", "optimization level: debug, release, or size")
	buildCmd.Flags().StringVar(&buildTarget, "target", string(toolchain.TargetWasm), "build target: wasm or webapp")
}

// resolveBuildConfig layers the build flags over the user configuration:
// explicit flags win, then config file values, then built-in defaults.
func resolveBuildConfig(root string) (*toolchain.CompileConfig, error) {
	userCfg, err := config.Load()
	if err != nil {
		// Defaults still apply; the root initializer already warned.
		userCfg = config.DefaultConfig()
	}

	outputDir := buildOutput
	if outputDir == "" {
		outputDir = string(userCfg.OutputDir)
	}
	if outputDir == "" {
		outputDir = filepath.Join(root, toolchain.DistDirName)
	}

	optValue := buildOptimization
	if optValue == "" {
		optValue = string(userCfg.Optimization)
	}
	opt, err := toolchain.ParseOptimizationLevel(optValue)
	if err != nil {
		return nil, fmt.Errorf("%w: %q (valid: debug, release, size)", err, optValue)
	}

	target, err := toolchain.ParseTargetType(buildTarget)
	if err != nil {
		return nil, fmt.Errorf("%w: %q (valid: wasm, webapp)", err, buildTarget)
	}

	return &toolchain.CompileConfig{
		ProjectPath:  root,
		OutputDir:    outputDir,
		Optimization: opt,
		Target:       target,
	}, nil
}
