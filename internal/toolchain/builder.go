// SPDX-License-Identifier: MPL-2.0

package toolchain

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"wasmgo-cli/internal/manifest"
	"wasmgo-cli/internal/project"
)

// DistDirName is the conventional build output directory inside a
// project, removed by Clean.
const DistDirName = "dist"

type (
	// Builder composes toolchain invocations into WebAssembly
	// compilations driven by the plugin manifest.
	Builder struct {
		inv *Invoker
		m   *manifest.Manifest
	}

	// CompileConfig holds the inputs for one compilation.
	CompileConfig struct {
		// ProjectPath is the Go project root.
		ProjectPath string
		// OutputDir receives the build artifacts; created if missing.
		OutputDir string
		// Optimization selects the tinygo optimization flags.
		Optimization OptimizationLevel
		// Target selects the artifact set (wasm module only, or a full
		// web application bundle).
		Target TargetType
	}

	// CompileResult lists the artifacts a compilation produced.
	CompileResult struct {
		// WasmPath is the compiled WebAssembly module.
		WasmPath string
		// JSPath is the JS glue file, empty unless the webapp target ran.
		JSPath string
		// AdditionalFiles are extra artifacts such as the HTML loader.
		AdditionalFiles []string
	}
)

// NewBuilder creates a Builder for the given manifest.
func NewBuilder(m *manifest.Manifest, verbose bool) *Builder {
	return &Builder{inv: NewInvoker(verbose), m: m}
}

// Invoker exposes the underlying invoker for dependency probing.
func (b *Builder) Invoker() *Invoker {
	return b.inv
}

// Compile builds the project at cfg.ProjectPath to WebAssembly with
// TinyGo. The entry file is resolved through the manifest's priority
// list; the output module name derives from the entry file stem.
func (b *Builder) Compile(ctx context.Context, cfg CompileConfig) (*CompileResult, error) {
	if err := b.inv.LookTool("tinygo"); err != nil {
		return nil, err
	}

	entry, err := project.ResolveEntryFile(cfg.ProjectPath, b.m.EntryFiles)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, &OutputDirError{Path: cfg.OutputDir, Reason: err}
	}

	outName := outputName(entry, cfg.ProjectPath)
	outPath := filepath.Join(cfg.OutputDir, outName)

	absOut, err := filepath.Abs(outPath)
	if err != nil {
		return nil, &OutputDirError{Path: outPath, Reason: err}
	}

	args := []string{"build", "-o", absOut, "-target=wasm"}
	args = append(args, cfg.Optimization.Flags()...)
	args = append(args, ".")

	if _, err := b.inv.Invoke(ctx, cfg.ProjectPath, "tinygo", args...); err != nil {
		return nil, err
	}

	if _, err := os.Stat(absOut); err != nil {
		return nil, &InvocationError{
			Tool:   "tinygo",
			Args:   args,
			Stderr: "build completed but no wasm artifact was produced",
		}
	}

	result := &CompileResult{WasmPath: outPath}

	if cfg.Target == TargetWebApp {
		if err := b.emitWebAppAssets(ctx, cfg.OutputDir, outName, result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// Clean removes the conventional dist directory under projectPath.
// A missing dist directory is not an error.
func (b *Builder) Clean(projectPath string) error {
	dist := filepath.Join(projectPath, DistDirName)
	if _, err := os.Stat(dist); os.IsNotExist(err) {
		return nil
	}
	if err := os.RemoveAll(dist); err != nil {
		return fmt.Errorf("clean %s: %w", dist, err)
	}
	return nil
}

// emitWebAppAssets copies TinyGo's wasm_exec.js runtime next to the
// module and scaffolds an index.html loader, turning the output
// directory into a servable web application bundle.
func (b *Builder) emitWebAppAssets(ctx context.Context, outputDir, wasmName string, result *CompileResult) error {
	res, err := b.inv.Invoke(ctx, "", "tinygo", "env", "TINYGOROOT")
	if err != nil {
		return err
	}

	root := strings.TrimSpace(res.Stdout)
	src := filepath.Join(root, "targets", "wasm_exec.js")
	jsPath := filepath.Join(outputDir, "wasm_exec.js")
	if err := copyFile(src, jsPath); err != nil {
		return fmt.Errorf("copy wasm_exec.js: %w", err)
	}
	result.JSPath = jsPath

	htmlPath := filepath.Join(outputDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(renderIndexHTML(wasmName)), 0o644); err != nil {
		return fmt.Errorf("write index.html: %w", err)
	}
	result.AdditionalFiles = append(result.AdditionalFiles, htmlPath)

	return nil
}

// outputName derives the wasm module name from the entry file stem.
// When the entry is a bare go.mod, the project directory name is used
// instead so the artifact is not literally named go.wasm.
func outputName(entryFile, projectPath string) string {
	base := filepath.Base(entryFile)
	if base == "go.mod" {
		abs, err := filepath.Abs(projectPath)
		if err == nil {
			return filepath.Base(abs) + ".wasm"
		}
		return "module.wasm"
	}
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".wasm"
}

// copyFile copies src to dst, truncating dst if it exists.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// renderIndexHTML produces a minimal loader page for the compiled module.
func renderIndexHTML(wasmName string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<title>%s</title>
	<script src="wasm_exec.js"></script>
	<script>
		const go = new Go();
		WebAssembly.instantiateStreaming(fetch(%q), go.importObject).then((result) => {
			go.run(result.instance);
		});
	</script>
</head>
<body></body>
</html>
`, wasmName, wasmName)
}
