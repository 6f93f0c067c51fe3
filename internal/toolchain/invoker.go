// SPDX-License-Identifier: MPL-2.0

package toolchain

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
	"mvdan.cc/sh/v3/syntax"
)

// Result captures the outcome of one external process invocation.
// Results are ephemeral; one is created per call and discarded after
// the caller inspects it.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Invoker runs external toolchain binaries with captured output.
type Invoker struct {
	logger *log.Logger
}

// NewInvoker creates an Invoker. With verbose set, every invocation is
// logged to stderr with its full command line and working directory.
func NewInvoker(verbose bool) *Invoker {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "wasmgo"})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	return &Invoker{logger: logger}
}

// LookTool checks that tool is present on PATH, returning a
// ToolNotFoundError with an installation hint when it is not.
func (i *Invoker) LookTool(tool string) error {
	if _, err := exec.LookPath(tool); err != nil {
		return &ToolNotFoundError{Tool: tool, Hint: InstallHint(tool)}
	}
	return nil
}

// Installed reports whether tool responds to its version subcommand.
// This is a stronger probe than LookTool: a binary that is on PATH but
// cannot execute (wrong architecture, broken install) is not installed.
func (i *Invoker) Installed(ctx context.Context, tool string) bool {
	res, err := i.Invoke(ctx, "", tool, versionArgs(tool)...)
	return err == nil && res.ExitCode == 0
}

// Invoke runs tool with args in dir (empty dir means the current
// working directory), capturing stdout and stderr. A Result is returned
// even on failure so callers can inspect partial output. Non-zero exits
// yield an InvocationError carrying the captured stderr; a missing
// binary yields a ToolNotFoundError.
func (i *Invoker) Invoke(ctx context.Context, dir, tool string, args ...string) (*Result, error) {
	i.logger.Debug("executing", "cmd", renderCommand(tool, args), "dir", dir)

	cmd := exec.CommandContext(ctx, tool, args...)
	if dir != "" {
		cmd.Dir = dir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := &Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if cmd.ProcessState != nil {
		res.ExitCode = cmd.ProcessState.ExitCode()
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			i.logger.Debug("tool exited non-zero", "tool", tool, "code", res.ExitCode)
			return res, &InvocationError{
				Tool:     tool,
				Args:     args,
				ExitCode: res.ExitCode,
				Stderr:   res.Stderr,
			}
		}
		// The process never ran: treat it as a missing tool.
		res.ExitCode = -1
		return res, &ToolNotFoundError{Tool: tool, Hint: InstallHint(tool)}
	}

	i.logger.Debug("tool finished", "tool", tool, "code", res.ExitCode)
	return res, nil
}

// versionArgs returns the probe arguments for a tool. The Go toolchain
// and TinyGo both use a bare "version" subcommand; most other tools
// take the conventional --version flag.
func versionArgs(tool string) []string {
	switch tool {
	case "go", "tinygo":
		return []string{"version"}
	default:
		return []string{"--version"}
	}
}

// renderCommand formats a command line for log output, shell-quoting
// arguments that need it.
func renderCommand(tool string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, tool)
	for _, arg := range args {
		quoted, err := syntax.Quote(arg, syntax.LangBash)
		if err != nil {
			quoted = arg
		}
		parts = append(parts, quoted)
	}
	return strings.Join(parts, " ")
}
