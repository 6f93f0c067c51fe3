// SPDX-License-Identifier: EPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	ManifestParseErrorId Id = iota + 1
	NoEntryFileId
	ToolNotFoundId
	CompilationFailedId
	InvalidProjectId
	ConfigLoadFailedId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.extLinks) > 0 {
		extraMd += "\n\n## See also:\n"
		for _, link := range i.extLinks {
			extraMd += "- " + string(link) + "\n"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	manifestParseErrorIssue = &Issue{
		id: ManifestParseErrorId,
		mdMsg: `
# Failed to parse the plugin manifest!

The plugin descriptor contains syntax errors or invalid configuration.

## Common issues:
- Invalid TOML syntax (missing quotes, brackets, etc.)
- Missing required keys (name, extensions)
- Invalid values for known keys

## Things you can try:
- Check the error message above for the specific key
- Remove any local plugin.toml override to fall back to the built-in manifest
- Run with verbose mode for more details:
~~~
$ wasmgo --verbose info
~~~`,
	}

	noEntryFileIssue = &Issue{
		id: NoEntryFileId,
		mdMsg: `
# No entry file found!

We searched the project for a Go entry point but couldn't find one.

## Search order:
1. main.go at the project root
2. cmd/main.go
3. app.go
4. go.mod (module root)
5. Any .go file at the project root

## Things you can try:
- Create a main.go with a main package:
~~~go
package main

func main() {
	println("hello, wasm")
}
~~~

- Or point wasmgo at the directory that contains your entry file:
~~~
$ wasmgo build ./cmd/myapp
~~~`,
	}

	toolNotFoundIssue = &Issue{
		id: ToolNotFoundId,
		mdMsg: `
# Required build tool not found!

A tool required for Go WebAssembly compilation is missing from your PATH.

## Required tools:
- **go** - the Go toolchain, used for dependency management
- **tinygo** - the WebAssembly compiler for Go

## Things you can try:
- Install Go: https://go.dev/dl/
- Install TinyGo: https://tinygo.org/getting-started/install/
- On macOS with Homebrew:
~~~
$ brew install go tinygo
~~~

- Verify your installation:
~~~
$ wasmgo deps
~~~`,
		extLinks: []HttpLink{
			"https://tinygo.org/getting-started/install/",
			"https://go.dev/dl/",
		},
	}

	compilationFailedIssue = &Issue{
		id: CompilationFailedId,
		mdMsg: `
# Compilation failed!

TinyGo could not compile the project to WebAssembly.

## Common causes:
- The project uses packages unsupported by TinyGo (e.g., reflection-heavy code)
- Compile errors in the Go sources
- go.mod dependencies not downloaded

## Things you can try:
- Run with verbose mode to see the full compiler output:
~~~
$ wasmgo build --verbose .
~~~

- Fetch dependencies first:
~~~
$ go mod tidy
~~~

- Check TinyGo language support: https://tinygo.org/docs/reference/lang-support/`,
		extLinks: []HttpLink{
			"https://tinygo.org/docs/reference/lang-support/",
		},
	}

	invalidProjectIssue = &Issue{
		id: InvalidProjectId,
		mdMsg: `
# Not a valid Go project!

The target directory does not look like a Go project.

## What wasmgo looks for:
- A go.mod file at the project root, or
- Any file with a supported extension (.go)

## Things you can try:
- Initialize a Go module:
~~~
$ go mod init example.com/myapp
~~~

- Check the project path you passed:
~~~
$ wasmgo check /path/to/project
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the wasmgo configuration file.

## Configuration file locations:
- Linux: ~/.config/wasmgo/config.toml
- macOS: ~/Library/Application Support/wasmgo/config.toml
- Windows: %APPDATA%\wasmgo\config.toml

## Things you can try:
- Check the configuration syntax
- Remove the config file to use defaults:
~~~
$ rm ~/.config/wasmgo/config.toml
~~~

## Example configuration:
~~~toml
output_dir = "./dist"
optimization = "release"

[ui]
color_scheme = "auto"
verbose = false
~~~`,
	}

	issues = map[Id]*Issue{
		manifestParseErrorIssue.Id(): manifestParseErrorIssue,
		noEntryFileIssue.Id():        noEntryFileIssue,
		toolNotFoundIssue.Id():       toolNotFoundIssue,
		compilationFailedIssue.Id():  compilationFailedIssue,
		invalidProjectIssue.Id():     invalidProjectIssue,
		configLoadFailedIssue.Id():   configLoadFailedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
