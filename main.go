// SPDX-License-Identifier: MPL-2.0

package main

import cmd "wasmgo-cli/cmd/wasmgo"

func main() {
	cmd.Execute()
}
