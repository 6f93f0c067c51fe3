// SPDX-License-Identifier: MPL-2.0

// Package toolchain shells out to the external go and tinygo binaries.
//
// It has two layers: the Invoker, which probes for tools on PATH and
// runs them with captured output, and the Builder, which composes
// invocations into WebAssembly compilations (tinygo build with target
// wasm, optimization flags, and optional web application assets).
// Every invocation is synchronous; one process is spawned and awaited
// per call, with cancellation through the caller's context.
package toolchain
