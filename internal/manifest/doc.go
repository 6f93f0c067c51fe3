// SPDX-License-Identifier: MPL-2.0

// Package manifest loads the static plugin descriptor.
//
// The descriptor declares what the plugin can do on behalf of the host
// orchestrator: which file extensions it claims, which entry files it
// resolves (in priority order), its capability flags, and the external
// tools it shells out to. A copy of the descriptor ships embedded in
// the binary; an on-disk plugin.toml next to the binary or in the
// working directory overrides it. The manifest is read once at startup
// and is immutable afterwards.
package manifest
