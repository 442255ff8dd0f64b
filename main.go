package main

import (
	"machine-bootstrap/cmd" // Import the cmd package which contains the CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// machine-bootstrap is a workstation provisioning tool with two independent,
// single-shot flows:
//   - `env`: detects the host platform (macOS, Debian/Ubuntu, Arch), installs a
//     base set of packages through the platform's native package manager, and
//     overlays a local dotfiles directory onto the home directory with GNU stow
//   - `dev`: installs a larger development package set, then sequentially
//     bootstraps third-party tooling (Nerd Font, nvm, node, npm globals, and
//     utilities that need a cargo or go-install fallback on apt systems)
//
// Error handling strategy:
//   - Strict failure: the first error from any external command aborts the run
//     with exit status 1. No retries, no partial-success summary, no rollback.
//   - Packages already present are skipped and logged, never treated as errors.
//
// Integration points:
//   - Native package managers (brew, apt, pacman) via synchronous shell-outs
//   - GNU stow for projecting dotfiles packages onto the home directory
//   - GitHub releases for font archives; official installer scripts for nvm
//     and rustup; `cargo install` and `go install` for tools without an apt
//     package
func main() {
	cmd.Execute()
}
