// Package dotfiles projects a local dotfiles tree onto the home directory.
//
// The source directory holds one subdirectory per "package" (nvim, tmux, zsh,
// ...), each mirroring the layout it should have under the target directory.
// GNU stow does the actual linking, one invocation per package. stow's native
// conflict behavior applies: a pre-existing real file at a target path makes
// stow refuse and exit non-zero, which aborts the whole run. Links created
// for earlier packages are left in place; there is no rollback.
package dotfiles

import (
	"fmt"
	"os"
	"path/filepath"

	"machine-bootstrap/internal/logger"
	"machine-bootstrap/internal/run"
)

// MissingDependencyError reports a required external tool that is absent.
// It is fatal: the overlay cannot proceed without stow, so the run aborts
// with the remediation hint before any linking is attempted.
type MissingDependencyError struct {
	Tool string
	Hint string
}

func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("required tool %q not found on PATH: %s", e.Tool, e.Hint)
}

// DefaultSourceDir returns the dotfiles directory expected next to the
// executable, mirroring a script's "sibling directory" convention.
func DefaultSourceDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "dotfiles"
	}
	return filepath.Join(filepath.Dir(exe), "dotfiles")
}

// Overlay links every package subdirectory of sourceDir into targetDir.
//
// A missing sourceDir is a logged no-op, not an error. A missing stow binary
// is a MissingDependencyError. Package subdirectories are processed in
// filesystem enumeration order; regular files at the top level (a README,
// say) are ignored. The first stow failure aborts immediately.
func Overlay(r run.Runner, sourceDir, targetDir string) error {
	info, err := os.Stat(sourceDir)
	if os.IsNotExist(err) {
		logger.Info("[INFO] No dotfiles directory at %s. Nothing to overlay.\n", sourceDir)
		return nil
	}
	if err != nil {
		return fmt.Errorf("inspecting dotfiles directory %s: %w", sourceDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("dotfiles path %s is not a directory", sourceDir)
	}

	if _, err := r.LookPath("stow"); err != nil {
		return &MissingDependencyError{
			Tool: "stow",
			Hint: "install stow with your package manager and re-run",
		}
	}

	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		return fmt.Errorf("reading dotfiles directory %s: %w", sourceDir, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			logger.Debug("[DEBUG] Ignoring non-directory entry %s\n", entry.Name())
			continue
		}
		pack := entry.Name()
		logger.Info("[INFO] Linking dotfiles package %s into %s\n", pack, targetDir)

		// -d points stow at the package root, -t at the link target; -v so
		// the created links show up in the output.
		if err := run.Checked(r, "stow", "-v", "-d", sourceDir, "-t", targetDir, pack); err != nil {
			return err
		}
	}
	return nil
}
