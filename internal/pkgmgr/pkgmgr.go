// Package pkgmgr binds a detected platform to its native package manager.
// Each binding implements the same capability set — refresh the index, query
// whether a package is installed, install a package — with the manager's own
// command syntax.
package pkgmgr

import (
	"fmt"

	"machine-bootstrap/internal/platform"
	"machine-bootstrap/internal/run"
)

// PackageManager is the capability set every platform binding provides.
// Implementations shell out through a run.Runner so tests can substitute
// fakes and assert the exact command lines.
type PackageManager interface {
	// Name identifies the manager for logging ("brew", "apt", "pacman").
	Name() string
	// UpdateIndex refreshes the package index. Called exactly once per run,
	// before any install.
	UpdateIndex() error
	// IsInstalled reports whether the package is already present, using the
	// manager's native query mechanism. A failing query means "not installed".
	IsInstalled(pkg string) bool
	// Install installs a single package non-interactively. A non-zero exit
	// from the underlying manager returns an *run.ExternalCommandError.
	Install(pkg string) error
}

// For returns the package manager binding for a platform.
func For(p platform.Platform, r run.Runner) (PackageManager, error) {
	switch p {
	case platform.MacOS:
		return &brew{r: r}, nil
	case platform.Debian:
		return &apt{r: r}, nil
	case platform.Arch:
		return &pacman{r: r}, nil
	default:
		return nil, fmt.Errorf("no package manager binding for platform %q", p)
	}
}
