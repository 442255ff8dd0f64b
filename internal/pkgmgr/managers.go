package pkgmgr

import (
	"machine-bootstrap/internal/logger"
	"machine-bootstrap/internal/run"
)

// brew is the Homebrew binding used on macOS.
type brew struct {
	r run.Runner
}

func (b *brew) Name() string { return "brew" }

func (b *brew) UpdateIndex() error {
	return run.Checked(b.r, "brew", "update")
}

// IsInstalled queries the Homebrew cellar. `brew list <pkg>` exits non-zero
// when the formula is not installed.
func (b *brew) IsInstalled(pkg string) bool {
	_, err := b.r.Run("brew", "list", pkg)
	if err != nil {
		logger.Debug("[DEBUG] brew list %s reports not installed\n", pkg)
	}
	return err == nil
}

func (b *brew) Install(pkg string) error {
	return run.Checked(b.r, "brew", "install", pkg)
}

// apt is the apt-get binding used on Debian/Ubuntu.
type apt struct {
	r run.Runner
}

func (a *apt) Name() string { return "apt" }

func (a *apt) UpdateIndex() error {
	return run.Checked(a.r, "sudo", "apt-get", "update")
}

// IsInstalled queries the dpkg database directly rather than apt's frontend;
// `dpkg -s <pkg>` exits non-zero for packages that were never installed.
func (a *apt) IsInstalled(pkg string) bool {
	_, err := a.r.Run("dpkg", "-s", pkg)
	if err != nil {
		logger.Debug("[DEBUG] dpkg -s %s reports not installed\n", pkg)
	}
	return err == nil
}

func (a *apt) Install(pkg string) error {
	return run.Checked(a.r, "sudo", "apt-get", "install", "-y", pkg)
}

// pacman is the pacman binding used on Arch-like systems.
type pacman struct {
	r run.Runner
}

func (p *pacman) Name() string { return "pacman" }

func (p *pacman) UpdateIndex() error {
	return run.Checked(p.r, "sudo", "pacman", "-Sy")
}

// IsInstalled queries the local package database; `pacman -Qi <pkg>` exits
// non-zero for packages that are not installed.
func (p *pacman) IsInstalled(pkg string) bool {
	_, err := p.r.Run("pacman", "-Qi", pkg)
	if err != nil {
		logger.Debug("[DEBUG] pacman -Qi %s reports not installed\n", pkg)
	}
	return err == nil
}

func (p *pacman) Install(pkg string) error {
	return run.Checked(p.r, "sudo", "pacman", "-S", "--noconfirm", pkg)
}
