package installer

import (
	"fmt"
	"os"
	"path/filepath"

	"machine-bootstrap/internal/config"
	"machine-bootstrap/internal/logger"
	"machine-bootstrap/internal/pkgmgr"
	"machine-bootstrap/internal/platform"
	"machine-bootstrap/internal/run"
)

// nvmInstallURL is the official nvm installer script, piped through bash the
// way its README prescribes.
const nvmInstallURL = "https://raw.githubusercontent.com/nvm-sh/nvm/v0.40.1/install.sh"

// rustupInstallURL is the official rustup installer script.
const rustupInstallURL = "https://sh.rustup.rs"

// npmGlobals are installed unconditionally on every run; npm itself makes a
// reinstall of an up-to-date package a cheap no-op.
var npmGlobals = []string{"neovim", "tree-sitter-cli"}

// goTools are installed natively where a package exists (brew, pacman) and
// via `go install` on apt systems, which lack usable packages for them.
var goTools = []struct {
	pkg    string // native package name
	module string // go module path for the apt fallback
}{
	{pkg: "fzf", module: "github.com/junegunn/fzf@latest"},
	{pkg: "lazygit", module: "github.com/jesseduffield/lazygit@latest"},
}

// Bootstrapper runs the dev flow's third-party tool sequence. All fields are
// set at construction and never mutated; the sequence itself is strictly
// sequential, each sub-step fatal on failure.
type Bootstrapper struct {
	Platform platform.Platform
	Manager  pkgmgr.PackageManager
	Runner   run.Runner
	Font     config.FontSpec
	HomeDir  string
}

// NewBootstrapper assembles a Bootstrapper for the detected platform.
func NewBootstrapper(p platform.Platform, mgr pkgmgr.PackageManager, r run.Runner, font config.FontSpec, home string) *Bootstrapper {
	return &Bootstrapper{Platform: p, Manager: mgr, Runner: r, Font: font, HomeDir: home}
}

// Run executes the bootstrap sequence in order. The first failing sub-step
// aborts the run; nothing is isolated or retried.
func (b *Bootstrapper) Run() error {
	steps := []struct {
		name string
		fn   func() error
	}{
		{"nerd font", b.installFont},
		{"nvm", b.installNVM},
		{"node", b.installNode},
		{"npm globals", b.installNPMGlobals},
		{"eza", b.installEza},
		{"go tools", b.installGoTools},
	}

	for _, step := range steps {
		logger.Info("[INFO] Bootstrapping %s...\n", step.name)
		if err := step.fn(); err != nil {
			return fmt.Errorf("bootstrapping %s: %w", step.name, err)
		}
	}
	return nil
}

// installFont installs the configured Nerd Font: a Homebrew cask on macOS,
// the GitHub release archive extracted into the user font directory plus an
// fc-cache refresh everywhere else.
func (b *Bootstrapper) installFont() error {
	if b.Platform == platform.MacOS {
		return run.Checked(b.Runner, "brew", "install", "--cask", b.Font.Cask)
	}
	return installLinuxFont(b.Runner, b.Font)
}

// nvmDir resolves the nvm directory, honoring the NVM_DIR override.
func (b *Bootstrapper) nvmDir() string {
	if dir := os.Getenv("NVM_DIR"); dir != "" {
		return dir
	}
	return filepath.Join(b.HomeDir, ".nvm")
}

// installNVM runs the official nvm installer unless the nvm directory already
// exists. This is the one bootstrap step with an explicit pre-existence
// check; directory presence is how the installer itself decides it is done.
func (b *Bootstrapper) installNVM() error {
	dir := b.nvmDir()
	if _, err := os.Stat(dir); err == nil {
		logger.Info("[INFO] nvm already present at %s. Skipping.\n", dir)
		return nil
	}
	return run.Checked(b.Runner, "bash", "-c",
		fmt.Sprintf("curl -fsSL %s | bash", nvmInstallURL))
}

// nvmExec builds a bash command line that sources nvm and runs cmd in that
// shell. nvm is a shell function, not a binary, so every use goes through
// bash.
func (b *Bootstrapper) nvmExec(cmd string) error {
	script := fmt.Sprintf(`export NVM_DIR=%q && . "$NVM_DIR/nvm.sh" && %s`, b.nvmDir(), cmd)
	return run.Checked(b.Runner, "bash", "-c", script)
}

// installNode installs the latest node through nvm.
func (b *Bootstrapper) installNode() error {
	return b.nvmExec("nvm install node")
}

// installNPMGlobals installs the global npm packages, one invocation per
// package, with no pre-existence check.
func (b *Bootstrapper) installNPMGlobals() error {
	for _, pkg := range npmGlobals {
		logger.Info("[INFO] Installing npm global %s...\n", pkg)
		if err := b.nvmExec("npm install -g " + pkg); err != nil {
			return err
		}
	}
	return nil
}

// installEza installs eza natively where a package exists. apt has no eza
// package, so Debian bootstraps the Rust toolchain first (via rustup, if
// cargo is absent) and builds eza with cargo.
func (b *Bootstrapper) installEza() error {
	if b.Platform != platform.Debian {
		if b.Manager.IsInstalled("eza") {
			logger.Info("[INFO] eza is already installed. Skipping.\n")
			return nil
		}
		return b.Manager.Install("eza")
	}

	cargo, err := b.cargoPath()
	if err != nil {
		logger.Info("[INFO] cargo not found. Installing the Rust toolchain via rustup...\n")
		if err := run.Checked(b.Runner, "bash", "-c",
			fmt.Sprintf("curl -fsSL %s | sh -s -- -y", rustupInstallURL)); err != nil {
			return err
		}
		cargo = filepath.Join(b.HomeDir, ".cargo", "bin", "cargo")
	}

	logger.Info("[INFO] Building eza with cargo...\n")
	return run.Checked(b.Runner, cargo, "install", "eza")
}

// cargoPath finds a usable cargo binary: PATH first, then the default rustup
// location under the home directory.
func (b *Bootstrapper) cargoPath() (string, error) {
	if p, err := b.Runner.LookPath("cargo"); err == nil {
		return p, nil
	}
	fallback := filepath.Join(b.HomeDir, ".cargo", "bin", "cargo")
	if _, err := os.Stat(fallback); err == nil {
		return fallback, nil
	}
	return "", fmt.Errorf("cargo not found")
}

// installGoTools installs the Go-built utilities: native packages on brew and
// pacman, `go install` on Debian.
func (b *Bootstrapper) installGoTools() error {
	for _, tool := range goTools {
		if b.Platform == platform.Debian {
			logger.Info("[INFO] Installing %s with go install...\n", tool.pkg)
			if err := run.Checked(b.Runner, "go", "install", tool.module); err != nil {
				return err
			}
			continue
		}
		if b.Manager.IsInstalled(tool.pkg) {
			logger.Info("[INFO] %s is already installed. Skipping.\n", tool.pkg)
			continue
		}
		if err := b.Manager.Install(tool.pkg); err != nil {
			return err
		}
	}
	return nil
}
