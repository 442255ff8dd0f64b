// Package config holds the run configuration: per-platform package lists, the
// dotfiles source directory, and the Nerd Font release to install. Everything
// has a built-in default so both flows work with no flags and no file; an
// optional YAML file overrides individual fields.
//
// The loaded Config is an immutable value threaded into the components that
// need it. Nothing reads it through package-level state.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"machine-bootstrap/internal/logger"
	"machine-bootstrap/internal/platform"
)

// DefaultPath is where Load looks for an optional config file when no
// explicit path is given. Its absence is not an error.
const DefaultPath = "bootstrap.yaml"

// PackageSet carries one package list per supported package manager. The
// lists differ where upstream package names do (e.g. "fd" is "fd-find" on
// apt).
type PackageSet struct {
	Brew   []string `yaml:"brew"`
	Apt    []string `yaml:"apt"`
	Pacman []string `yaml:"pacman"`
}

// For selects the list for a platform. Order is preserved: packages are
// installed in exactly this sequence.
func (s PackageSet) For(p platform.Platform) []string {
	switch p {
	case platform.MacOS:
		return s.Brew
	case platform.Debian:
		return s.Apt
	case platform.Arch:
		return s.Pacman
	default:
		return nil
	}
}

// FontSpec names the Nerd Font release to install on Linux: the archive is
// fetched from the GitHub release of Repo at Tag, and Name selects the asset
// (e.g. "JetBrainsMono" matches JetBrainsMono.zip / JetBrainsMono.tar.xz).
type FontSpec struct {
	Name string `yaml:"name"`
	Repo string `yaml:"repo"`
	Tag  string `yaml:"tag"`
	// Cask is the Homebrew cask used instead of the release archive on macOS.
	Cask string `yaml:"cask"`
}

// Config is the full run configuration.
type Config struct {
	// DotfilesDir is the overlay source directory. Empty means "dotfiles"
	// next to the executable (resolved by the dotfiles package).
	DotfilesDir string `yaml:"dotfiles_dir"`
	Packages    struct {
		// Base is installed by the `env` flow.
		Base PackageSet `yaml:"base"`
		// Dev is installed by the `dev` flow.
		Dev PackageSet `yaml:"dev"`
	} `yaml:"packages"`
	Font FontSpec `yaml:"font"`
}

// Default returns the built-in configuration. These lists mirror what the
// flows provision out of the box; a config file replaces whole lists, not
// individual entries.
func Default() Config {
	var cfg Config
	cfg.Packages.Base = PackageSet{
		Brew:   []string{"git", "stow", "zsh", "tmux", "neovim", "ripgrep", "fd", "fzf"},
		Apt:    []string{"git", "stow", "zsh", "tmux", "neovim", "ripgrep", "fd-find", "fzf"},
		Pacman: []string{"git", "stow", "zsh", "tmux", "neovim", "ripgrep", "fd", "fzf"},
	}
	cfg.Packages.Dev = PackageSet{
		Brew: []string{
			"git", "zsh", "tmux", "neovim", "ripgrep", "fd", "jq",
			"shellcheck", "htop", "wget", "go",
		},
		Apt: []string{
			"git", "zsh", "tmux", "neovim", "ripgrep", "fd-find", "jq",
			"shellcheck", "htop", "wget", "curl", "build-essential", "golang-go",
		},
		Pacman: []string{
			"git", "zsh", "tmux", "neovim", "ripgrep", "fd", "jq",
			"shellcheck", "htop", "wget", "base-devel", "go",
		},
	}
	cfg.Font = FontSpec{
		Name: "JetBrainsMono",
		Repo: "ryanoasis/nerd-fonts",
		Tag:  "v3.2.1",
		Cask: "font-jetbrains-mono-nerd-font",
	}
	return cfg
}

// Load returns the configuration, starting from Default and overlaying the
// YAML file at path. An empty path means DefaultPath, and a missing file at
// DefaultPath falls back silently to the defaults; a missing file at an
// explicitly requested path is an error. A file that exists but fails to
// parse is always fatal.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			logger.Debug("[DEBUG] No config file at %s, using built-in defaults\n", path)
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	logger.Debug("[DEBUG] Loaded config from %s\n", path)
	return cfg, nil
}
