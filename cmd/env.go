package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"machine-bootstrap/internal/config"
	"machine-bootstrap/internal/dotfiles"
	"machine-bootstrap/internal/installer"
	"machine-bootstrap/internal/logger"
	"machine-bootstrap/internal/pkgmgr"
	"machine-bootstrap/internal/platform"
	"machine-bootstrap/internal/run"
)

// dotfilesDir overrides the overlay source directory via `--dotfiles`.
var dotfilesDir string

// envCmd is the Environment Setup flow: detect the platform, install the
// base package set, then overlay the dotfiles tree onto the home directory.
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Install the base package set and overlay dotfiles onto the home directory",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runEnv(); err != nil {
			logger.Error("[ERROR] %v\n", err)
			os.Exit(1)
		}
		logger.Info("[INFO] Environment setup complete.\n")
	},
}

func runEnv() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	plat, err := platform.Detect()
	if err != nil {
		return err
	}
	logger.Info("[INFO] Detected platform: %s\n", plat)

	r := run.ExecRunner{}
	mgr, err := pkgmgr.For(plat, r)
	if err != nil {
		return err
	}

	if err := installer.EnsurePackages(mgr, cfg.Packages.Base.For(plat)); err != nil {
		return err
	}

	// Flag beats config beats the sibling-directory default.
	src := dotfilesDir
	if src == "" {
		src = cfg.DotfilesDir
	}
	if src == "" {
		src = dotfiles.DefaultSourceDir()
	}

	home, err := homeDir()
	if err != nil {
		return err
	}
	return dotfiles.Overlay(r, src, home)
}

// homeDir resolves the invoking user's home directory, preferring $HOME.
func homeDir() (string, error) {
	if home := os.Getenv("HOME"); home != "" {
		return home, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return home, nil
}

func init() {
	envCmd.Flags().StringVar(&dotfilesDir, "dotfiles", "", "Dotfiles source directory (default: dotfiles/ next to the executable)")
	rootCmd.AddCommand(envCmd)
}
