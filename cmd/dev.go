package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"machine-bootstrap/internal/config"
	"machine-bootstrap/internal/installer"
	"machine-bootstrap/internal/logger"
	"machine-bootstrap/internal/pkgmgr"
	"machine-bootstrap/internal/platform"
	"machine-bootstrap/internal/run"
)

// devCmd is the Dev Setup flow: detect the platform, install the dev package
// set, then run the third-party tool bootstrap sequence.
var devCmd = &cobra.Command{
	Use:   "dev",
	Short: "Install the dev package set and bootstrap third-party tooling",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runDev(); err != nil {
			logger.Error("[ERROR] %v\n", err)
			os.Exit(1)
		}
		logger.Info("[INFO] Dev setup complete.\n")
	},
}

func runDev() error {
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

	if err := installer.EnsurePackages(mgr, cfg.Packages.Dev.For(plat)); err != nil {
		return err
	}

	home, err := homeDir()
	if err != nil {
		return err
	}

	return installer.NewBootstrapper(plat, mgr, r, cfg.Font, home).Run()
}

func init() {
	rootCmd.AddCommand(devCmd)
}
