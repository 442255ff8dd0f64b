package installer

import (
	"fmt"

	"machine-bootstrap/internal/logger"
	"machine-bootstrap/internal/pkgmgr"
)

// EnsurePackages makes every package in pkgs installed, in list order.
//
// The package index is refreshed exactly once before any install. Packages
// the manager already reports installed are logged and skipped; absent ones
// get exactly one install invocation each. The first failure — index refresh
// or install — aborts immediately and propagates. There are no retries and
// no partial-success summary.
func EnsurePackages(mgr pkgmgr.PackageManager, pkgs []string) error {
	logger.Info("[INFO] Refreshing %s package index...\n", mgr.Name())
	if err := mgr.UpdateIndex(); err != nil {
		return fmt.Errorf("refreshing %s package index: %w", mgr.Name(), err)
	}

	for _, pkg := range pkgs {
		if mgr.IsInstalled(pkg) {
			logger.Info("[INFO] %s is already installed. Skipping.\n", pkg)
			continue
		}
		logger.Info("[INFO] Installing %s with %s...\n", pkg, mgr.Name())
		if err := mgr.Install(pkg); err != nil {
			return fmt.Errorf("installing %s: %w", pkg, err)
		}
		logger.Info("[INFO] Installed %s\n", pkg)
	}
	return nil
}
