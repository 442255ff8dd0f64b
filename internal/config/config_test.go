package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"machine-bootstrap/internal/platform"
)

func TestDefaultHasListsForEveryPlatform(t *testing.T) {
	cfg := Default()

	for _, p := range []platform.Platform{platform.MacOS, platform.Debian, platform.Arch} {
		assert.NotEmpty(t, cfg.Packages.Base.For(p), "base list for %s", p)
		assert.NotEmpty(t, cfg.Packages.Dev.For(p), "dev list for %s", p)
	}

	// stow is required by the env flow's overlay step, so the base lists
	// must carry it everywhere.
	for _, list := range [][]string{cfg.Packages.Base.Brew, cfg.Packages.Base.Apt, cfg.Packages.Base.Pacman} {
		assert.Contains(t, list, "stow")
	}
}

func TestPackageSetForUnknownPlatform(t *testing.T) {
	cfg := Default()
	assert.Nil(t, cfg.Packages.Base.For(platform.Unknown))
}

func TestLoadMissingDefaultFileFallsBack(t *testing.T) {
	// Run from an empty directory so no stray bootstrap.yaml interferes.
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bootstrap.yaml")
	content := `dotfiles_dir: /srv/dotfiles
packages:
  base:
    apt: [git, stow]
font:
  name: FiraCode
  tag: v3.1.1
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/dotfiles", cfg.DotfilesDir)
	assert.Equal(t, []string{"git", "stow"}, cfg.Packages.Base.Apt)
	// Untouched fields keep their defaults.
	assert.Equal(t, Default().Packages.Base.Brew, cfg.Packages.Base.Brew)
	assert.Equal(t, Default().Packages.Dev, cfg.Packages.Dev)
	assert.Equal(t, "FiraCode", cfg.Font.Name)
	assert.Equal(t, "v3.1.1", cfg.Font.Tag)
	assert.Equal(t, "ryanoasis/nerd-fonts", cfg.Font.Repo)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("packages: [not: a: map"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
