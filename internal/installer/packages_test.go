package installer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeManager implements pkgmgr.PackageManager, recording calls and serving
// canned installed/failure answers.
type fakeManager struct {
	name      string
	installed map[string]bool
	failOn    map[string]error
	updateErr error
	updates   int
	queries   []string
	installs  []string
}

func newFakeManager() *fakeManager {
	return &fakeManager{
		name:      "fake",
		installed: make(map[string]bool),
		failOn:    make(map[string]error),
	}
}

func (m *fakeManager) Name() string { return m.name }

func (m *fakeManager) UpdateIndex() error {
	m.updates++
	return m.updateErr
}

func (m *fakeManager) IsInstalled(pkg string) bool {
	m.queries = append(m.queries, pkg)
	return m.installed[pkg]
}

func (m *fakeManager) Install(pkg string) error {
	m.installs = append(m.installs, pkg)
	return m.failOn[pkg]
}

func TestEnsurePackagesSkipsInstalled(t *testing.T) {
	m := newFakeManager()
	m.installed["git"] = true

	require.NoError(t, EnsurePackages(m, []string{"git", "neovim"}))

	assert.Equal(t, 1, m.updates, "index refreshed exactly once")
	assert.Equal(t, []string{"git", "neovim"}, m.queries)
	assert.Equal(t, []string{"neovim"}, m.installs, "only the absent package is installed")
}

func TestEnsurePackagesInstallsInListOrder(t *testing.T) {
	m := newFakeManager()

	require.NoError(t, EnsurePackages(m, []string{"zsh", "git", "tmux"}))
	assert.Equal(t, []string{"zsh", "git", "tmux"}, m.installs)
}

func TestEnsurePackagesAllInstalledIsNoOp(t *testing.T) {
	m := newFakeManager()
	m.installed["git"] = true
	m.installed["tmux"] = true

	require.NoError(t, EnsurePackages(m, []string{"git", "tmux"}))
	assert.Empty(t, m.installs)
	assert.Equal(t, 1, m.updates)
}

func TestEnsurePackagesAbortsOnFirstFailure(t *testing.T) {
	m := newFakeManager()
	m.failOn["neovim"] = errors.New("exit status 100")

	err := EnsurePackages(m, []string{"git", "neovim", "tmux"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "neovim")
	// tmux is never attempted after the failure.
	assert.Equal(t, []string{"git", "neovim"}, m.installs)
}

func TestEnsurePackagesUpdateFailureIsFatal(t *testing.T) {
	m := newFakeManager()
	m.updateErr = errors.New("exit status 1")

	err := EnsurePackages(m, []string{"git"})
	require.Error(t, err)
	assert.Empty(t, m.queries, "no package is touched when the index refresh fails")
	assert.Empty(t, m.installs)
}

func TestEnsurePackagesEmptyList(t *testing.T) {
	m := newFakeManager()
	require.NoError(t, EnsurePackages(m, nil))
	assert.Equal(t, 1, m.updates, "index is refreshed unconditionally")
}
