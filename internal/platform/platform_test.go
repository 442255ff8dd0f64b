package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		probe Probe
		want  Platform
	}{
		{
			name:  "darwin ostype",
			probe: Probe{OSType: "darwin24"},
			want:  MacOS,
		},
		{
			name:  "uname darwin output",
			probe: Probe{OSType: "Darwin"},
			want:  MacOS,
		},
		{
			name:  "ubuntu id",
			probe: Probe{OSType: "linux-gnu", OSReleaseID: "ubuntu", OSReleaseIDLike: []string{"debian"}},
			want:  Debian,
		},
		{
			name:  "debian derivative via id_like",
			probe: Probe{OSType: "linux-gnu", OSReleaseID: "linuxmint", OSReleaseIDLike: []string{"ubuntu", "debian"}},
			want:  Debian,
		},
		{
			name:  "arch via pacman presence",
			probe: Probe{OSType: "linux-gnu", OSReleaseID: "arch", HasPacman: true},
			want:  Arch,
		},
		{
			name:  "pacman wins when os-release is unhelpful",
			probe: Probe{OSType: "linux-gnu", HasPacman: true},
			want:  Arch,
		},
		{
			// Darwin is checked before anything else.
			name:  "darwin beats pacman",
			probe: Probe{OSType: "darwin23", HasPacman: true},
			want:  MacOS,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.probe)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyUnsupported(t *testing.T) {
	tests := []struct {
		name  string
		probe Probe
	}{
		{"empty probe", Probe{}},
		{"fedora without pacman", Probe{OSType: "linux-gnu", OSReleaseID: "fedora", OSReleaseIDLike: []string{"rhel"}}},
		{"bsd", Probe{OSType: "freebsd14.0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.probe)
			require.ErrorIs(t, err, ErrUnsupportedPlatform)
			assert.Equal(t, Unknown, got)
		})
	}
}

func TestParseOSRelease(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "os-release")
	content := `NAME="Ubuntu"
VERSION="22.04.4 LTS (Jammy Jellyfish)"
ID=ubuntu
ID_LIKE=debian
# trailing comment
PRETTY_NAME="Ubuntu 22.04.4 LTS"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	id, idLike := parseOSRelease(path)
	assert.Equal(t, "ubuntu", id)
	assert.Equal(t, []string{"debian"}, idLike)
}

func TestParseOSReleaseQuotedList(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "os-release")
	content := `ID=linuxmint
ID_LIKE="ubuntu debian"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	id, idLike := parseOSRelease(path)
	assert.Equal(t, "linuxmint", id)
	assert.Equal(t, []string{"ubuntu", "debian"}, idLike)
}

func TestParseOSReleaseMissingFile(t *testing.T) {
	id, idLike := parseOSRelease(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Empty(t, id)
	assert.Nil(t, idLike)
}
